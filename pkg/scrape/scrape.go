// Package scrape fetches a web page and pulls out the fields used to
// describe a website during onboarding.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/seodesk/pkg/slogx"
	"golang.org/x/net/html/charset"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (compatible; SEODesk Bot/1.0)"
	MaxRedirects     = 5

	maxBodyBytes = 5 << 20
)

var ErrTooManyRedirects = errors.New("scrape: stopped after 5 redirects")

// Page is what we extract from a single HTML document.
type Page struct {
	URL         string   `json:"url"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Favicon     string   `json:"favicon,omitempty"`
	OGImage     string   `json:"ogImage,omitempty"`
	Headings    []string `json:"headings,omitempty"`
	Links       []string `json:"links,omitempty"`
	Content     string   `json:"content,omitempty"`
}

// Scraper downloads pages over HTTP.
type Scraper struct {
	client    *http.Client
	userAgent string
}

// New returns a Scraper with the given request timeout. A zero timeout uses
// DefaultTimeout.
func New(timeout time.Duration) *Scraper {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Scraper{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= MaxRedirects {
					return ErrTooManyRedirects
				}
				return nil
			},
		},
		userAgent: DefaultUserAgent,
	}
}

// NormalizeURL prefixes https:// when the scheme is missing and checks that
// the result has a host.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("scrape: empty url")
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("scrape: invalid url: %w", err)
	}
	if u.Host == "" {
		return "", errors.New("scrape: url has no host")
	}
	return u.String(), nil
}

// Scrape fetches rawURL and parses the returned HTML.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (Page, error) {
	log := slogx.FromContext(ctx)

	target, err := NormalizeURL(rawURL)
	if err != nil {
		return Page{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Page{}, fmt.Errorf("scrape: build request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("scrape: fetch %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Page{}, fmt.Errorf("scrape: fetch %s: status %d", target, resp.StatusCode)
	}

	body, err := charset.NewReader(io.LimitReader(resp.Body, maxBodyBytes), resp.Header.Get("Content-Type"))
	if err != nil {
		return Page{}, fmt.Errorf("scrape: decode charset: %w", err)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return Page{}, fmt.Errorf("scrape: read body: %w", err)
	}

	final := resp.Request.URL.String()
	log.Debug("page fetched",
		slog.String("url", final),
		slog.Int("bytes", len(raw)),
		slog.Duration("took", time.Since(start)),
	)

	return Parse(string(raw), final), nil
}
