package seosdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the seodesk API. Set Token to call authenticated routes.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Token is the bearer access token sent on every request when non-empty.
	Token string

	// FollowRedirects controls whether redirect responses are followed. The
	// invite accept link answers with a redirect that callers usually want
	// to inspect, so this is off by default.
	FollowRedirects bool
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithToken returns a copy of c that authenticates with token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.Token = token
	return &cp
}

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// do sends a request with an optional JSON body.
func (c *Client) do(ctx context.Context, method, path string, in any) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	if !c.FollowRedirects {
		cp := *hc
		cp.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
		hc = &cp
	}

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// call sends a request and decodes the response into out when the status
// matches expected.
func (c *Client) call(ctx context.Context, method, path string, in, out any, expected int) error {
	resp, err := c.do(ctx, method, path, in)
	if err != nil {
		return err
	}
	return decodeJSON(resp, out, expected)
}

// decodeJSON decodes resp into target, or returns an *APIError.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}
	if target == nil {
		return nil
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// pageQuery renders page/limit query parameters, omitting zero values.
func pageQuery(page, limit int, extra ...string) string {
	var parts []string
	if page > 0 {
		parts = append(parts, fmt.Sprintf("page=%d", page))
	}
	if limit > 0 {
		parts = append(parts, fmt.Sprintf("limit=%d", limit))
	}
	parts = append(parts, extra...)
	if len(parts) == 0 {
		return ""
	}
	return "?" + strings.Join(parts, "&")
}
