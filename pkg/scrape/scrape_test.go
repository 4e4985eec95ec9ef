package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const samplePage = `<!doctype html>
<html><head>
<title> Acme &amp; Sons </title>
<meta content="Hand made widgets" name="description">
<meta name="keywords" content="widgets, tools , ,acme">
<link rel="shortcut icon" href="/static/fav.png">
<meta property="og:image" content="img/cover.jpg">
<style>.x{color:red}</style>
<script>var secret = "do not index";</script>
</head>
<body>
<header>Site header</header>
<nav><a href="/nav-only">Nav</a></nav>
<h1>Welcome</h1>
<h2>Our &quot;best&quot; widgets</h2>
<p>Quality   since
1920.</p>
<a href="/about">About</a>
<a href="/about">About again</a>
<a href="#top">Top</a>
<a href="mailto:hi@acme.test">Mail</a>
<a href="tel:+123">Call</a>
<a href="javascript:void(0)">JS</a>
<a href="https://other.test/x">Other</a>
<footer>Footer text</footer>
</body></html>`

func TestParse(t *testing.T) {
	p := Parse(samplePage, "https://acme.test/home/")

	require.Equal(t, "Acme & Sons", p.Title)
	require.Equal(t, "Hand made widgets", p.Description)
	require.Equal(t, []string{"widgets", "tools", "acme"}, p.Keywords)
	require.Equal(t, "https://acme.test/static/fav.png", p.Favicon)
	require.Equal(t, "https://acme.test/home/img/cover.jpg", p.OGImage)
	require.Equal(t, []string{"Welcome", `Our "best" widgets`}, p.Headings)

	require.Contains(t, p.Content, "Quality since 1920.")
	require.NotContains(t, p.Content, "do not index")
	require.NotContains(t, p.Content, "Site header")
	require.NotContains(t, p.Content, "Footer text")
	require.NotContains(t, p.Content, "color:red")

	require.Equal(t, []string{
		"https://acme.test/nav-only",
		"https://acme.test/about",
		"https://other.test/x",
	}, p.Links)
}

func TestParseDefaultsAndLimits(t *testing.T) {
	var b strings.Builder
	for i := range 30 {
		fmt.Fprintf(&b, "<h3>Heading %d</h3>", i)
	}
	for i := range 80 {
		fmt.Fprintf(&b, `<a href="/p/%d">p</a>`, i)
	}
	b.WriteString(strings.Repeat("word ", 5000))

	p := Parse(b.String(), "https://example.test")
	require.Equal(t, "https://example.test/favicon.ico", p.Favicon)
	require.Len(t, p.Headings, maxHeadings)
	require.Len(t, p.Links, maxLinks)
	require.LessOrEqual(t, len([]rune(p.Content)), maxContentLen)
	require.Empty(t, p.Title)
}

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "example.com", want: "https://example.com"},
		{in: " http://example.com/a ", want: "http://example.com/a"},
		{in: "https://example.com", want: "https://example.com"},
		{in: "", wantErr: true},
		{in: "https://", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := NormalizeURL(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestScrape(t *testing.T) {
	t.Run("fetches and decodes latin1", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
			w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
			// "Café" in ISO-8859-1.
			_, _ = w.Write([]byte("<title>Caf\xe9</title>"))
		}))
		defer srv.Close()

		p, err := New(0).Scrape(context.Background(), srv.URL)
		require.NoError(t, err)
		require.Equal(t, "Café", p.Title)
	})

	t.Run("follows redirects and resolves against final url", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/en/", http.StatusFound)
		})
		mux.HandleFunc("/en/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<a href="page">x</a>`))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		p, err := New(0).Scrape(context.Background(), srv.URL)
		require.NoError(t, err)
		require.Equal(t, srv.URL+"/en/", p.URL)
		require.Equal(t, []string{srv.URL + "/en/page"}, p.Links)
	})

	t.Run("stops redirect loops", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, r.URL.Path+"x", http.StatusFound)
		}))
		defer srv.Close()

		_, err := New(0).Scrape(context.Background(), srv.URL)
		require.ErrorIs(t, err, ErrTooManyRedirects)
	})

	t.Run("non 2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		_, err := New(0).Scrape(context.Background(), srv.URL)
		require.ErrorContains(t, err, "status 503")
	})
}
