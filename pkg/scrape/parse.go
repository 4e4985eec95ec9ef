package scrape

import (
	"html"
	"net/url"
	"regexp"
	"strings"
)

const (
	maxHeadings   = 20
	maxLinks      = 50
	maxContentLen = 10000
)

var (
	reTitle = regexp.MustCompile(`(?i)<title[^>]*>([^<]+)</title>`)

	reDescription = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<meta[^>]*name=["']description["'][^>]*content=["']([^"']+)["']`),
		regexp.MustCompile(`(?i)<meta[^>]*content=["']([^"']+)["'][^>]*name=["']description["']`),
	}
	reKeywords = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<meta[^>]*name=["']keywords["'][^>]*content=["']([^"']+)["']`),
		regexp.MustCompile(`(?i)<meta[^>]*content=["']([^"']+)["'][^>]*name=["']keywords["']`),
	}
	reFavicon = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<link[^>]*rel=["'](?:shortcut )?icon["'][^>]*href=["']([^"']+)["']`),
		regexp.MustCompile(`(?i)<link[^>]*href=["']([^"']+)["'][^>]*rel=["'](?:shortcut )?icon["']`),
	}
	reOGImage = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<meta[^>]*property=["']og:image["'][^>]*content=["']([^"']+)["']`),
		regexp.MustCompile(`(?i)<meta[^>]*content=["']([^"']+)["'][^>]*property=["']og:image["']`),
	}

	reHeading = regexp.MustCompile(`(?i)<h[1-3][^>]*>([^<]+)</h[1-3]>`)
	reAnchor  = regexp.MustCompile(`(?i)<a[^>]*href=["']([^"']+)["'][^>]*>`)

	reBlocks = []*regexp.Regexp{
		regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`),
		regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`),
		regexp.MustCompile(`(?is)<noscript[^>]*>.*?</noscript>`),
		regexp.MustCompile(`(?is)<nav[^>]*>.*?</nav>`),
		regexp.MustCompile(`(?is)<footer[^>]*>.*?</footer>`),
		regexp.MustCompile(`(?is)<header[^>]*>.*?</header>`),
	}
	reTag   = regexp.MustCompile(`<[^>]+>`)
	reSpace = regexp.MustCompile(`\s+`)
)

// Parse extracts page fields from raw HTML. Relative URLs are resolved
// against base.
func Parse(doc, base string) Page {
	p := Page{URL: base}

	if m := reTitle.FindStringSubmatch(doc); m != nil {
		p.Title = clean(m[1])
	}
	if v := firstMatch(doc, reDescription); v != "" {
		p.Description = clean(v)
	}
	if v := firstMatch(doc, reKeywords); v != "" {
		for _, k := range strings.Split(html.UnescapeString(v), ",") {
			if k = strings.TrimSpace(k); k != "" {
				p.Keywords = append(p.Keywords, k)
			}
		}
	}

	favicon := firstMatch(doc, reFavicon)
	if favicon == "" {
		favicon = "/favicon.ico"
	}
	p.Favicon = resolve(favicon, base)

	if v := firstMatch(doc, reOGImage); v != "" {
		p.OGImage = resolve(v, base)
	}

	for _, m := range reHeading.FindAllStringSubmatch(doc, -1) {
		if h := clean(m[1]); h != "" {
			p.Headings = append(p.Headings, h)
			if len(p.Headings) == maxHeadings {
				break
			}
		}
	}

	p.Content = textContent(doc)
	p.Links = links(doc, base)
	return p
}

func firstMatch(doc string, res []*regexp.Regexp) string {
	for _, re := range res {
		if m := re.FindStringSubmatch(doc); m != nil {
			return m[1]
		}
	}
	return ""
}

func clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(strings.TrimSpace(s)))
}

func textContent(doc string) string {
	for _, re := range reBlocks {
		doc = re.ReplaceAllString(doc, "")
	}
	doc = reTag.ReplaceAllString(doc, " ")
	doc = html.UnescapeString(doc)
	doc = strings.TrimSpace(reSpace.ReplaceAllString(doc, " "))

	if r := []rune(doc); len(r) > maxContentLen {
		doc = string(r[:maxContentLen])
	}
	return doc
}

func links(doc, base string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range reAnchor.FindAllStringSubmatch(doc, -1) {
		href := strings.TrimSpace(html.UnescapeString(m[1]))
		lower := strings.ToLower(href)
		if href == "" ||
			strings.HasPrefix(lower, "#") ||
			strings.HasPrefix(lower, "javascript:") ||
			strings.HasPrefix(lower, "mailto:") ||
			strings.HasPrefix(lower, "tel:") {
			continue
		}

		abs := resolve(href, base)
		if _, ok := seen[abs]; ok {
			continue
		}
		seen[abs] = struct{}{}
		out = append(out, abs)
		if len(out) == maxLinks {
			break
		}
	}
	return out
}

func resolve(ref, base string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(html.UnescapeString(ref))
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}
