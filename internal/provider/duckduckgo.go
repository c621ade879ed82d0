package provider

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/dshills/askroute/pkg/types"
)

// DefaultDuckDuckGoEndpoint is the keyless HTML results page
const DefaultDuckDuckGoEndpoint = "https://html.duckduckgo.com/html/"

// DuckDuckGoProvider scrapes the DuckDuckGo HTML endpoint. It needs no key
// and serves as the last-resort fallback for every search strategy.
type DuckDuckGoProvider struct {
	httpBase
	enabled bool
}

// NewDuckDuckGoProvider creates the keyless fallback adapter
func NewDuckDuckGoProvider(enabled bool, opts HTTPOptions) *DuckDuckGoProvider {
	return &DuckDuckGoProvider{
		httpBase: newHTTPBase(opts, DefaultDuckDuckGoEndpoint),
		enabled:  enabled,
	}
}

func (p *DuckDuckGoProvider) Name() string  { return NameDuckDuckGo }
func (p *DuckDuckGoProvider) Enabled() bool { return p.enabled }

func (p *DuckDuckGoProvider) Search(ctx context.Context, query string, maxResults int) ([]types.Hit, error) {
	if !p.Enabled() {
		return []types.Hit{}, nil
	}
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	maxResults = ClampResults(maxResults)

	body, err := p.getText(ctx, p.baseURL+"?"+url.Values{"q": {query}}.Encode(), map[string]string{
		"Accept": "text/html",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: duckduckgo: %w", ErrProviderFailed, err)
	}

	hits, err := parseDuckDuckGo(body)
	if err != nil {
		return nil, fmt.Errorf("%w: duckduckgo: %w", ErrMalformedResponse, err)
	}
	return truncate(types.NormalizeHits(hits, NameDuckDuckGo), maxResults), nil
}

func (p *DuckDuckGoProvider) Close() error {
	p.close()
	return nil
}

// parseDuckDuckGo extracts result blocks from the HTML page. When the page
// layout is unrecognized it falls back to every absolute http link.
func parseDuckDuckGo(body []byte) ([]types.Hit, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var hits []types.Hit
	walk(doc, func(n *html.Node) bool {
		if !isElement(n, "div") || !hasClass(n, "result") {
			return true
		}
		var hit types.Hit
		walk(n, func(c *html.Node) bool {
			switch {
			case isElement(c, "a") && hasClass(c, "result__a"):
				hit.Title = textContent(c)
				hit.URL = resolveRedirect(attr(c, "href"))
				return false
			case hasClass(c, "result__snippet"):
				hit.Snippet = textContent(c)
				return false
			}
			return true
		})
		if hit.URL != "" || hit.Title != "" {
			hits = append(hits, hit)
		}
		return false
	})
	if len(hits) > 0 {
		return hits, nil
	}

	seen := make(map[string]bool)
	walk(doc, func(n *html.Node) bool {
		if !isElement(n, "a") {
			return true
		}
		href := resolveRedirect(attr(n, "href"))
		if !strings.HasPrefix(href, "http") || seen[href] {
			return false
		}
		seen[href] = true
		hits = append(hits, types.Hit{Title: textContent(n), URL: href})
		return false
	})
	return hits, nil
}

// resolveRedirect unwraps DuckDuckGo's /l/?uddg= redirect links
func resolveRedirect(href string) string {
	href = strings.TrimSpace(href)
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}

// walk visits n and its descendants depth-first. Returning false from fn
// skips the node's children.
func walk(n *html.Node, fn func(*html.Node) bool) {
	if !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		return true
	})
	return strings.TrimSpace(sb.String())
}
