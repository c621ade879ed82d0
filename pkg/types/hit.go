package types

import (
	"regexp"
	"strings"
)

// Hit is a normalized search result. Every field is always a string;
// missing source data becomes "".
type Hit struct {
	Title    string `json:"title"`
	Snippet  string `json:"snippet"`
	URL      string `json:"url"`
	Provider string `json:"provider"`
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	headingRe    = regexp.MustCompile(`#+\s?`)
)

// CleanText collapses whitespace and strips markdown clutter (bold markers,
// heading hashes, code ticks).
func CleanText(s string) string {
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "**", "")
	s = headingRe.ReplaceAllString(s, "")
	s = strings.NewReplacer("`", "", "~", "").Replace(s)
	return strings.TrimSpace(s)
}

// NewHit builds a normalized hit for the given provider.
func NewHit(title, snippet, url, provider string) Hit {
	return Hit{
		Title:    CleanText(title),
		Snippet:  CleanText(snippet),
		URL:      strings.TrimSpace(url),
		Provider: provider,
	}
}

// IsEmpty reports whether the hit carries no usable content
func (h Hit) IsEmpty() bool {
	return h.Title == "" && h.Snippet == "" && h.URL == ""
}

// Validate checks that a hit is attributable and non-empty
func (h Hit) Validate() error {
	if h.Provider == "" {
		return ErrMissingProvider
	}
	if h.IsEmpty() {
		return ErrEmptyHit
	}
	return nil
}

// NormalizeHits stamps the provider name on each hit and drops those that
// fail Validate. An empty provider therefore yields no hits. The returned
// slice is never nil.
func NormalizeHits(hits []Hit, provider string) []Hit {
	out := make([]Hit, 0, len(hits))
	for _, h := range hits {
		n := NewHit(h.Title, h.Snippet, h.URL, provider)
		if n.Validate() != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}
