package intent

import (
	"regexp"
	"strings"
)

// Coarse is the routing-level intent of a query
type Coarse string

const (
	Web    Coarse = "WEB"
	Doc    Coarse = "DOC"
	Hybrid Coarse = "HYBRID"
)

// DocIntent is the fine-grained intent of a document-scoped query
type DocIntent string

const (
	Summarize  DocIntent = "summarize"
	Highlights DocIntent = "highlights"
	QA         DocIntent = "qa"
)

// Signals are independent hints about which sources a query needs. Both
// may be true.
type Signals struct {
	DocLikely bool `json:"doc_likely"`
	WebLikely bool `json:"web_likely"`
}

// Classification bundles every view of a query's intent
type Classification struct {
	Coarse  Coarse    `json:"coarse"`
	Fine    DocIntent `json:"fine"`
	Signals Signals   `json:"signals"`
}

var (
	// live data: prices, tickers, news, weather, explicit search engines
	webMarkers = regexp.MustCompile(`\b(prices?|today|current|latest|stocks?|market|nvda|tsla|aapl|meta|weather|news|headlines?|google|bing|search)\b`)

	docReference = regexp.MustCompile(`\b(summari[sz]e (this|the|my)|(in|from|of) (this|the) (document|doc|file|pdf|attachment)|this (document|doc|file|pdf|attachment))\b`)

	docNouns = regexp.MustCompile(`\b(document|docs?|pdf|file|attachment|page|section|chapter|paragraph|report|uploaded|according to)\b`)

	summarizePattern  = regexp.MustCompile(`(summari[sz]e|tl;dr|overview)`)
	highlightsPattern = regexp.MustCompile(`(key points|highlights|bullets?|action items|takeaways)`)

	freshnessPhrases = []string{
		"is it open",
		"who is the current",
		"current status",
		"what happened",
		"near me",
	}

	freshnessPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(today|tonight|this week|this month|right now)\b`),
		regexp.MustCompile(`\b(latest|breaking|recent|new)\b`),
		regexp.MustCompile(`\b(prices?|stocks?|ticker|quote|trading)\b`),
		regexp.MustCompile(`\b(weather|forecast|temperature|rain|storm|climate|outside)\b`),
		regexp.MustCompile(`\b(news|headlines?|updates?|status|live)\b`),
		regexp.MustCompile(`\b(open now|hours)\b`),
		regexp.MustCompile(`\b(score|game|match|final)\b`),
		regexp.MustCompile(`\b(concert|event|conference)\b`),
	}
)

// ClassifyIntent maps a query to WEB, DOC or HYBRID. Live-data markers win
// over document references; anything else is HYBRID. An empty query is
// treated as WEB.
func ClassifyIntent(query string) Coarse {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Web
	}
	if webMarkers.MatchString(q) {
		return Web
	}
	if docReference.MatchString(q) {
		return Doc
	}
	return Hybrid
}

// DetectIntent picks the fine-grained document intent. Summarize patterns
// are checked before highlights; qa is the default.
func DetectIntent(text string) DocIntent {
	s := strings.ToLower(text)
	switch {
	case summarizePattern.MatchString(s):
		return Summarize
	case highlightsPattern.MatchString(s):
		return Highlights
	default:
		return QA
	}
}

// NeedsSearch reports whether the query asks for fresh or live information
func NeedsSearch(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	for _, p := range freshnessPhrases {
		if strings.Contains(q, p) {
			return true
		}
	}
	if webMarkers.MatchString(q) {
		return true
	}
	for _, re := range freshnessPatterns {
		if re.MatchString(q) {
			return true
		}
	}
	return false
}

// RefersToDocument reports whether the query talks about a loaded document
func RefersToDocument(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	if docReference.MatchString(q) || docNouns.MatchString(q) {
		return true
	}
	return DetectIntent(q) != QA
}

// Detect computes the doc/web signal pair for a query
func Detect(query string) Signals {
	return Signals{
		DocLikely: RefersToDocument(query),
		WebLikely: NeedsSearch(query),
	}
}

// Classify returns the coarse label, fine intent and signals together
func Classify(query string) Classification {
	return Classification{
		Coarse:  ClassifyIntent(query),
		Fine:    DetectIntent(query),
		Signals: Detect(query),
	}
}
