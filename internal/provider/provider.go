package provider

import (
	"context"
	"errors"

	"github.com/dshills/askroute/pkg/types"
)

// Common errors
var (
	ErrEmptyQuery        = errors.New("query cannot be empty")
	ErrProviderFailed    = errors.New("search provider failed")
	ErrBadStatus         = errors.New("unexpected status code")
	ErrMalformedResponse = errors.New("malformed provider response")
	ErrUnknownProvider   = errors.New("unknown provider")
)

// Provider names
const (
	NameBrave      = "brave"
	NameBing       = "bing"
	NameGooglePSE  = "googlePSE"
	NameSerpAPI    = "serpapi"
	NameGroq       = "groq"
	NameDuckDuckGo = "duckduckgo"
)

// Result count limits
const (
	DefaultMaxResults = 5
	MaxResultsLimit   = 20
)

// Provider is a search backend behind a uniform adapter
type Provider interface {
	// Name returns the provider identifier used in hits and stats
	Name() string

	// Enabled reports whether the provider has the credentials it needs.
	// A disabled provider returns no hits and no error.
	Enabled() bool

	// Search returns up to maxResults normalized hits for query
	Search(ctx context.Context, query string, maxResults int) ([]types.Hit, error)
}

// Answerer is implemented by providers that can produce a direct answer
// string instead of a list of hits.
type Answerer interface {
	Answer(ctx context.Context, query string) (string, error)
}

// ClampResults bounds a requested result count to [1, MaxResultsLimit],
// substituting DefaultMaxResults for non-positive values.
func ClampResults(n int) int {
	if n <= 0 {
		return DefaultMaxResults
	}
	if n > MaxResultsLimit {
		return MaxResultsLimit
	}
	return n
}

// truncate caps hits at n
func truncate(hits []types.Hit, n int) []types.Hit {
	if len(hits) > n {
		return hits[:n]
	}
	return hits
}
