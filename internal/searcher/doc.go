// Package searcher routes web queries across the configured search
// providers.
//
// UnifiedSearch fans a query out to every enabled provider at once and
// concatenates the hits in provider priority order. SmartSearch instead
// picks one provider by strategy:
//
//   - fastest: race all enabled providers, first non-empty list wins
//   - cheapest: try googlePSE, bing, serpapi in turn
//   - accurate: try bing, serpapi, googlePSE in turn
//   - local-only: never touch the web
//
// When a strategy comes back empty the keyless DuckDuckGo provider is
// tried. SmartSearch results are rescored by keyword overlap, snippet
// length and provider trust, and only the top few are kept.
//
// # Basic Usage
//
//	reg := provider.NewFromConfig(cfg.Providers)
//	r := searcher.New(reg, searcher.Options{Stats: tracker, Mode: "fastest"})
//
//	hits := r.UnifiedSearch(ctx, "golang release notes", 5)
//	for _, h := range hits {
//	    fmt.Printf("[%s] %s %s\n", h.Provider, h.Title, h.URL)
//	}
//
// # Caching
//
// Results are kept in an LRU cache keyed by query and result count for a
// configurable TTL. Empty results are never cached.
package searcher
