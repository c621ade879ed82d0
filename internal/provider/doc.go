// Package provider implements the search provider adapters and the registry
// that orders them.
//
// Each adapter wraps one backend behind the Provider interface and returns
// normalized types.Hit values. Adapters without credentials are constructed
// disabled: they return no hits and no error. The HTTP adapters share a
// transport with per-request timeouts and optional exponential backoff for
// 429 and 5xx responses.
//
// Supported providers:
//   - brave: Brave Search API
//   - serpapi: Google results via SerpAPI
//   - googlePSE: Google Programmable Search Engine
//   - bing: Bing Web Search v7
//   - groq: one-hit quick answer from a Groq-hosted model
//   - duckduckgo: keyless HTML fallback
package provider
