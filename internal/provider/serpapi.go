package provider

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dshills/askroute/pkg/types"
)

// DefaultSerpAPIEndpoint is the SerpAPI JSON search endpoint
const DefaultSerpAPIEndpoint = "https://serpapi.com/search.json"

// SerpAPIProvider searches Google results through SerpAPI
type SerpAPIProvider struct {
	httpBase
	apiKey string
}

// NewSerpAPIProvider creates a SerpAPI adapter. An empty apiKey yields a
// disabled provider.
func NewSerpAPIProvider(apiKey string, opts HTTPOptions) *SerpAPIProvider {
	return &SerpAPIProvider{
		httpBase: newHTTPBase(opts, DefaultSerpAPIEndpoint),
		apiKey:   strings.TrimSpace(apiKey),
	}
}

func (p *SerpAPIProvider) Name() string  { return NameSerpAPI }
func (p *SerpAPIProvider) Enabled() bool { return p.apiKey != "" }

func (p *SerpAPIProvider) Search(ctx context.Context, query string, maxResults int) ([]types.Hit, error) {
	if !p.Enabled() {
		return []types.Hit{}, nil
	}
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	maxResults = ClampResults(maxResults)

	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query)
	params.Set("api_key", p.apiKey)
	params.Set("num", strconv.Itoa(maxResults))

	var resp struct {
		OrganicResults []struct {
			Title             string   `json:"title"`
			Snippet           string   `json:"snippet"`
			Link              string   `json:"link"`
			SnippetHighlights []string `json:"snippet_highlighted_words"`
		} `json:"organic_results"`
		Error string `json:"error"`
	}
	if err := p.getJSON(ctx, p.baseURL+"?"+params.Encode(), nil, &resp); err != nil {
		return nil, fmt.Errorf("%w: serpapi: %w", ErrProviderFailed, err)
	}
	if resp.Error != "" && len(resp.OrganicResults) == 0 {
		return nil, fmt.Errorf("%w: serpapi: %s", ErrProviderFailed, resp.Error)
	}

	hits := make([]types.Hit, 0, len(resp.OrganicResults))
	for _, r := range resp.OrganicResults {
		snippet := r.Snippet
		if snippet == "" {
			snippet = strings.Join(r.SnippetHighlights, " ")
		}
		hits = append(hits, types.Hit{Title: r.Title, Snippet: snippet, URL: r.Link})
	}
	return truncate(types.NormalizeHits(hits, NameSerpAPI), maxResults), nil
}

func (p *SerpAPIProvider) Close() error {
	p.close()
	return nil
}
