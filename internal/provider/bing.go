package provider

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dshills/askroute/pkg/types"
)

// DefaultBingEndpoint is the Bing Web Search v7 API
const DefaultBingEndpoint = "https://api.bing.microsoft.com/v7.0/search"

// BingProvider searches with the Bing Web Search API
type BingProvider struct {
	httpBase
	apiKey string
}

// NewBingProvider creates a Bing adapter. An empty apiKey yields a disabled
// provider.
func NewBingProvider(apiKey string, opts HTTPOptions) *BingProvider {
	return &BingProvider{
		httpBase: newHTTPBase(opts, DefaultBingEndpoint),
		apiKey:   strings.TrimSpace(apiKey),
	}
}

func (p *BingProvider) Name() string  { return NameBing }
func (p *BingProvider) Enabled() bool { return p.apiKey != "" }

func (p *BingProvider) Search(ctx context.Context, query string, maxResults int) ([]types.Hit, error) {
	if !p.Enabled() {
		return []types.Hit{}, nil
	}
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	maxResults = ClampResults(maxResults)

	params := url.Values{}
	params.Set("q", query)
	params.Set("count", strconv.Itoa(maxResults))

	var resp struct {
		WebPages struct {
			Value []struct {
				Name        string `json:"name"`
				Snippet     string `json:"snippet"`
				Description string `json:"description"`
				URL         string `json:"url"`
			} `json:"value"`
		} `json:"webPages"`
	}
	headers := map[string]string{"Ocp-Apim-Subscription-Key": p.apiKey}
	if err := p.getJSON(ctx, p.baseURL+"?"+params.Encode(), headers, &resp); err != nil {
		return nil, fmt.Errorf("%w: bing: %w", ErrProviderFailed, err)
	}

	hits := make([]types.Hit, 0, len(resp.WebPages.Value))
	for _, v := range resp.WebPages.Value {
		snippet := v.Snippet
		if snippet == "" {
			snippet = v.Description
		}
		hits = append(hits, types.Hit{Title: v.Name, Snippet: snippet, URL: v.URL})
	}
	return truncate(types.NormalizeHits(hits, NameBing), maxResults), nil
}

func (p *BingProvider) Close() error {
	p.close()
	return nil
}
