package provider

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dshills/askroute/pkg/types"
)

// DefaultBraveEndpoint is the Brave web search API
const DefaultBraveEndpoint = "https://api.search.brave.com/res/v1/web/search"

// BraveProvider searches with the Brave Search API
type BraveProvider struct {
	httpBase
	apiKey string
}

// NewBraveProvider creates a Brave adapter. An empty apiKey yields a
// disabled provider.
func NewBraveProvider(apiKey string, opts HTTPOptions) *BraveProvider {
	return &BraveProvider{
		httpBase: newHTTPBase(opts, DefaultBraveEndpoint),
		apiKey:   strings.TrimSpace(apiKey),
	}
}

func (p *BraveProvider) Name() string  { return NameBrave }
func (p *BraveProvider) Enabled() bool { return p.apiKey != "" }

func (p *BraveProvider) Search(ctx context.Context, query string, maxResults int) ([]types.Hit, error) {
	if !p.Enabled() {
		return []types.Hit{}, nil
	}
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	maxResults = ClampResults(maxResults)

	u, err := url.Parse(p.baseURL)
	if err != nil {
		return nil, fmt.Errorf("brave endpoint: %w", err)
	}
	q := u.Query()
	q.Set("q", query)
	q.Set("count", strconv.Itoa(maxResults))
	u.RawQuery = q.Encode()

	var resp struct {
		Web struct {
			Results []struct {
				Title       string `json:"title"`
				Description string `json:"description"`
				URL         string `json:"url"`
			} `json:"results"`
		} `json:"web"`
	}
	headers := map[string]string{
		"X-Subscription-Token": p.apiKey,
		"Accept":               "application/json",
	}
	if err := p.getJSON(ctx, u.String(), headers, &resp); err != nil {
		return nil, fmt.Errorf("%w: brave: %w", ErrProviderFailed, err)
	}

	hits := make([]types.Hit, 0, len(resp.Web.Results))
	for _, r := range resp.Web.Results {
		hits = append(hits, types.Hit{Title: r.Title, Snippet: r.Description, URL: r.URL})
	}
	return truncate(types.NormalizeHits(hits, NameBrave), maxResults), nil
}

func (p *BraveProvider) Close() error {
	p.close()
	return nil
}
