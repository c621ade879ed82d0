package provider

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dshills/askroute/pkg/types"
)

// DefaultGooglePSEEndpoint is the Custom Search JSON API
const DefaultGooglePSEEndpoint = "https://www.googleapis.com/customsearch/v1"

// googleMaxNum is the largest page size the Custom Search API accepts
const googleMaxNum = 10

// GooglePSEProvider searches with a Google Programmable Search Engine
type GooglePSEProvider struct {
	httpBase
	apiKey string
	cx     string
}

// NewGooglePSEProvider creates a Google PSE adapter. Both the key and the
// engine id are required for the provider to be enabled.
func NewGooglePSEProvider(apiKey, cx string, opts HTTPOptions) *GooglePSEProvider {
	return &GooglePSEProvider{
		httpBase: newHTTPBase(opts, DefaultGooglePSEEndpoint),
		apiKey:   strings.TrimSpace(apiKey),
		cx:       strings.TrimSpace(cx),
	}
}

func (p *GooglePSEProvider) Name() string  { return NameGooglePSE }
func (p *GooglePSEProvider) Enabled() bool { return p.apiKey != "" && p.cx != "" }

func (p *GooglePSEProvider) Search(ctx context.Context, query string, maxResults int) ([]types.Hit, error) {
	if !p.Enabled() {
		return []types.Hit{}, nil
	}
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	maxResults = ClampResults(maxResults)
	num := maxResults
	if num > googleMaxNum {
		num = googleMaxNum
	}

	params := url.Values{}
	params.Set("key", p.apiKey)
	params.Set("cx", p.cx)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(num))

	var resp struct {
		Items []struct {
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
			Link    string `json:"link"`
		} `json:"items"`
	}
	if err := p.getJSON(ctx, p.baseURL+"?"+params.Encode(), nil, &resp); err != nil {
		return nil, fmt.Errorf("%w: googlePSE: %w", ErrProviderFailed, err)
	}

	hits := make([]types.Hit, 0, len(resp.Items))
	for _, it := range resp.Items {
		hits = append(hits, types.Hit{Title: it.Title, Snippet: it.Snippet, URL: it.Link})
	}
	return truncate(types.NormalizeHits(hits, NameGooglePSE), maxResults), nil
}

func (p *GooglePSEProvider) Close() error {
	p.close()
	return nil
}
