package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/dshills/askroute/pkg/types"
)

// Groq defaults
const (
	DefaultGroqBaseURL = "https://api.groq.com/openai/v1"
	DefaultGroqModel   = "llama-3.1-8b-instant"

	groqTemperature = 0.2
	groqMaxTokens   = 120
	groqHitTitle    = "Groq Quick Answer"
)

// GroqProvider produces a short web-style answer from a Groq-hosted model.
// It behaves like a search provider that returns at most one hit.
type GroqProvider struct {
	client *openai.Client
	http   *http.Client
	apiKey string
	model  string
}

// NewGroqProvider creates the quick-answer adapter. An empty apiKey yields a
// disabled provider.
func NewGroqProvider(apiKey, model string, opts HTTPOptions) *GroqProvider {
	base := newHTTPBase(opts, DefaultGroqBaseURL)
	if model == "" {
		model = DefaultGroqModel
	}

	p := &GroqProvider{
		http:   base.client,
		apiKey: strings.TrimSpace(apiKey),
		model:  model,
	}
	if p.apiKey != "" {
		client := openai.NewClient(
			option.WithAPIKey(p.apiKey),
			option.WithBaseURL(base.baseURL),
			option.WithHTTPClient(base.client),
			option.WithMaxRetries(base.retry.MaxAttempts-1),
		)
		p.client = &client
	}
	return p
}

func (p *GroqProvider) Name() string  { return NameGroq }
func (p *GroqProvider) Enabled() bool { return p.client != nil }

// Answer asks the model for a terse answer to query
func (p *GroqProvider) Answer(ctx context.Context, query string) (string, error) {
	if !p.Enabled() {
		return "", nil
	}
	if strings.TrimSpace(query) == "" {
		return "", ErrEmptyQuery
	}

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(fmt.Sprintf("Web-style quick answer for:\n%q\nShort sentences only.", query)),
		},
		Temperature: openai.Float(groqTemperature),
		MaxTokens:   openai.Int(groqMaxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("%w: groq: %w", ErrProviderFailed, err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Search wraps Answer as a single hit with no URL
func (p *GroqProvider) Search(ctx context.Context, query string, _ int) ([]types.Hit, error) {
	if !p.Enabled() {
		return []types.Hit{}, nil
	}
	answer, err := p.Answer(ctx, query)
	if err != nil {
		return nil, err
	}
	if answer == "" {
		return []types.Hit{}, nil
	}
	return types.NormalizeHits([]types.Hit{{Title: groqHitTitle, Snippet: answer}}, NameGroq), nil
}

func (p *GroqProvider) Close() error {
	p.http.CloseIdleConnections()
	return nil
}
