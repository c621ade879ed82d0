package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/dshills/askroute/internal/config"
)

// Anthropic generates with the Claude Messages API
type Anthropic struct {
	client *anthropic.Client
	opts   Options
}

// NewAnthropic creates a Messages API backend
func NewAnthropic(opts Options) (*Anthropic, error) {
	if err := opts.applyDefaults(DefaultAnthropicModel); err != nil {
		return nil, fmt.Errorf("%s: %w", config.BackendAnthropic, err)
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithHTTPClient(opts.HTTPClient),
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	client := anthropic.NewClient(reqOpts...)

	return &Anthropic{client: &client, opts: opts}, nil
}

func (g *Anthropic) Name() string { return config.BackendAnthropic }

func (g *Anthropic) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(g.opts.Model),
		MaxTokens: int64(g.opts.MaxTokens),
		System: []anthropic.TextBlockParam{
			{Text: g.opts.SystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if g.opts.Temperature > 0 {
		params.Temperature = anthropic.Float(g.opts.Temperature)
	}

	message, err := g.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrGenerationFailed, config.BackendAnthropic, err)
	}

	var b strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return strings.TrimSpace(b.String()), nil
}
