package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// OpenAICompatible talks to any chat-completions API shaped like OpenAI's:
// OpenAI itself, Groq and DeepSeek.
type OpenAICompatible struct {
	client *openai.Client
	name   string
	opts   Options
}

// NewOpenAICompatible creates a chat-completions backend. defaultModel is
// used when opts.Model is empty.
func NewOpenAICompatible(name, defaultModel string, opts Options) (*OpenAICompatible, error) {
	if err := opts.applyDefaults(defaultModel); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithHTTPClient(opts.HTTPClient),
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	client := openai.NewClient(reqOpts...)

	return &OpenAICompatible{client: &client, name: name, opts: opts}, nil
}

func (g *OpenAICompatible) Name() string { return g.name }

func (g *OpenAICompatible) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}

	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(g.opts.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(g.opts.SystemPrompt),
			openai.UserMessage(prompt),
		},
		MaxTokens: openai.Int(int64(g.opts.MaxTokens)),
	}
	if g.opts.Temperature > 0 {
		params.Temperature = openai.Float(g.opts.Temperature)
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrGenerationFailed, g.name, err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
