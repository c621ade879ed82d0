package generator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dshills/askroute/internal/config"
)

// Common errors
var (
	ErrMissingAPIKey      = errors.New("API key is required")
	ErrUnsupportedBackend = errors.New("unsupported generator backend")
	ErrEmptyPrompt        = errors.New("prompt cannot be empty")
	ErrGenerationFailed   = errors.New("generation failed")
)

// Default models and endpoints per backend
const (
	DefaultGroqModel      = "llama-3.1-8b-instant"
	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultDeepSeekModel  = "deepseek-chat"
	DefaultAnthropicModel = "claude-3-5-haiku-latest"

	GroqBaseURL     = "https://api.groq.com/openai/v1"
	DeepSeekBaseURL = "https://api.deepseek.com/v1"

	DefaultTimeout = 20 * time.Second
)

// DefaultSystemPrompt keeps fallback answers short
const DefaultSystemPrompt = "You are a fast, concise assistant. Answer directly in a few sentences. " +
	"If the question depends on recent events you cannot know, say so briefly."

// Generator produces free text for a prompt
type Generator interface {
	// Name identifies the backend for logs
	Name() string

	// Generate returns the model's reply to prompt
	Generate(ctx context.Context, prompt string) (string, error)
}

// Options configures a backend
type Options struct {
	APIKey       string
	Model        string
	BaseURL      string
	SystemPrompt string
	MaxTokens    int
	Temperature  float64
	HTTPClient   *http.Client
}

func (o *Options) applyDefaults(model string) error {
	o.APIKey = strings.TrimSpace(o.APIKey)
	if o.APIKey == "" {
		return ErrMissingAPIKey
	}
	if o.Model == "" {
		o.Model = model
	}
	if o.SystemPrompt == "" {
		o.SystemPrompt = DefaultSystemPrompt
	}
	if o.MaxTokens <= 0 {
		o.MaxTokens = config.DefaultMaxTokens
	}
	if o.HTTPClient == nil {
		o.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// NewFromConfig builds the configured backend. groqKey is the provider-level
// Groq credential, reused when the backend is groq.
func NewFromConfig(cfg config.Generator, groqKey string) (Generator, error) {
	opts := Options{
		Model:       cfg.Model,
		BaseURL:     cfg.BaseURL,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	}

	switch strings.ToLower(cfg.Backend) {
	case "", config.BackendGroq:
		opts.APIKey = groqKey
		if opts.BaseURL == "" {
			opts.BaseURL = GroqBaseURL
		}
		return orNil(NewOpenAICompatible(config.BackendGroq, DefaultGroqModel, opts))
	case config.BackendOpenAI:
		opts.APIKey = cfg.OpenAIAPIKey
		return orNil(NewOpenAICompatible(config.BackendOpenAI, DefaultOpenAIModel, opts))
	case config.BackendDeepSeek:
		opts.APIKey = cfg.DeepSeekAPIKey
		if opts.BaseURL == "" {
			opts.BaseURL = DeepSeekBaseURL
		}
		return orNil(NewOpenAICompatible(config.BackendDeepSeek, DefaultDeepSeekModel, opts))
	case config.BackendAnthropic:
		opts.APIKey = cfg.AnthropicAPIKey
		return orNil(NewAnthropic(opts))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBackend, cfg.Backend)
	}
}

// orNil keeps a failed constructor from yielding a non-nil interface
// wrapping a nil pointer
func orNil[G Generator](g G, err error) (Generator, error) {
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Func adapts a plain function to the Generator interface
type Func func(ctx context.Context, prompt string) (string, error)

func (f Func) Name() string { return "func" }

func (f Func) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
