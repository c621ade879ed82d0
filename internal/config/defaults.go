package config

import (
	"strings"
	"time"
)

// Search modes
const (
	ModeFastest   = "fastest"
	ModeCheapest  = "cheapest"
	ModeAccurate  = "accurate"
	ModeLocalOnly = "local-only"
)

// Generator backends
const (
	BackendGroq      = "groq"
	BackendOpenAI    = "openai"
	BackendDeepSeek  = "deepseek"
	BackendAnthropic = "anthropic"
)

// Default values
const (
	DefaultProviderTimeout = 4 * time.Second
	DefaultMaxAttempts     = 1
	DefaultMaxResults      = 5
	DefaultCacheSize       = 256
	DefaultCacheTTL        = 2 * time.Minute
	DefaultRescoreTopN     = 4
	DefaultHistoryTurns    = 10
	DefaultRelevantChunks  = 5
	DefaultDocExcerpt      = 4000
	DefaultMaxTokens       = 1024
	DefaultTemperature     = 0.15
)

// DefaultRaceProviders is the provider set raced for a single web answer
var DefaultRaceProviders = []string{"bing", "googlePSE", "serpapi", "brave", "groq"}

// Default returns a configuration populated with defaults only
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "console",
		Providers: Providers{
			DuckDuckGo:  true,
			Timeout:     DefaultProviderTimeout,
			MaxAttempts: DefaultMaxAttempts,
		},
		Search: Search{
			Mode:        ModeFastest,
			MaxResults:  DefaultMaxResults,
			CacheSize:   DefaultCacheSize,
			CacheTTL:    DefaultCacheTTL,
			RescoreTopN: DefaultRescoreTopN,
		},
		Race: Race{
			Providers: append([]string(nil), DefaultRaceProviders...),
		},
		Generator: Generator{
			Backend:     BackendGroq,
			MaxTokens:   DefaultMaxTokens,
			Temperature: DefaultTemperature,
		},
		Answer: Answer{
			HistoryTurns:    DefaultHistoryTurns,
			RelevantChunks:  DefaultRelevantChunks,
			DocExcerptChars: DefaultDocExcerpt,
		},
	}
}

// normalize lowercases enumerations and fills zero values with defaults
func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.Search.Mode = strings.ToLower(strings.TrimSpace(c.Search.Mode))
	c.Generator.Backend = strings.ToLower(strings.TrimSpace(c.Generator.Backend))

	if c.Search.Mode == "" {
		c.Search.Mode = ModeFastest
	}
	if c.Generator.Backend == "" {
		c.Generator.Backend = BackendGroq
	}
	if c.Providers.Timeout <= 0 {
		c.Providers.Timeout = DefaultProviderTimeout
	}
	if c.Providers.MaxAttempts <= 0 {
		c.Providers.MaxAttempts = DefaultMaxAttempts
	}
	if c.Search.MaxResults <= 0 {
		c.Search.MaxResults = DefaultMaxResults
	}
	if c.Search.RescoreTopN <= 0 {
		c.Search.RescoreTopN = DefaultRescoreTopN
	}
	if len(c.Race.Providers) == 0 {
		c.Race.Providers = append([]string(nil), DefaultRaceProviders...)
	}
	if c.Generator.MaxTokens <= 0 {
		c.Generator.MaxTokens = DefaultMaxTokens
	}
	if c.Answer.HistoryTurns <= 0 {
		c.Answer.HistoryTurns = DefaultHistoryTurns
	}
	if c.Answer.RelevantChunks <= 0 {
		c.Answer.RelevantChunks = DefaultRelevantChunks
	}
	if c.Answer.DocExcerptChars <= 0 {
		c.Answer.DocExcerptChars = DefaultDocExcerpt
	}
}
