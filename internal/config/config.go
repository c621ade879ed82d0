package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that points at the config file
const EnvConfigPath = "ASKROUTE_CONFIG"

// Config is the top-level askroute configuration
type Config struct {
	LogLevel  string    `yaml:"log_level"`
	LogFormat string    `yaml:"log_format"`
	Providers Providers `yaml:"providers"`
	Search    Search    `yaml:"search"`
	Race      Race      `yaml:"race"`
	Generator Generator `yaml:"generator"`
	Answer    Answer    `yaml:"answer"`
	Location  *Location `yaml:"location,omitempty"`
}

// Providers holds search provider credentials and transport settings.
// A provider whose credential is empty is constructed disabled.
type Providers struct {
	BraveAPIKey   string        `yaml:"brave_api_key"`
	BraveEndpoint string        `yaml:"brave_endpoint"`
	BingAPIKey    string        `yaml:"bing_api_key"`
	GooglePSEKey  string        `yaml:"google_pse_key"`
	GooglePSECX   string        `yaml:"google_pse_cx"`
	SerpAPIKey    string        `yaml:"serpapi_key"`
	GroqAPIKey    string        `yaml:"groq_api_key"`
	GroqModel     string        `yaml:"groq_model"`
	DuckDuckGo    bool          `yaml:"duckduckgo"`
	Timeout       time.Duration `yaml:"timeout"`
	MaxAttempts   int           `yaml:"max_attempts"` // per request, including the first try
}

// Search configures the search router
type Search struct {
	Mode        string        `yaml:"mode"`
	MaxResults  int           `yaml:"max_results"`
	CacheSize   int           `yaml:"cache_size"`
	CacheTTL    time.Duration `yaml:"cache_ttl"`
	Deadline    time.Duration `yaml:"deadline"`
	RescoreTopN int           `yaml:"rescore_top_n"`
}

// Race configures the web race engine
type Race struct {
	Providers []string `yaml:"providers"`
}

// Generator configures the fast generative fallback
type Generator struct {
	Backend         string  `yaml:"backend"`
	Model           string  `yaml:"model"`
	BaseURL         string  `yaml:"base_url"`
	OpenAIAPIKey    string  `yaml:"openai_api_key"`
	DeepSeekAPIKey  string  `yaml:"deepseek_api_key"`
	AnthropicAPIKey string  `yaml:"anthropic_api_key"`
	MaxTokens       int     `yaml:"max_tokens"`
	Temperature     float64 `yaml:"temperature"`
}

// Answer configures the answer composition engine
type Answer struct {
	HistoryTurns    int `yaml:"history_turns"`
	RelevantChunks  int `yaml:"relevant_chunks"`
	DocExcerptChars int `yaml:"doc_excerpt_chars"`
}

// Location is an optional approximate user location used to rewrite
// location-sensitive queries.
type Location struct {
	Label   string `yaml:"label"`
	City    string `yaml:"city"`
	Region  string `yaml:"region"`
	Country string `yaml:"country"`
	Postal  string `yaml:"postal"`
}

// String renders the most specific available description of the location
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Label != "" {
		return l.Label
	}
	if l.Postal != "" {
		return l.Postal
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{l.City, l.Region, l.Country} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, ", ")
}

// Load reads the config file at path (or $ASKROUTE_CONFIG when path is
// empty), applies environment overrides and defaults, and validates the
// result. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays credentials and selected settings from the environment
func (c *Config) applyEnv() {
	setFromEnv(&c.Providers.BraveAPIKey, "BRAVE_API_KEY")
	setFromEnv(&c.Providers.BraveEndpoint, "BRAVE_API_ENDPOINT")
	setFromEnv(&c.Providers.BingAPIKey, "BING_API_KEY")
	setFromEnv(&c.Providers.GooglePSEKey, "GOOGLE_PSE_KEY")
	setFromEnv(&c.Providers.GooglePSECX, "GOOGLE_PSE_CX")
	setFromEnv(&c.Providers.SerpAPIKey, "SERPAPI_KEY")
	setFromEnv(&c.Providers.GroqAPIKey, "GROQ_API_KEY")
	setFromEnv(&c.Generator.OpenAIAPIKey, "OPENAI_API_KEY")
	setFromEnv(&c.Generator.DeepSeekAPIKey, "DEEPSEEK_API_KEY")
	setFromEnv(&c.Generator.AnthropicAPIKey, "ANTHROPIC_API_KEY")
	setFromEnv(&c.Search.Mode, "ASKROUTE_SEARCH_MODE")
	setFromEnv(&c.LogLevel, "ASKROUTE_LOG_LEVEL")
}

func setFromEnv(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}
