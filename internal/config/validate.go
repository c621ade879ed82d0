package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned for configuration values that cannot be used
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks enumerations and ranges
func (c *Config) Validate() error {
	switch c.Search.Mode {
	case ModeFastest, ModeCheapest, ModeAccurate, ModeLocalOnly:
	default:
		return fmt.Errorf("%w: search.mode %q", ErrInvalidConfig, c.Search.Mode)
	}

	switch c.Generator.Backend {
	case BackendGroq, BackendOpenAI, BackendDeepSeek, BackendAnthropic:
	default:
		return fmt.Errorf("%w: generator.backend %q", ErrInvalidConfig, c.Generator.Backend)
	}

	switch c.LogFormat {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	}

	if c.Search.CacheTTL < 0 {
		return fmt.Errorf("%w: search.cache_ttl must not be negative", ErrInvalidConfig)
	}
	if c.Search.Deadline < 0 {
		return fmt.Errorf("%w: search.deadline must not be negative", ErrInvalidConfig)
	}
	if c.Generator.Temperature < 0 || c.Generator.Temperature > 2 {
		return fmt.Errorf("%w: generator.temperature out of range", ErrInvalidConfig)
	}
	return nil
}
