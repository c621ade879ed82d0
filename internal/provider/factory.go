package provider

import (
	"github.com/dshills/askroute/internal/config"
)

// NewFromConfig constructs every known provider from the configuration.
// Providers whose credentials are missing are registered disabled so that
// lookups by name still succeed.
func NewFromConfig(cfg config.Providers) *Registry {
	opts := HTTPOptions{
		Timeout: cfg.Timeout,
		Retry:   DefaultRetryConfig(),
	}
	if cfg.MaxAttempts > 0 {
		opts.Retry.MaxAttempts = cfg.MaxAttempts
	}

	brave := opts
	brave.BaseURL = cfg.BraveEndpoint

	return NewRegistry(
		NewBraveProvider(cfg.BraveAPIKey, brave),
		NewSerpAPIProvider(cfg.SerpAPIKey, opts),
		NewGooglePSEProvider(cfg.GooglePSEKey, cfg.GooglePSECX, opts),
		NewBingProvider(cfg.BingAPIKey, opts),
		NewGroqProvider(cfg.GroqAPIKey, cfg.GroqModel, opts),
		NewDuckDuckGoProvider(cfg.DuckDuckGo, opts),
	)
}

// EnabledNames reports which providers in the registry are usable
func EnabledNames(r *Registry) []string {
	var out []string
	for _, name := range r.Names() {
		p, err := r.Get(name)
		if err == nil && p.Enabled() {
			out = append(out, name)
		}
	}
	return out
}
