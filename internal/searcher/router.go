package searcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/askroute/internal/config"
	"github.com/dshills/askroute/internal/logging"
	"github.com/dshills/askroute/internal/provider"
	"github.com/dshills/askroute/internal/stats"
	"github.com/dshills/askroute/pkg/types"
)

// Sequential provider orders for the cost and quality strategies
var (
	cheapestOrder = []string{provider.NameGooglePSE, provider.NameBing, provider.NameSerpAPI}
	accurateOrder = []string{provider.NameBing, provider.NameSerpAPI, provider.NameGooglePSE}
)

// ErrPanic wraps a recovered provider panic
var ErrPanic = errors.New("provider panicked")

// Options configures a Router. Zero values select defaults.
type Options struct {
	Stats       stats.Recorder
	Logger      *slog.Logger
	Mode        string
	MaxResults  int
	CacheSize   int
	CacheTTL    time.Duration
	Deadline    time.Duration // bounds a whole fan-out; 0 disables
	RescoreTopN int
	Location    string
}

// OptionsFromConfig maps the search config section onto router options
func OptionsFromConfig(cfg config.Search, loc *config.Location) Options {
	return Options{
		Mode:        cfg.Mode,
		MaxResults:  cfg.MaxResults,
		CacheSize:   cfg.CacheSize,
		CacheTTL:    cfg.CacheTTL,
		Deadline:    cfg.Deadline,
		RescoreTopN: cfg.RescoreTopN,
		Location:    loc.String(),
	}
}

// Router fans queries out to the registered providers
type Router struct {
	registry   *provider.Registry
	stats      stats.Recorder
	logger     *slog.Logger
	cache      *resultCache
	mode       string
	maxResults int
	deadline   time.Duration
	topN       int
	location   string
}

// New creates a Router over the registry
func New(registry *provider.Registry, opts Options) *Router {
	if opts.Stats == nil {
		opts.Stats = stats.Discard{}
	}
	if opts.Mode == "" {
		opts.Mode = config.ModeFastest
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = provider.DefaultMaxResults
	}
	if opts.RescoreTopN <= 0 {
		opts.RescoreTopN = DefaultRescoreTopN
	}

	return &Router{
		registry:   registry,
		stats:      opts.Stats,
		logger:     logging.OrDefault(opts.Logger),
		cache:      newResultCache(opts.CacheSize, opts.CacheTTL),
		mode:       strings.ToLower(opts.Mode),
		maxResults: opts.MaxResults,
		deadline:   opts.Deadline,
		topN:       opts.RescoreTopN,
		location:   opts.Location,
	}
}

// Mode returns the configured SmartSearch strategy
func (r *Router) Mode() string {
	return r.mode
}

// UnifiedSearch queries every enabled provider concurrently and returns the
// concatenation of their hits in priority order, capped at
// maxPerProvider per provider on average. A failing provider contributes
// nothing. The result is never nil.
func (r *Router) UnifiedSearch(ctx context.Context, query string, maxPerProvider int) []types.Hit {
	query = strings.TrimSpace(query)
	if query == "" {
		return []types.Hit{}
	}
	if maxPerProvider <= 0 {
		maxPerProvider = r.maxResults
	}

	key := cacheKey("unified", query, maxPerProvider)
	if hits, ok := r.cache.get(key); ok {
		r.logger.Debug("unified search cache hit", logging.FieldQuery, query)
		return hits
	}

	providers := r.registry.Ordered()
	if len(providers) == 0 {
		return []types.Hit{}
	}

	ctx, cancel := r.withDeadline(ctx)
	defer cancel()

	lists := make([][]types.Hit, len(providers))
	var g errgroup.Group
	for i, p := range providers {
		g.Go(func() error {
			out := invoke(ctx, p, query, maxPerProvider)
			r.record(p.Name(), out, false)
			if out.err == nil {
				lists[i] = out.hits
			}
			return nil
		})
	}
	_ = g.Wait()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		r.logger.Warn("unified search deadline reached",
			logging.FieldQuery, query,
			"deadline", r.deadline)
	}

	var hits []types.Hit
	for _, l := range lists {
		hits = append(hits, l...)
	}
	if limit := maxPerProvider * len(providers); len(hits) > limit {
		hits = hits[:limit]
	}
	if hits == nil {
		hits = []types.Hit{}
	}

	r.logger.Debug("unified search complete",
		logging.FieldQuery, query,
		logging.FieldCount, len(hits))
	r.cache.put(key, hits)
	return hits
}

// SmartSearch runs the configured strategy, falls back to DuckDuckGo when
// it yields nothing, and returns the top rescored hits.
func (r *Router) SmartSearch(ctx context.Context, query string) []types.Hit {
	query = strings.TrimSpace(query)
	if query == "" {
		return []types.Hit{}
	}
	if r.mode == config.ModeLocalOnly {
		r.logger.Debug("local-only mode, skipping web", logging.FieldQuery, query)
		return []types.Hit{}
	}

	query = BuildLocationQuery(query, r.location)
	key := cacheKey("smart:"+r.mode, query, r.maxResults)
	if hits, ok := r.cache.get(key); ok {
		return hits
	}

	ctx, cancel := r.withDeadline(ctx)
	defer cancel()

	var hits []types.Hit
	switch r.mode {
	case config.ModeCheapest:
		hits = r.sequential(ctx, query, r.registry.Select(cheapestOrder))
	case config.ModeAccurate:
		hits = r.sequential(ctx, query, r.registry.Select(accurateOrder))
	default:
		hits = r.fastest(ctx, query, r.registry.Ordered())
	}

	if len(hits) == 0 {
		hits = r.fallback(ctx, query)
	}
	if len(hits) == 0 {
		return []types.Hit{}
	}

	hits = RescoreSnippets(hits, query, r.topN)
	r.cache.put(key, hits)
	return hits
}

// ClearCache drops every cached result
func (r *Router) ClearCache() {
	r.cache.purge()
}

// sequential tries providers in order and stops at the first non-empty list
func (r *Router) sequential(ctx context.Context, query string, providers []provider.Provider) []types.Hit {
	for _, p := range providers {
		out := invoke(ctx, p, query, r.maxResults)
		r.record(p.Name(), out, true)
		if out.err == nil && len(out.hits) > 0 {
			r.logWinner(p.Name(), query, out.latency)
			return out.hits
		}
	}
	return nil
}

// fastest races providers and keeps the first non-empty list. Losers are
// cancelled and their results discarded.
func (r *Router) fastest(ctx context.Context, query string, providers []provider.Provider) []types.Hit {
	if len(providers) == 0 {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type finished struct {
		name string
		out  outcome
	}
	done := make(chan finished, len(providers))
	for _, p := range providers {
		go func() {
			done <- finished{name: p.Name(), out: invoke(ctx, p, query, r.maxResults)}
		}()
	}

	for range providers {
		f := <-done
		r.record(f.name, f.out, true)
		if f.out.err == nil && len(f.out.hits) > 0 {
			r.logWinner(f.name, query, f.out.latency)
			return f.out.hits
		}
	}
	return nil
}

// fallback queries the keyless DuckDuckGo provider
func (r *Router) fallback(ctx context.Context, query string) []types.Hit {
	p, err := r.registry.Get(provider.NameDuckDuckGo)
	if err != nil || !p.Enabled() {
		return nil
	}
	r.logger.Info("primary providers returned nothing, falling back",
		logging.FieldProvider, p.Name(),
		logging.FieldQuery, query)

	out := invoke(ctx, p, query, r.maxResults)
	r.record(p.Name(), out, true)
	if out.err != nil {
		return nil
	}
	return out.hits
}

// record feeds an outcome into the stats tracker. When emptyIsError is set
// a provider that answered with no hits is counted as failed.
func (r *Router) record(name string, out outcome, emptyIsError bool) {
	if out.err != nil || (emptyIsError && len(out.hits) == 0) {
		r.stats.RecordError(name)
		if out.err != nil {
			r.logger.Warn("provider search failed",
				logging.FieldProvider, name,
				logging.FieldError, out.err)
		}
		return
	}
	r.stats.RecordSuccess(name, out.latency)
}

func (r *Router) logWinner(name, query string, latency time.Duration) {
	r.logger.Debug("search provider won",
		logging.FieldMode, r.mode,
		logging.FieldProvider, name,
		logging.FieldQuery, query,
		logging.FieldLatencyMS, latency.Milliseconds())
}

func (r *Router) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.deadline > 0 {
		return context.WithTimeout(ctx, r.deadline)
	}
	return context.WithCancel(ctx)
}

// outcome is the result of one isolated provider call
type outcome struct {
	hits    []types.Hit
	latency time.Duration
	err     error
}

// invoke calls p.Search, converting a panic into an error
func invoke(ctx context.Context, p provider.Provider, query string, limit int) (out outcome) {
	start := time.Now()
	defer func() {
		out.latency = time.Since(start)
		if v := recover(); v != nil {
			out = outcome{latency: time.Since(start), err: fmt.Errorf("%w: %s: %v", ErrPanic, p.Name(), v)}
		}
	}()

	hits, err := p.Search(ctx, query, limit)
	if err != nil {
		return outcome{err: err}
	}
	return outcome{hits: hits}
}
