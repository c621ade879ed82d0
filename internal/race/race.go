package race

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dshills/askroute/internal/logging"
	"github.com/dshills/askroute/internal/provider"
	"github.com/dshills/askroute/internal/stats"
	"github.com/dshills/askroute/pkg/types"
)

// DefaultHitsPerAnswer is how many hits a member fetches to compose an answer
const DefaultHitsPerAnswer = 3

var errPanic = errors.New("race member panicked")

// Result is the winning member's answer
type Result struct {
	Provider string
	Answer   string
	Latency  time.Duration
	Hits     []types.Hit
}

// Engine races a set of providers for a single web answer
type Engine struct {
	registry *provider.Registry
	members  []string
	stats    stats.Recorder
	logger   *slog.Logger
	hits     int
}

// Option configures an Engine
type Option func(*Engine)

// WithStats sets the recorder that receives per-member outcomes
func WithStats(r stats.Recorder) Option {
	return func(e *Engine) {
		if r != nil {
			e.stats = r
		}
	}
}

// WithLogger sets the engine logger
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = logging.OrDefault(l) }
}

// WithHitsPerAnswer sets how many hits are requested from hit-only members
func WithHitsPerAnswer(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.hits = n
		}
	}
}

// New creates an engine racing the named providers. Names absent from the
// registry or disabled at race time are skipped.
func New(registry *provider.Registry, members []string, opts ...Option) *Engine {
	e := &Engine{
		registry: registry,
		members:  append([]string(nil), members...),
		stats:    stats.Discard{},
		logger:   slog.Default(),
		hits:     DefaultHitsPerAnswer,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Members returns the configured race set
func (e *Engine) Members() []string {
	return append([]string(nil), e.members...)
}

type finish struct {
	name    string
	answer  string
	hits    []types.Hit
	latency time.Duration
	err     error
}

// Race starts every enabled member concurrently and returns the first
// non-empty answer. Remaining members are cancelled and their results
// discarded. The winner is recorded as a success; members that failed or
// came back empty before it are recorded as errors. ok is false when no
// member produced an answer or query is blank.
func (e *Engine) Race(ctx context.Context, query string) (res Result, ok bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Result{}, false
	}

	members := e.registry.Select(e.members)
	if len(members) == 0 {
		e.logger.Debug("race has no enabled members", logging.FieldQuery, query)
		return Result{}, false
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Buffered so members finishing after the winner never block
	done := make(chan finish, len(members))
	for _, p := range members {
		go func() {
			done <- e.run(ctx, p, query)
		}()
	}

	for range members {
		var f finish
		select {
		case f = <-done:
		case <-ctx.Done():
			e.logger.Debug("race cancelled", logging.FieldQuery, query, logging.FieldError, ctx.Err())
			return Result{}, false
		}

		if f.err != nil || f.answer == "" {
			e.stats.RecordError(f.name)
			if f.err != nil {
				e.logger.Warn("race member failed",
					logging.FieldProvider, f.name,
					logging.FieldError, f.err)
			}
			continue
		}

		e.stats.RecordSuccess(f.name, f.latency)
		e.logger.Debug("race won",
			logging.FieldProvider, f.name,
			logging.FieldLatencyMS, f.latency.Milliseconds())
		return Result{Provider: f.name, Answer: f.answer, Latency: f.latency, Hits: f.hits}, true
	}
	return Result{}, false
}

// run produces one member's answer. Answerers answer directly; other
// providers have their top hits formatted.
func (e *Engine) run(ctx context.Context, p provider.Provider, query string) (f finish) {
	start := time.Now()
	f.name = p.Name()
	defer func() {
		f.latency = time.Since(start)
		if v := recover(); v != nil {
			f.answer, f.hits = "", nil
			f.err = fmt.Errorf("%w: %s: %v", errPanic, f.name, v)
		}
	}()

	if a, isAnswerer := p.(provider.Answerer); isAnswerer {
		f.answer, f.err = a.Answer(ctx, query)
		f.answer = strings.TrimSpace(f.answer)
		return f
	}

	f.hits, f.err = p.Search(ctx, query, e.hits)
	if f.err == nil {
		f.answer = FormatAnswer(f.hits, e.hits)
	}
	return f
}

// FormatAnswer renders up to n hits as a compact plain-text answer, one
// hit per paragraph with its source URL.
func FormatAnswer(hits []types.Hit, n int) string {
	if n <= 0 {
		n = DefaultHitsPerAnswer
	}

	var b strings.Builder
	count := 0
	for _, h := range hits {
		if count == n {
			break
		}
		text := h.Snippet
		if text == "" {
			text = h.Title
		}
		if text == "" {
			continue
		}
		if count > 0 {
			b.WriteString("\n\n")
		}
		if h.Title != "" && h.Title != text {
			b.WriteString(h.Title)
			b.WriteString(": ")
		}
		b.WriteString(text)
		if h.URL != "" {
			b.WriteString(" (")
			b.WriteString(h.URL)
			b.WriteString(")")
		}
		count++
	}
	return b.String()
}
