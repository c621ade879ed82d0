package stats

import (
	"sync"
	"time"

	"github.com/dshills/askroute/pkg/types"
)

// Recorder is the write side of provider health tracking
type Recorder interface {
	RecordSuccess(provider string, latency time.Duration)
	RecordError(provider string)
}

// Tracker keeps per-provider call counters for the lifetime of the process.
// It is safe for concurrent use.
type Tracker struct {
	mu    sync.Mutex
	stats map[string]*types.ProviderStat
	now   func() time.Time
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{
		stats: make(map[string]*types.ProviderStat),
		now:   time.Now,
	}
}

// ensure returns the slot for provider, creating it on first use.
// Caller must hold t.mu.
func (t *Tracker) ensure(provider string) *types.ProviderStat {
	s, ok := t.stats[provider]
	if !ok {
		s = &types.ProviderStat{}
		t.stats[provider] = s
	}
	return s
}

// RecordSuccess counts a successful call and folds its latency into the
// running average.
func (t *Tracker) RecordSuccess(provider string, latency time.Duration) {
	ms := float64(latency) / float64(time.Millisecond)

	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.ensure(provider)
	s.Calls++
	s.AvgLatencyMs += (ms - s.AvgLatencyMs) / float64(s.Calls)
	s.LastUsed = t.now()
}

// RecordError counts a failed call. Calls is left alone so the average
// latency reflects successful calls only.
func (t *Tracker) RecordError(provider string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.ensure(provider)
	s.Errors++
	s.LastUsed = t.now()
}

// Snapshot returns a copy of every provider's counters
func (t *Tracker) Snapshot() map[string]types.ProviderStat {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[string]types.ProviderStat, len(t.stats))
	for name, s := range t.stats {
		out[name] = *s
	}
	return out
}

// Reset forgets all counters
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.stats = make(map[string]*types.ProviderStat)
	t.mu.Unlock()
}

// Discard is a Recorder that drops everything
type Discard struct{}

func (Discard) RecordSuccess(string, time.Duration) {}
func (Discard) RecordError(string)                  {}
