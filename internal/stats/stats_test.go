package stats

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSuccess_RunningAverage(t *testing.T) {
	tr := NewTracker()
	tr.RecordSuccess("brave", 100*time.Millisecond)
	tr.RecordSuccess("brave", 300*time.Millisecond)

	s, ok := tr.Snapshot()["brave"]
	require.True(t, ok)
	assert.Equal(t, int64(2), s.Calls)
	assert.Equal(t, int64(0), s.Errors)
	assert.GreaterOrEqual(t, s.AvgLatencyMs, 100.0)
	assert.LessOrEqual(t, s.AvgLatencyMs, 300.0)
	assert.InDelta(t, 200.0, s.AvgLatencyMs, 0.001)
	assert.False(t, s.LastUsed.IsZero())
}

func TestRecordError_DoesNotCountCall(t *testing.T) {
	tr := NewTracker()
	tr.RecordSuccess("bing", 50*time.Millisecond)
	tr.RecordError("bing")
	tr.RecordError("bing")

	s := tr.Snapshot()["bing"]
	assert.Equal(t, int64(1), s.Calls)
	assert.Equal(t, int64(2), s.Errors)
	assert.InDelta(t, 50.0, s.AvgLatencyMs, 0.001)
}

func TestRecordError_CreatesUnknownProvider(t *testing.T) {
	tr := NewTracker()
	tr.RecordError("mystery")

	snap := tr.Snapshot()
	require.Contains(t, snap, "mystery")
	assert.Equal(t, int64(0), snap["mystery"].Calls)
	assert.Equal(t, int64(1), snap["mystery"].Errors)
}

func TestLastUsedUpdates(t *testing.T) {
	tr := NewTracker()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tr.now = func() time.Time { return fixed }

	tr.RecordError("serpapi")
	s := tr.Snapshot()["serpapi"]
	assert.Equal(t, fixed, s.LastUsed)

	later := fixed.Add(time.Minute)
	tr.now = func() time.Time { return later }
	tr.RecordSuccess("serpapi", time.Millisecond)
	s = tr.Snapshot()["serpapi"]
	assert.Equal(t, later, s.LastUsed)
}

func TestSnapshotIsCopy(t *testing.T) {
	tr := NewTracker()
	tr.RecordSuccess("groq", 10*time.Millisecond)

	snap := tr.Snapshot()
	s := snap["groq"]
	s.Calls = 99
	snap["groq"] = s

	got := tr.Snapshot()["groq"]
	assert.Equal(t, int64(1), got.Calls)
}

func TestConcurrentRecording(t *testing.T) {
	tr := NewTracker()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			tr.RecordSuccess("brave", 10*time.Millisecond)
		}()
		go func() {
			defer wg.Done()
			tr.RecordError("brave")
		}()
	}
	wg.Wait()

	s := tr.Snapshot()["brave"]
	assert.Equal(t, int64(50), s.Calls)
	assert.Equal(t, int64(50), s.Errors)
	assert.InDelta(t, 10.0, s.AvgLatencyMs, 0.001)
}

func TestReset(t *testing.T) {
	tr := NewTracker()
	tr.RecordError("bing")
	tr.Reset()
	assert.Empty(t, tr.Snapshot())
}
