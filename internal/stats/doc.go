// Package stats tracks per-provider health: call count, error count,
// rolling average latency of successful calls, and last-used time.
//
// A single Tracker is created at startup and shared by reference between
// the search router and the race engine. Both only see the Recorder
// interface:
//
//	tracker := stats.NewTracker()
//	tracker.RecordSuccess("brave", 120*time.Millisecond)
//	tracker.RecordError("bing")
//	snap := tracker.Snapshot()
//
// Counters live for the process lifetime and are never persisted.
package stats
