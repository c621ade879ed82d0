package types

import "time"

// ProviderStat is a point-in-time view of a provider's health counters.
// AvgLatencyMs only reflects successful calls.
type ProviderStat struct {
	Calls        int64     `json:"calls"`
	Errors       int64     `json:"errors"`
	AvgLatencyMs float64   `json:"avg_latency_ms"`
	LastUsed     time.Time `json:"last_used"`
}

// ErrorRate returns errors / (calls + errors), or 0 when the provider was never observed
func (s ProviderStat) ErrorRate() float64 {
	total := s.Calls + s.Errors
	if total == 0 {
		return 0
	}
	return float64(s.Errors) / float64(total)
}
