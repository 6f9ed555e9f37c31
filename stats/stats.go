package stats

import (
	"os"
	"sync"
	"time"
)

// Environment variable name for controlling statistics visibility
const EnvDevMode = "DEV_MODE"

// Tracker collects in-memory request statistics. Nothing is persisted;
// counters reset on restart.
type Tracker struct {
	mu             sync.RWMutex
	uniqueVisitors map[string]time.Time // IP -> last visit time
	moduleRequests map[string]int       // module tag -> request count
	totalRequests  int
	errorCount     int
	totalLatencyMS float64
	latencySamples int
}

// NewTracker creates an empty statistics tracker.
func NewTracker() *Tracker {
	return &Tracker{
		uniqueVisitors: make(map[string]time.Time),
		moduleRequests: make(map[string]int),
	}
}

// TrackVisitor records a unique visitor by IP.
func (t *Tracker) TrackVisitor(ip string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.uniqueVisitors[ip] = time.Now()
}

// TrackRequest records one analysis request against a module tag
// ("seo", "search", "geo", "traffic", "report", "onpage").
func (t *Tracker) TrackRequest(module string, latencyMS float64, hasError bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.totalRequests++
	t.moduleRequests[module]++
	if hasError {
		t.errorCount++
	}
	t.totalLatencyMS += latencyMS
	t.latencySamples++
}

// UniqueVisitors24h returns the number of unique visitors in the last 24 hours.
func (t *Tracker) UniqueVisitors24h() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	cutoff := time.Now().Add(-24 * time.Hour)
	for _, lastVisit := range t.uniqueVisitors {
		if lastVisit.After(cutoff) {
			count++
		}
	}
	return count
}

// ErrorRate returns the error rate as a percentage of tracked requests.
func (t *Tracker) ErrorRate() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.totalRequests == 0 {
		return 0
	}
	return float64(t.errorCount) / float64(t.totalRequests) * 100
}

// Snapshot returns the current statistics. Per-module breakdown is only
// included in development mode.
func (t *Tracker) Snapshot() map[string]interface{} {
	t.mu.RLock()
	defer t.mu.RUnlock()

	avgLatency := 0.0
	if t.latencySamples > 0 {
		avgLatency = t.totalLatencyMS / float64(t.latencySamples)
	}

	out := map[string]interface{}{
		"uniqueVisitors24h": t.visitors24hLocked(),
		"totalRequests":     t.totalRequests,
		"errorRate":         t.errorRateLocked(),
		"averageLatencyMs":  avgLatency,
	}

	if os.Getenv(EnvDevMode) == "true" {
		byModule := make(map[string]int, len(t.moduleRequests))
		for k, v := range t.moduleRequests {
			byModule[k] = v
		}
		out["requestsByModule"] = byModule
	}

	return out
}

func (t *Tracker) visitors24hLocked() int {
	count := 0
	cutoff := time.Now().Add(-24 * time.Hour)
	for _, lastVisit := range t.uniqueVisitors {
		if lastVisit.After(cutoff) {
			count++
		}
	}
	return count
}

func (t *Tracker) errorRateLocked() float64 {
	if t.totalRequests == 0 {
		return 0
	}
	return float64(t.errorCount) / float64(t.totalRequests) * 100
}
