package monitoring

import (
	"sync"
	"time"
)

// Metrics collects in-process request counters served by /health.
type Metrics struct {
	mu                 sync.RWMutex
	startedAt          time.Time
	totalRequests      int64
	requestsByStatus   map[int]int64
	assessmentsScored  int64
	reportsRendered    int64
	reportsEmailed     int64
	emailFailures      int64
	cacheHits          int64
	cacheMisses        int64
	totalDuration      time.Duration
}

// NewMetrics creates a fresh metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		startedAt:        time.Now(),
		requestsByStatus: make(map[int]int64),
	}
}

// RecordRequest records one completed HTTP request.
func (m *Metrics) RecordRequest(status int, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalRequests++
	m.requestsByStatus[status]++
	m.totalDuration += duration
}

// IncrementAssessmentsScored counts one completed scoring pipeline run.
func (m *Metrics) IncrementAssessmentsScored() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assessmentsScored++
}

// IncrementReportsRendered counts one rendered report document.
func (m *Metrics) IncrementReportsRendered() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reportsRendered++
}

// IncrementReportsEmailed counts one successful report delivery.
func (m *Metrics) IncrementReportsEmailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reportsEmailed++
}

// IncrementEmailFailures counts one failed report delivery.
func (m *Metrics) IncrementEmailFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emailFailures++
}

// IncrementCacheHit counts one response served from cache.
func (m *Metrics) IncrementCacheHit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheHits++
}

// IncrementCacheMiss counts one response that bypassed the cache.
func (m *Metrics) IncrementCacheMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheMisses++
}

// GetStats returns a snapshot of all counters.
func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	byStatus := make(map[int]int64, len(m.requestsByStatus))
	for k, v := range m.requestsByStatus {
		byStatus[k] = v
	}

	var avgMs float64
	if m.totalRequests > 0 {
		avgMs = float64(m.totalDuration.Milliseconds()) / float64(m.totalRequests)
	}

	return map[string]interface{}{
		"uptime_seconds":      time.Since(m.startedAt).Seconds(),
		"total_requests":      m.totalRequests,
		"requests_by_status":  byStatus,
		"assessments_scored":  m.assessmentsScored,
		"reports_rendered":    m.reportsRendered,
		"reports_emailed":     m.reportsEmailed,
		"email_failures":      m.emailFailures,
		"cache_hits":          m.cacheHits,
		"cache_misses":        m.cacheMisses,
		"avg_request_time_ms": avgMs,
	}
}
