package metrics

import (
	"sync"
	"time"
)

// PrometheusMetrics implements TestMetrics using counters and gauges.
// It uses simple in-memory storage; real Prometheus integration is done
// by the host application using prometheus/client_golang.
type PrometheusMetrics struct {
	mu         sync.Mutex
	executions map[string]int
	assertions map[string]int
	durations  map[string][]time.Duration
	runTotal   int
	active     int
}

// NewPrometheusMetrics creates a new PrometheusMetrics instance.
func NewPrometheusMetrics() *PrometheusMetrics {
	return &PrometheusMetrics{
		executions: make(map[string]int),
		assertions: make(map[string]int),
		durations:  make(map[string][]time.Duration),
	}
}

func (m *PrometheusMetrics) RecordTest(test, status string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := test + ":" + status
	m.executions[key]++
	m.durations[test] = append(m.durations[test], duration)
}

func (m *PrometheusMetrics) RecordAssertion(test string, passed bool) {
	status := "failed"
	if passed {
		status = "passed"
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assertions[test+":"+status]++
}

func (m *PrometheusMetrics) IncrementRunTotal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runTotal++
}

func (m *PrometheusMetrics) SetActiveTests(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = count
}

// TestCount returns the count for a test+status combination.
func (m *PrometheusMetrics) TestCount(test, status string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.executions[test+":"+status]
}

// AssertionCount returns the count of passed or failed assertions
// recorded for a test.
func (m *PrometheusMetrics) AssertionCount(test string, passed bool) int {
	status := "failed"
	if passed {
		status = "passed"
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.assertions[test+":"+status]
}

// RunTotal returns the total number of runs.
func (m *PrometheusMetrics) RunTotal() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runTotal
}

// ActiveTests returns the current active tests gauge.
func (m *PrometheusMetrics) ActiveTests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}
