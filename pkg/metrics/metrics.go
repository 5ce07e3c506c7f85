package metrics

import "time"

// TestMetrics defines the interface for recording test metrics.
type TestMetrics interface {
	// RecordTest records a completed test.
	RecordTest(test, status string, duration time.Duration)
	// RecordAssertion records an assertion evaluation.
	RecordAssertion(test string, passed bool)
	// IncrementRunTotal increments the total run counter.
	IncrementRunTotal()
	// SetActiveTests sets the gauge of currently running tests.
	SetActiveTests(count int)
}

// NoopMetrics is a no-op implementation of TestMetrics useful
// when metrics collection is disabled.
type NoopMetrics struct{}

func (NoopMetrics) RecordTest(_, _ string, _ time.Duration) {}
func (NoopMetrics) RecordAssertion(_ string, _ bool)        {}
func (NoopMetrics) IncrementRunTotal()                      {}
func (NoopMetrics) SetActiveTests(_ int)                    {}
