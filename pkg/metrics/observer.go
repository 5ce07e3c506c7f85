package metrics

import (
	"sync"
	"time"

	"digital.vasic.matchers/pkg/outcome"
)

// Observer bridges test lifecycle events to a TestMetrics sink. It
// implements verify.Observer and may be shared across concurrently
// running tests.
type Observer struct {
	metrics TestMetrics

	mu      sync.Mutex
	started map[string]time.Time
	active  int
}

// NewObserver creates an Observer recording into the given sink.
func NewObserver(m TestMetrics) *Observer {
	return &Observer{
		metrics: m,
		started: make(map[string]time.Time),
	}
}

func (o *Observer) TestStarted(name string) {
	o.mu.Lock()
	o.started[name] = time.Now()
	o.active++
	active := o.active
	o.mu.Unlock()

	o.metrics.IncrementRunTotal()
	o.metrics.SetActiveTests(active)
}

func (o *Observer) AssertionFailed(name string, _ *outcome.Failure) {
	o.metrics.RecordAssertion(name, false)
}

func (o *Observer) TestFinished(name string, passed bool) {
	o.mu.Lock()
	start, ok := o.started[name]
	delete(o.started, name)
	o.active--
	active := o.active
	o.mu.Unlock()

	var duration time.Duration
	if ok {
		duration = time.Since(start)
	}
	status := "failed"
	if passed {
		status = "passed"
	}
	o.metrics.RecordTest(name, status, duration)
	o.metrics.SetActiveTests(active)
}
