package report

import (
	"sync"
	"time"

	"digital.vasic.matchers/pkg/outcome"
)

// Recorder accumulates test results from lifecycle events. It
// implements verify.Observer, so it can be attached to test runs and
// handed to a Reporter afterwards.
type Recorder struct {
	mu      sync.Mutex
	open    map[string]*TestResult
	results []*TestResult
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		open: make(map[string]*TestResult),
	}
}

func (r *Recorder) TestStarted(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.open[name] = &TestResult{
		Name:      name,
		StartTime: time.Now(),
	}
}

func (r *Recorder) AssertionFailed(name string, failure *outcome.Failure) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result, ok := r.open[name]
	if !ok {
		return
	}
	result.Assertions = append(result.Assertions, AssertionRecord{
		Description: failure.Description,
		Passed:      false,
		Location:    failure.Location.String(),
	})
}

func (r *Recorder) TestFinished(name string, passed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result, ok := r.open[name]
	if !ok {
		result = &TestResult{Name: name, StartTime: time.Now()}
	}
	delete(r.open, name)

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)
	result.Status = StatusFailed
	if passed {
		result.Status = StatusPassed
	}
	r.results = append(r.results, result)
}

// Results returns the finished test results in completion order.
func (r *Recorder) Results() []*TestResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*TestResult, len(r.results))
	copy(out, r.results)
	return out
}

// Reset discards all recorded results.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.open = make(map[string]*TestResult)
	r.results = nil
}
