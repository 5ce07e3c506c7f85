package monitor

import (
	"sync"
	"time"

	"digital.vasic.matchers/pkg/outcome"
)

// EventCollector captures test events and timing data. It implements
// verify.Observer, so it can be attached to test runs directly.
type EventCollector struct {
	mu       sync.RWMutex
	events   []TestEvent
	handlers []func(TestEvent)
	running  map[string]time.Time
	stats    CollectorStats
}

// CollectorStats holds aggregate statistics.
type CollectorStats struct {
	Total      int           `json:"total"`
	Passed     int           `json:"passed"`
	Failed     int           `json:"failed"`
	Assertions int           `json:"assertions"`
	StartTime  time.Time     `json:"start_time"`
	Duration   time.Duration `json:"duration"`
}

// NewEventCollector creates a new event collector.
func NewEventCollector() *EventCollector {
	return &EventCollector{
		events:  make([]TestEvent, 0, 64),
		running: make(map[string]time.Time),
		stats:   CollectorStats{StartTime: time.Now()},
	}
}

// OnEvent registers a handler to be called for each event.
func (c *EventCollector) OnEvent(handler func(TestEvent)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// Emit records an event and notifies all handlers.
func (c *EventCollector) Emit(event TestEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	c.mu.Lock()
	c.events = append(c.events, event)
	switch event.Type {
	case EventPassed:
		c.stats.Total++
		c.stats.Passed++
	case EventFailed:
		c.stats.Total++
		c.stats.Failed++
	case EventAssertion:
		c.stats.Assertions++
	}
	c.stats.Duration = time.Since(c.stats.StartTime)
	handlers := make([]func(TestEvent), len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
}

// TestStarted emits a test started event.
func (c *EventCollector) TestStarted(name string) {
	c.mu.Lock()
	c.running[name] = time.Now()
	c.mu.Unlock()

	c.Emit(TestEvent{
		Type:      EventStarted,
		Test:      name,
		Timestamp: time.Now(),
	})
}

// AssertionFailed emits an assertion failure event.
func (c *EventCollector) AssertionFailed(name string, failure *outcome.Failure) {
	c.Emit(TestEvent{
		Type:      EventAssertion,
		Test:      name,
		Message:   failure.Error(),
		Timestamp: time.Now(),
	})
}

// TestFinished emits a passed or failed event with the test's
// measured duration.
func (c *EventCollector) TestFinished(name string, passed bool) {
	c.mu.Lock()
	start, ok := c.running[name]
	delete(c.running, name)
	c.mu.Unlock()

	var duration time.Duration
	if ok {
		duration = time.Since(start)
	}
	typ := EventPassed
	if !passed {
		typ = EventFailed
	}
	c.Emit(TestEvent{
		Type:      typ,
		Test:      name,
		Duration:  duration,
		Timestamp: time.Now(),
	})
}

// Events returns a copy of all collected events.
func (c *EventCollector) Events() []TestEvent {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]TestEvent, len(c.events))
	copy(result, c.events)
	return result
}

// Stats returns the current aggregate statistics.
func (c *EventCollector) Stats() CollectorStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := c.stats
	s.Duration = time.Since(s.StartTime)
	return s
}

// Reset clears all collected events and statistics.
func (c *EventCollector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = c.events[:0]
	c.running = make(map[string]time.Time)
	c.stats = CollectorStats{StartTime: time.Now()}
}
