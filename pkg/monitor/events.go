package monitor

import "time"

// EventType represents the type of test event.
type EventType string

const (
	EventStarted   EventType = "started"
	EventPassed    EventType = "passed"
	EventFailed    EventType = "failed"
	EventAssertion EventType = "assertion"
)

// TestEvent represents a lifecycle event during a test run.
type TestEvent struct {
	Type      EventType     `json:"type"`
	Test      string        `json:"test"`
	Message   string        `json:"message,omitempty"`
	Duration  time.Duration `json:"duration,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}
