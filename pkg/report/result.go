package report

import "time"

// Test statuses as recorded in reports.
const (
	StatusPassed = "passed"
	StatusFailed = "failed"
)

// TestResult captures the outcome of a single test.
type TestResult struct {
	Name       string            `json:"name"`
	Status     string            `json:"status"`
	StartTime  time.Time         `json:"start_time"`
	EndTime    time.Time         `json:"end_time"`
	Duration   time.Duration     `json:"duration"`
	Assertions []AssertionRecord `json:"assertions,omitempty"`
}

// AssertionRecord describes one recorded assertion failure.
type AssertionRecord struct {
	Description string `json:"description"`
	Passed      bool   `json:"passed"`
	Location    string `json:"location,omitempty"`
}

// Passed reports whether the test passed.
func (r *TestResult) Passed() bool {
	return r.Status == StatusPassed
}
