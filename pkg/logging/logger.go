// Package logging provides structured logging for the matcher
// framework with JSON, console, and multi-destination output.
package logging

// Logger defines the interface for structured diagnostics emitted
// while tests run.
type Logger interface {
	// Info logs an informational message.
	Info(msg string, fields ...Field)

	// Warn logs a warning message.
	Warn(msg string, fields ...Field)

	// Error logs an error message.
	Error(msg string, fields ...Field)

	// Debug logs a debug-level message.
	Debug(msg string, fields ...Field)

	// WithFields returns a Logger with additional default
	// fields attached to every subsequent log entry.
	WithFields(fields ...Field) Logger

	// LogAssertion logs one evaluated assertion.
	LogAssertion(assertion AssertionLog)

	// LogTestRun logs the outcome of one completed test.
	LogTestRun(run TestRunLog)

	// Close flushes any buffers and releases resources.
	Close() error
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// AssertionLog captures one assertion evaluation.
type AssertionLog struct {
	Timestamp string `json:"timestamp"`
	Test      string `json:"test"`
	Expected  string `json:"expected"`
	Actual    string `json:"actual,omitempty"`
	Passed    bool   `json:"passed"`
	Location  string `json:"location,omitempty"`
}

// TestRunLog captures the outcome of one test.
type TestRunLog struct {
	Timestamp  string `json:"timestamp"`
	Test       string `json:"test"`
	Passed     bool   `json:"passed"`
	Failures   int    `json:"failures"`
	DurationMs int64  `json:"duration_ms"`
}

// LogLevel represents logging severity levels.
type LogLevel int

const (
	// LevelDebug is the most verbose level.
	LevelDebug LogLevel = iota
	// LevelInfo is the default level.
	LevelInfo
	// LevelWarn indicates potential issues.
	LevelWarn
	// LevelError indicates failures.
	LevelError
)

// String returns the string representation of a log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
