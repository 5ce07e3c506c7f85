package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// ANSI color codes.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

// ConsoleLogger provides colored console output.
type ConsoleLogger struct {
	mu      sync.Mutex
	output  io.Writer
	verbose bool
	fields  map[string]any
}

// NewConsoleLogger creates a console logger. When verbose is
// true, debug messages are emitted.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		output:  os.Stdout,
		verbose: verbose,
		fields:  make(map[string]any),
	}
}

func (c *ConsoleLogger) log(
	level LogLevel, color, msg string, fields ...Field,
) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts := time.Now().Format("15:04:05")
	levelStr := level.String()

	var fieldStr string
	if len(fields) > 0 {
		parts := make([]string, 0, len(fields))
		for _, f := range fields {
			parts = append(
				parts,
				fmt.Sprintf("%s=%v", f.Key, f.Value),
			)
		}
		fieldStr = " " + colorGray +
			fmt.Sprintf("{%s}", strings.Join(parts, ", ")) +
			colorReset
	}

	fmt.Fprintf(
		c.output, "%s%s%s [%s%-5s%s] %s%s\n",
		colorGray, ts, colorReset,
		color, levelStr, colorReset,
		msg, fieldStr,
	)
}

// Info logs an informational message.
func (c *ConsoleLogger) Info(msg string, fields ...Field) {
	c.log(LevelInfo, colorBlue, msg, fields...)
}

// Warn logs a warning message.
func (c *ConsoleLogger) Warn(msg string, fields ...Field) {
	c.log(LevelWarn, colorYellow, msg, fields...)
}

// Error logs an error message.
func (c *ConsoleLogger) Error(msg string, fields ...Field) {
	c.log(LevelError, colorRed, msg, fields...)
}

// Debug logs a debug message only if verbose is enabled.
func (c *ConsoleLogger) Debug(msg string, fields ...Field) {
	if c.verbose {
		c.log(LevelDebug, colorGray, msg, fields...)
	}
}

// WithFields returns a new Logger with additional default
// fields.
func (c *ConsoleLogger) WithFields(
	fields ...Field,
) Logger {
	newFields := make(map[string]any)
	for k, v := range c.fields {
		newFields[k] = v
	}
	for _, f := range fields {
		newFields[f.Key] = f.Value
	}
	return &ConsoleLogger{
		output:  c.output,
		verbose: c.verbose,
		fields:  newFields,
	}
}

// LogAssertion logs an assertion summary to the console. Passing
// assertions are only visible in verbose mode.
func (c *ConsoleLogger) LogAssertion(
	assertion AssertionLog,
) {
	fields := []Field{
		{Key: "test", Value: assertion.Test},
		{Key: "expected", Value: assertion.Expected},
	}
	if assertion.Passed {
		c.Debug("Assertion passed", fields...)
		return
	}
	if assertion.Location != "" {
		fields = append(fields, Field{Key: "location", Value: assertion.Location})
	}
	c.Error("Assertion failed", fields...)
}

// LogTestRun logs a test outcome summary to the console.
func (c *ConsoleLogger) LogTestRun(
	run TestRunLog,
) {
	fields := []Field{
		{Key: "test", Value: run.Test},
		{Key: "duration_ms", Value: run.DurationMs},
	}
	if run.Passed {
		c.Info("Test passed", fields...)
		return
	}
	fields = append(fields, Field{Key: "failures", Value: run.Failures})
	c.Error("Test failed", fields...)
}

// Close is a no-op for ConsoleLogger.
func (c *ConsoleLogger) Close() error {
	return nil
}
