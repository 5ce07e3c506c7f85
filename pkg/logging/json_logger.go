package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// jsonMarshal is a variable for dependency injection in tests.
var jsonMarshal = json.Marshal

// LogEntry represents a single JSON log entry.
type LogEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// LoggerConfig configures the JSONLogger.
type LoggerConfig struct {
	OutputPath   string
	AssertionLog string
	TestRunLog   string
	Level        LogLevel
	Verbose      bool
	Fields       map[string]any
}

// JSONLogger implements Logger with JSON Lines output.
type JSONLogger struct {
	mu           sync.Mutex
	output       io.Writer
	assertionLog io.Writer
	testRunLog   io.Writer
	level        LogLevel
	fields       map[string]any
	verbose      bool
	closed       bool
}

// NewJSONLogger creates a new JSON logger. If OutputPath is
// empty, logs are written to stdout.
func NewJSONLogger(config LoggerConfig) (*JSONLogger, error) {
	logger := &JSONLogger{
		level:   config.Level,
		verbose: config.Verbose,
		fields:  config.Fields,
	}

	if logger.fields == nil {
		logger.fields = make(map[string]any)
	}

	if config.OutputPath != "" {
		dir := filepath.Dir(config.OutputPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf(
				"failed to create log directory: %w", err,
			)
		}
		file, err := os.OpenFile(
			config.OutputPath,
			os.O_CREATE|os.O_WRONLY|os.O_APPEND,
			0644,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to open log file: %w", err,
			)
		}
		logger.output = file
	} else {
		logger.output = os.Stdout
	}

	if config.AssertionLog != "" {
		file, err := os.OpenFile(
			config.AssertionLog,
			os.O_CREATE|os.O_WRONLY|os.O_APPEND,
			0644,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to open assertion log: %w", err,
			)
		}
		logger.assertionLog = file
	}

	if config.TestRunLog != "" {
		file, err := os.OpenFile(
			config.TestRunLog,
			os.O_CREATE|os.O_WRONLY|os.O_APPEND,
			0644,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to open test run log: %w", err,
			)
		}
		logger.testRunLog = file
	}

	return logger, nil
}

func (l *JSONLogger) log(
	level LogLevel, msg string, fields ...Field,
) {
	if l.closed {
		return
	}
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry := LogEntry{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Level:     level.String(),
		Message:   msg,
		Fields:    make(map[string]any),
	}

	for k, v := range l.fields {
		entry.Fields[k] = v
	}
	for _, f := range fields {
		entry.Fields[f.Key] = f.Value
	}

	data, err := jsonMarshal(entry)
	if err != nil {
		return
	}

	fmt.Fprintln(l.output, string(data))
}

// Info logs an informational message.
func (l *JSONLogger) Info(msg string, fields ...Field) {
	l.log(LevelInfo, msg, fields...)
}

// Warn logs a warning message.
func (l *JSONLogger) Warn(msg string, fields ...Field) {
	l.log(LevelWarn, msg, fields...)
}

// Error logs an error message.
func (l *JSONLogger) Error(msg string, fields ...Field) {
	l.log(LevelError, msg, fields...)
}

// Debug logs a debug message only if verbose is enabled.
func (l *JSONLogger) Debug(msg string, fields ...Field) {
	if l.verbose {
		l.log(LevelDebug, msg, fields...)
	}
}

// WithFields returns a new Logger with additional default
// fields.
func (l *JSONLogger) WithFields(fields ...Field) Logger {
	newFields := make(map[string]any)
	for k, v := range l.fields {
		newFields[k] = v
	}
	for _, f := range fields {
		newFields[f.Key] = f.Value
	}

	return &JSONLogger{
		output:       l.output,
		assertionLog: l.assertionLog,
		testRunLog:   l.testRunLog,
		level:        l.level,
		verbose:      l.verbose,
		fields:       newFields,
	}
}

// LogAssertion logs an assertion to the dedicated assertion log.
func (l *JSONLogger) LogAssertion(assertion AssertionLog) {
	if l.assertionLog == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := jsonMarshal(assertion)
	if err != nil {
		return
	}

	fmt.Fprintln(l.assertionLog, string(data))
}

// LogTestRun logs a test outcome to the dedicated test run log.
func (l *JSONLogger) LogTestRun(run TestRunLog) {
	if l.testRunLog == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := jsonMarshal(run)
	if err != nil {
		return
	}

	fmt.Fprintln(l.testRunLog, string(data))
}

// Close flushes and closes all underlying writers.
func (l *JSONLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true

	var errs []error

	if closer, ok := l.output.(io.Closer); ok &&
		l.output != os.Stdout {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if closer, ok := l.assertionLog.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if closer, ok := l.testRunLog.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// SetupLogging creates a logging configuration for a test run
// in the given logs directory.
func SetupLogging(
	logsDir string,
	verbose bool,
) (*JSONLogger, error) {
	config := LoggerConfig{
		OutputPath: filepath.Join(
			logsDir, "matchers.log",
		),
		AssertionLog: filepath.Join(
			logsDir, "assertions.log",
		),
		TestRunLog: filepath.Join(
			logsDir, "test_runs.log",
		),
		Level:   LevelInfo,
		Verbose: verbose,
	}

	if verbose {
		config.Level = LevelDebug
	}

	return NewJSONLogger(config)
}
