package verify

import (
	"errors"
	"fmt"
	"io"
	"os"
	"testing"
	"time"

	"digital.vasic.matchers/pkg/logging"
	"digital.vasic.matchers/pkg/matcher"
	"digital.vasic.matchers/pkg/outcome"
	"digital.vasic.matchers/pkg/testfilter"
)

// G is the per-test assertion context. It accumulates the test's
// outcome and carries the output and observers that failures are
// reported to.
type G struct {
	name      string
	out       io.Writer
	outcome   *outcome.Outcome
	observers []Observer
	logger    logging.Logger
	failures  int
}

// Name returns the name of the running test.
func (g *G) Name() string {
	return g.name
}

// Failed reports whether any assertion has failed so far.
func (g *G) Failed() bool {
	return g.outcome.Failed()
}

// RunOption configures Run.
type RunOption func(*runConfig)

type runConfig struct {
	out       io.Writer
	observers []Observer
	logger    logging.Logger
}

// Output redirects failure output, which otherwise goes to standard
// output.
func Output(w io.Writer) RunOption {
	return func(c *runConfig) {
		c.out = w
	}
}

// Observe registers observers for the test's lifecycle events.
func Observe(observers ...Observer) RunOption {
	return func(c *runConfig) {
		c.observers = append(c.observers, observers...)
	}
}

// WithLogger sets the logger used for lifecycle diagnostics.
func WithLogger(logger logging.Logger) RunOption {
	return func(c *runConfig) {
		c.logger = logger
	}
}

// Run executes fn as a test body with assertion support. A non-nil
// error return is a fatal assertion failure: it is printed and the
// test fails immediately. Non-fatal failures recorded through Expect
// also fail the test, once fn has run to completion.
//
// Tests excluded by the name filter or assigned to another shard are
// skipped.
func Run(tb testing.TB, fn func(g *G) error, opts ...RunOption) {
	tb.Helper()

	config := runConfig{out: os.Stdout, logger: logging.NullLogger{}}
	for _, opt := range opts {
		opt(&config)
	}

	if !testfilter.ShouldRun(tb.Name()) {
		tb.Skip("excluded by test filter or shard assignment")
		return
	}

	g := &G{
		name:      tb.Name(),
		out:       config.out,
		outcome:   outcome.New(),
		observers: config.observers,
		logger:    config.logger,
	}

	for _, obs := range g.observers {
		obs.TestStarted(g.name)
	}
	g.logger.Debug("test started", logging.TestField(g.name))
	start := time.Now()

	if err := fn(g); err != nil {
		g.fail(err)
	}

	passed := g.outcome.Passed()
	for _, obs := range g.observers {
		obs.TestFinished(g.name, passed)
	}
	g.logger.Debug("test finished",
		logging.TestField(g.name),
		logging.DurationField("duration", time.Since(start)))
	g.logger.LogTestRun(logging.TestRunLog{
		Timestamp:  time.Now().Format(time.RFC3339Nano),
		Test:       g.name,
		Passed:     passed,
		Failures:   g.failures,
		DurationMs: time.Since(start).Milliseconds(),
	})

	if !passed {
		tb.Fail()
	}
}

// Expect checks actual against m without aborting the test. The
// failure, if any, is printed and recorded; the test function keeps
// running and the test fails at the end.
func Expect[T any](g *G, actual T, m matcher.Matcher[T], opts ...Option) {
	if err := that(actual, m, 1, opts); err != nil {
		g.fail(err)
	}
}

// ExpectTrue is shorthand for expecting a condition to hold.
func ExpectTrue(g *G, condition bool, opts ...Option) {
	if condition {
		return
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	failure := outcome.NewFailure("Expected condition to be true", outcome.Here(1))
	if o.hasMessage {
		failure.WithMessage("%s", o.message)
	}
	g.fail(failure)
}

// fail records a failure against the test.
func (g *G) fail(err error) {
	fmt.Fprintln(g.out, err)
	g.outcome.Fail()
	g.failures++

	var failure *outcome.Failure
	if !errors.As(err, &failure) {
		failure = outcome.NewFailure(err.Error(), outcome.Location{})
	}
	for _, obs := range g.observers {
		obs.AssertionFailed(g.name, failure)
	}
	g.logger.LogAssertion(logging.AssertionLog{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Test:      g.name,
		Expected:  failure.Description,
		Actual:    failure.Actual,
		Passed:    false,
		Location:  failure.Location.String(),
	})
}
