// Package verify evaluates matchers against values and reports
// failures. That and Fail build failures for the fatal path, where
// the test function returns an error; Expect records a failure and
// lets the test keep running.
package verify

import (
	"fmt"

	"digital.vasic.matchers/pkg/diff"
	"digital.vasic.matchers/pkg/matcher"
	"digital.vasic.matchers/pkg/outcome"
)

// Option adjusts how a single assertion reports its failure.
type Option func(*options)

type options struct {
	expression string
	message    string
	hasMessage bool
}

// Named sets the expression printed after "Value of:". Without it,
// the rendered actual value stands in for the expression.
func Named(expression string) Option {
	return func(o *options) {
		o.expression = expression
	}
}

// Message attaches context printed after the failure description.
// When given more than once, the last message wins.
func Message(format string, args ...any) Option {
	return func(o *options) {
		o.message = fmt.Sprintf(format, args...)
		o.hasMessage = true
	}
}

// That checks actual against m and returns nil on a match, or a
// *outcome.Failure describing the mismatch. Returning the error from
// the test function aborts the test:
//
//	if err := verify.That(got, matchers.Eq(want)); err != nil {
//		return err
//	}
func That[T any](actual T, m matcher.Matcher[T], opts ...Option) error {
	return that(actual, m, 1, opts)
}

// that is the shared assertion core. skip counts stack frames
// between the assertion site and this function.
func that[T any](actual T, m matcher.Matcher[T], skip int, opts []Option) error {
	if m.Matches(actual).IsMatch() {
		return nil
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	rendered := diff.Abbreviate(matcher.FormatValue(actual))
	expression := o.expression
	if expression == "" {
		expression = rendered
	}

	description := fmt.Sprintf(
		"Value of: %s\nExpected: %s\nActual: %s,\n%s",
		expression,
		m.Describe(matcher.Match),
		rendered,
		m.Explain(actual).Indent(),
	)

	failure := outcome.NewFailure(description, outcome.Here(skip+1)).WithActual(rendered)
	if o.hasMessage {
		failure.WithMessage("%s", o.message)
	}
	return failure
}

// Fail returns a failure with the given message, for conditions the
// matcher language cannot express:
//
//	return verify.Fail("channel closed before the reply arrived")
func Fail(format string, args ...any) error {
	return outcome.NewFailure(fmt.Sprintf(format, args...), outcome.Here(1))
}
