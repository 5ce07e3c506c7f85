package matchers

import (
	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// Fallible carries the two return values of a fallible operation so
// that either side can be matched on.
type Fallible[T any] struct {
	Value T
	Err   error
}

// Try packages a (value, error) pair for matching, typically wrapping
// a function call directly: Try(strconv.Atoi("17")).
func Try[T any](value T, err error) Fallible[T] {
	return Fallible[T]{Value: value, Err: err}
}

// Ok matches a Fallible whose operation succeeded and whose value
// satisfies the inner matcher.
func Ok[T any](inner matcher.Matcher[T]) matcher.Matcher[Fallible[T]] {
	return okMatcher[T]{inner: inner}
}

type okMatcher[T any] struct {
	inner matcher.Matcher[T]
}

func (m okMatcher[T]) Matches(actual Fallible[T]) matcher.Result {
	if actual.Err != nil {
		return matcher.NoMatch
	}
	return m.inner.Matches(actual.Value)
}

func (m okMatcher[T]) Describe(result matcher.Result) *description.Description {
	if result.IsMatch() {
		return description.New().Textf(
			"is a success containing a value, which %s",
			m.inner.Describe(matcher.Match),
		)
	}
	return description.New().Textf(
		"is an error or a success containing a value, which %s",
		m.inner.Describe(matcher.NoMatch),
	)
}

func (m okMatcher[T]) Explain(actual Fallible[T]) *description.Description {
	if actual.Err != nil {
		return description.New().Textf("which is an error: %v", actual.Err)
	}
	return description.New().
		Text("which is a success").
		Nested(m.inner.Explain(actual.Value))
}

// Err matches a Fallible whose operation failed and whose error
// satisfies the inner matcher.
func Err[T any](inner matcher.Matcher[error]) matcher.Matcher[Fallible[T]] {
	return errMatcher[T]{inner: inner}
}

type errMatcher[T any] struct {
	inner matcher.Matcher[error]
}

func (m errMatcher[T]) Matches(actual Fallible[T]) matcher.Result {
	if actual.Err == nil {
		return matcher.NoMatch
	}
	return m.inner.Matches(actual.Err)
}

func (m errMatcher[T]) Describe(result matcher.Result) *description.Description {
	if result.IsMatch() {
		return description.New().Textf(
			"is an error, which %s", m.inner.Describe(matcher.Match),
		)
	}
	return description.New().Textf(
		"is a success or an error, which %s", m.inner.Describe(matcher.NoMatch),
	)
}

func (m errMatcher[T]) Explain(actual Fallible[T]) *description.Description {
	if actual.Err == nil {
		return description.New().Textf(
			"which is a success containing %s", matcher.FormatValue(actual.Value),
		)
	}
	return description.New().
		Text("which is an error").
		Nested(m.inner.Explain(actual.Err))
}
