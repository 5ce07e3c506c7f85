package matchers

import (
	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// ResultOf matches a value by applying fn to it and matching the
// inner matcher against the result. name labels fn in mismatch
// output. fn may be called more than once per match, so it must be
// pure.
func ResultOf[T, U any](name string, fn func(T) U, inner matcher.Matcher[U]) matcher.Matcher[T] {
	return resultOfMatcher[T, U]{name: name, fn: fn, inner: inner}
}

type resultOfMatcher[T, U any] struct {
	name  string
	fn    func(T) U
	inner matcher.Matcher[U]
}

func (m resultOfMatcher[T, U]) Matches(actual T) matcher.Result {
	return m.inner.Matches(m.fn(actual))
}

func (m resultOfMatcher[T, U]) Describe(result matcher.Result) *description.Description {
	return m.inner.Describe(result)
}

func (m resultOfMatcher[T, U]) Explain(actual T) *description.Description {
	result := m.fn(actual)
	return description.New().Textf(
		"where the result of applying %s to `%s` is %s, %s",
		matcher.FormatValue(actual), m.name, matcher.FormatValue(result), m.inner.Explain(result),
	)
}
