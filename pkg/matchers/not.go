package matchers

import (
	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// Not matches values that inner does not match. Its description is
// the inner matcher's description of the opposite polarity; prose is
// never negated textually. Its explanation is the inner matcher's
// explanation of why the value matched or didn't.
func Not[T any](inner matcher.Matcher[T]) matcher.Matcher[T] {
	return notMatcher[T]{inner: inner}
}

type notMatcher[T any] struct {
	inner matcher.Matcher[T]
}

func (m notMatcher[T]) Matches(actual T) matcher.Result {
	if m.inner.Matches(actual).IsMatch() {
		return matcher.NoMatch
	}
	return matcher.Match
}

func (m notMatcher[T]) Describe(result matcher.Result) *description.Description {
	if result.IsMatch() {
		return m.inner.Describe(matcher.NoMatch)
	}
	return m.inner.Describe(matcher.Match)
}

func (m notMatcher[T]) Explain(actual T) *description.Description {
	return m.inner.Explain(actual)
}
