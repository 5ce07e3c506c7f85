package matchers

import (
	"reflect"

	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// Ne matches values not deeply equal to expected. It is the polarity
// inverse of Eq with descriptions worded directly rather than
// through Not.
func Ne[T any](expected T) matcher.Matcher[T] {
	return neMatcher[T]{expected: expected}
}

type neMatcher[T any] struct {
	expected T
}

func (m neMatcher[T]) Matches(actual T) matcher.Result {
	return matcher.ResultOf(!reflect.DeepEqual(actual, m.expected))
}

func (m neMatcher[T]) Describe(result matcher.Result) *description.Description {
	return description.New().Textf(
		"%s %s",
		result.Pick("isn't equal to", "is equal to"),
		matcher.FormatValue(m.expected),
	)
}

func (m neMatcher[T]) Explain(actual T) *description.Description {
	return matcher.Explain[T](m, actual)
}
