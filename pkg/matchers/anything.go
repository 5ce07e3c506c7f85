package matchers

import (
	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// Anything matches any value of type T.
func Anything[T any]() matcher.Matcher[T] {
	return anythingMatcher[T]{}
}

type anythingMatcher[T any] struct{}

func (anythingMatcher[T]) Matches(T) matcher.Result {
	return matcher.Match
}

func (anythingMatcher[T]) Describe(result matcher.Result) *description.Description {
	return description.New().Text(result.Pick("is anything", "never matches"))
}

func (m anythingMatcher[T]) Explain(actual T) *description.Description {
	return matcher.Explain[T](m, actual)
}
