package matchers

import (
	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// Empty matches slices with no elements, including nil slices.
func Empty[T any]() matcher.Matcher[[]T] {
	return emptyMatcher[T]{}
}

type emptyMatcher[T any] struct{}

func (emptyMatcher[T]) Matches(actual []T) matcher.Result {
	return matcher.ResultOf(len(actual) == 0)
}

func (emptyMatcher[T]) Describe(result matcher.Result) *description.Description {
	return description.New().Text(result.Pick("is empty", "isn't empty"))
}

func (m emptyMatcher[T]) Explain(actual []T) *description.Description {
	return matcher.Explain[[]T](m, actual)
}
