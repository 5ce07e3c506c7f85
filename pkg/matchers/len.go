package matchers

import (
	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// Len matches slices whose length satisfies the inner matcher.
func Len[T any](inner matcher.Matcher[int]) matcher.Matcher[[]T] {
	return lenMatcher[T]{inner: inner}
}

// HasSize matches slices with exactly the given number of elements.
func HasSize[T any](size int) matcher.Matcher[[]T] {
	return Len[T](Eq(size))
}

type lenMatcher[T any] struct {
	inner matcher.Matcher[int]
}

func (m lenMatcher[T]) Matches(actual []T) matcher.Result {
	return m.inner.Matches(len(actual))
}

func (m lenMatcher[T]) Describe(result matcher.Result) *description.Description {
	return description.New().Textf(
		"has length, which %s", m.inner.Describe(result),
	)
}

func (m lenMatcher[T]) Explain(actual []T) *description.Description {
	return description.New().Textf(
		"which has length %d, %s", len(actual), m.inner.Explain(len(actual)),
	)
}
