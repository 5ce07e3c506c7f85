package matchers

import (
	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// Contains matches slices with at least one element satisfying the
// inner matcher.
func Contains[T any](inner matcher.Matcher[T]) matcher.Matcher[[]T] {
	return containsMatcher[T]{inner: inner}
}

type containsMatcher[T any] struct {
	inner matcher.Matcher[T]
}

func (m containsMatcher[T]) Matches(actual []T) matcher.Result {
	for _, element := range actual {
		if m.inner.Matches(element).IsMatch() {
			return matcher.Match
		}
	}
	return matcher.NoMatch
}

func (m containsMatcher[T]) Describe(result matcher.Result) *description.Description {
	inner := m.inner.Describe(matcher.Match)
	if result.IsMatch() {
		return description.New().Textf("contains at least one element which %s", inner)
	}
	return description.New().Textf("contains no element which %s", inner)
}

func (m containsMatcher[T]) Explain(actual []T) *description.Description {
	count := 0
	for _, element := range actual {
		if m.inner.Matches(element).IsMatch() {
			count++
		}
	}
	if count > 0 {
		return description.New().Textf("which contains %d matching elements", count)
	}
	return description.New().Text("which contains no matching elements")
}
