package matchers

import (
	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// Each matches slices in which every element satisfies the inner
// matcher. An empty slice matches vacuously.
func Each[T any](inner matcher.Matcher[T]) matcher.Matcher[[]T] {
	return eachMatcher[T]{inner: inner}
}

type eachMatcher[T any] struct {
	inner matcher.Matcher[T]
}

func (m eachMatcher[T]) Matches(actual []T) matcher.Result {
	for _, element := range actual {
		if !m.inner.Matches(element).IsMatch() {
			return matcher.NoMatch
		}
	}
	return matcher.Match
}

func (m eachMatcher[T]) Describe(result matcher.Result) *description.Description {
	inner := m.inner.Describe(matcher.Match)
	if result.IsMatch() {
		return description.New().Textf("only contains elements that %s", inner)
	}
	return description.New().Textf("contains an element that doesn't satisfy: %s", inner)
}

func (m eachMatcher[T]) Explain(actual []T) *description.Description {
	var failures []*description.Description
	for i, element := range actual {
		if !m.inner.Matches(element).IsMatch() {
			failures = append(failures, description.New().Textf(
				"element #%d is %s, %s",
				i, matcher.FormatValue(element), m.inner.Explain(element),
			))
		}
	}
	switch len(failures) {
	case 0:
		return description.New().Text("whose elements all match")
	case 1:
		return description.New().Textf("where %s", failures[0])
	default:
		return description.New().
			Text("where:").
			Nested(description.New().Collect(failures).BulletList())
	}
}
