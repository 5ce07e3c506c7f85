package matchers

import (
	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// ElementsAre matches a slice whose elements satisfy the given
// matchers positionally. The slice must have exactly as many elements
// as there are matchers.
func ElementsAre[T any](elements ...matcher.Matcher[T]) matcher.Matcher[[]T] {
	return elementsAreMatcher[T]{elements: elements}
}

type elementsAreMatcher[T any] struct {
	elements []matcher.Matcher[T]
}

func (m elementsAreMatcher[T]) Matches(actual []T) matcher.Result {
	if len(actual) != len(m.elements) {
		return matcher.NoMatch
	}
	for i, e := range m.elements {
		if !e.Matches(actual[i]).IsMatch() {
			return matcher.NoMatch
		}
	}
	return matcher.Match
}

func (m elementsAreMatcher[T]) Describe(result matcher.Result) *description.Description {
	heading := result.Pick("has elements:", "doesn't have elements:")
	items := make([]*description.Description, len(m.elements))
	for i, e := range m.elements {
		items[i] = e.Describe(matcher.Match)
	}
	return description.New().
		Text(heading).
		Nested(description.New().Collect(items).Enumerate())
}

func (m elementsAreMatcher[T]) Explain(actual []T) *description.Description {
	if len(actual) != len(m.elements) {
		return description.New().Textf("whose size is %d", len(actual))
	}
	var failures []*description.Description
	for i, e := range m.elements {
		if e.Matches(actual[i]).IsMatch() {
			continue
		}
		failures = append(failures, description.New().Textf(
			"element #%d is %s, %s",
			i, matcher.FormatValue(actual[i]), e.Explain(actual[i]),
		))
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
