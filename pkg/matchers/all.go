package matchers

import (
	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// AllOf matches values that every component matches.
//
// With no components it behaves as Anything (the empty conjunction
// holds vacuously). With one component it is a transparent
// passthrough: description and explanation are the component's own,
// with no wrapper prose. With two or more, the description is a
// bulleted property list and the explanation reports only the
// failing components.
func AllOf[T any](components ...matcher.Matcher[T]) matcher.Matcher[T] {
	return allOfMatcher[T]{components: components}
}

type allOfMatcher[T any] struct {
	components []matcher.Matcher[T]
}

func (m allOfMatcher[T]) Matches(actual T) matcher.Result {
	for _, c := range m.components {
		if !c.Matches(actual).IsMatch() {
			return matcher.NoMatch
		}
	}
	return matcher.Match
}

func (m allOfMatcher[T]) Describe(result matcher.Result) *description.Description {
	switch len(m.components) {
	case 0:
		return Anything[T]().Describe(result)
	case 1:
		return m.components[0].Describe(result)
	default:
		return describePropertyList(
			m.components,
			result,
			result.Pick(
				"has all the following properties",
				"doesn't have all the following properties",
			),
		)
	}
}

func (m allOfMatcher[T]) Explain(actual T) *description.Description {
	var failures []*description.Description
	for _, c := range m.components {
		if !c.Matches(actual).IsMatch() {
			failures = append(failures, c.Explain(actual))
		}
	}
	switch len(failures) {
	case 0:
		return matcher.Explain[T](m, actual)
	case 1:
		return failures[0]
	default:
		return description.New().
			Text("").
			Nested(description.New().Collect(failures).BulletList())
	}
}

// describePropertyList renders a heading followed by each
// component's description as a bullet point.
func describePropertyList[T any](
	components []matcher.Matcher[T],
	result matcher.Result,
	heading string,
) *description.Description {
	list := description.New()
	for _, c := range components {
		list.Nested(c.Describe(result))
	}
	return description.New().
		Textf("%s:", heading).
		Nested(list.BulletList())
}
