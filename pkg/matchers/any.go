package matchers

import (
	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// AnyOf matches values that at least one component matches.
//
// With no components it never matches (the empty disjunction is
// false). With one component it is a transparent passthrough. With
// two or more, the description is a bulleted property list and the
// explanation reports every component, since the whole expression
// only fails when all alternatives did.
func AnyOf[T any](components ...matcher.Matcher[T]) matcher.Matcher[T] {
	return anyOfMatcher[T]{components: components}
}

type anyOfMatcher[T any] struct {
	components []matcher.Matcher[T]
}

func (m anyOfMatcher[T]) Matches(actual T) matcher.Result {
	for _, c := range m.components {
		if c.Matches(actual).IsMatch() {
			return matcher.Match
		}
	}
	return matcher.NoMatch
}

func (m anyOfMatcher[T]) Describe(result matcher.Result) *description.Description {
	switch len(m.components) {
	case 0:
		return Anything[T]().Describe(opposite(result))
	case 1:
		return m.components[0].Describe(result)
	default:
		return describePropertyList(
			m.components,
			result,
			result.Pick(
				"has at least one of the following properties",
				"has none of the following properties",
			),
		)
	}
}

func (m anyOfMatcher[T]) Explain(actual T) *description.Description {
	switch len(m.components) {
	case 0:
		return description.New().Text("which never matches")
	case 1:
		return m.components[0].Explain(actual)
	default:
		explanations := make([]*description.Description, 0, len(m.components))
		for _, c := range m.components {
			explanations = append(explanations, c.Explain(actual))
		}
		return description.New().
			Text("").
			Nested(description.New().Collect(explanations).BulletList())
	}
}

// opposite flips a result. AnyOf with no components uses it to
// borrow Anything's prose with inverted polarity.
func opposite(r matcher.Result) matcher.Result {
	if r.IsMatch() {
		return matcher.NoMatch
	}
	return matcher.Match
}
