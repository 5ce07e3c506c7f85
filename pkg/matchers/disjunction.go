package matchers

import (
	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// Or matches values that at least one of first and second matches.
//
// The explanation always reports both operands: a disjunction only
// fails when every alternative failed, and the reader needs to see
// why each one did.
func Or[T any](first, second matcher.Matcher[T]) matcher.Matcher[T] {
	return disjunctionMatcher[T]{first: first, second: second}
}

type disjunctionMatcher[T any] struct {
	first  matcher.Matcher[T]
	second matcher.Matcher[T]
}

func (m disjunctionMatcher[T]) Matches(actual T) matcher.Result {
	if m.first.Matches(actual).IsMatch() || m.second.Matches(actual).IsMatch() {
		return matcher.Match
	}
	return matcher.NoMatch
}

func (m disjunctionMatcher[T]) Describe(result matcher.Result) *description.Description {
	return description.New().Textf(
		"%s, or %s",
		m.first.Describe(result),
		m.second.Describe(result),
	)
}

func (m disjunctionMatcher[T]) Explain(actual T) *description.Description {
	return description.New().
		Nested(m.first.Explain(actual)).
		Text("or").
		Nested(m.second.Explain(actual))
}
