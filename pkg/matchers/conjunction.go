package matchers

import (
	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// And matches values that both first and second match.
//
// When exactly one operand fails, the explanation is that operand's
// explanation alone; prose about the passing operand would only
// obscure the failure. When both fail, the two explanations are
// joined with "and".
func And[T any](first, second matcher.Matcher[T]) matcher.Matcher[T] {
	return conjunctionMatcher[T]{first: first, second: second}
}

type conjunctionMatcher[T any] struct {
	first  matcher.Matcher[T]
	second matcher.Matcher[T]
}

func (m conjunctionMatcher[T]) Matches(actual T) matcher.Result {
	if m.first.Matches(actual).IsMatch() && m.second.Matches(actual).IsMatch() {
		return matcher.Match
	}
	return matcher.NoMatch
}

func (m conjunctionMatcher[T]) Describe(result matcher.Result) *description.Description {
	return description.New().Textf(
		"%s, and %s",
		m.first.Describe(result),
		m.second.Describe(result),
	)
}

func (m conjunctionMatcher[T]) Explain(actual T) *description.Description {
	firstMatched := m.first.Matches(actual).IsMatch()
	secondMatched := m.second.Matches(actual).IsMatch()

	switch {
	case !firstMatched && secondMatched:
		return m.first.Explain(actual)
	case firstMatched && !secondMatched:
		return m.second.Explain(actual)
	default:
		return description.New().
			Nested(m.first.Explain(actual)).
			Text("and").
			Nested(m.second.Explain(actual))
	}
}
