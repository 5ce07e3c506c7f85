package matchers

import (
	"cmp"

	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// Lt matches values strictly less than expected.
func Lt[T cmp.Ordered](expected T) matcher.Matcher[T] {
	return comparisonMatcher[T]{
		expected:    expected,
		holds:       func(actual, expected T) bool { return actual < expected },
		matchDesc:   "is less than",
		noMatchDesc: "is greater than or equal to",
	}
}

// Le matches values less than or equal to expected.
func Le[T cmp.Ordered](expected T) matcher.Matcher[T] {
	return comparisonMatcher[T]{
		expected:    expected,
		holds:       func(actual, expected T) bool { return actual <= expected },
		matchDesc:   "is less than or equal to",
		noMatchDesc: "is greater than",
	}
}

// Gt matches values strictly greater than expected.
func Gt[T cmp.Ordered](expected T) matcher.Matcher[T] {
	return comparisonMatcher[T]{
		expected:    expected,
		holds:       func(actual, expected T) bool { return actual > expected },
		matchDesc:   "is greater than",
		noMatchDesc: "is less than or equal to",
	}
}

// Ge matches values greater than or equal to expected.
func Ge[T cmp.Ordered](expected T) matcher.Matcher[T] {
	return comparisonMatcher[T]{
		expected:    expected,
		holds:       func(actual, expected T) bool { return actual >= expected },
		matchDesc:   "is greater than or equal to",
		noMatchDesc: "is less than",
	}
}

type comparisonMatcher[T cmp.Ordered] struct {
	expected    T
	holds       func(actual, expected T) bool
	matchDesc   string
	noMatchDesc string
}

func (m comparisonMatcher[T]) Matches(actual T) matcher.Result {
	return matcher.ResultOf(m.holds(actual, m.expected))
}

func (m comparisonMatcher[T]) Describe(result matcher.Result) *description.Description {
	return description.New().Textf(
		"%s %s",
		result.Pick(m.matchDesc, m.noMatchDesc),
		matcher.FormatValue(m.expected),
	)
}

func (m comparisonMatcher[T]) Explain(actual T) *description.Description {
	return matcher.Explain[T](m, actual)
}
