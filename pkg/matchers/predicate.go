package matchers

import (
	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// Predicate matches values for which pred returns true. The generic
// descriptions ("matches" / "does not match") carry no detail; use
// PredicateDescribed when the failure message should name the
// condition.
func Predicate[T any](pred func(T) bool) matcher.Matcher[T] {
	return predicateMatcher[T]{
		pred:        pred,
		matchDesc:   "matches",
		noMatchDesc: "does not match",
	}
}

// PredicateDescribed is Predicate with explicit prose for the two
// polarities.
func PredicateDescribed[T any](pred func(T) bool, matchDesc, noMatchDesc string) matcher.Matcher[T] {
	return predicateMatcher[T]{
		pred:        pred,
		matchDesc:   matchDesc,
		noMatchDesc: noMatchDesc,
	}
}

type predicateMatcher[T any] struct {
	pred        func(T) bool
	matchDesc   string
	noMatchDesc string
}

func (m predicateMatcher[T]) Matches(actual T) matcher.Result {
	return matcher.ResultOf(m.pred(actual))
}

func (m predicateMatcher[T]) Describe(result matcher.Result) *description.Description {
	return description.New().Text(result.Pick(m.matchDesc, m.noMatchDesc))
}

func (m predicateMatcher[T]) Explain(actual T) *description.Description {
	return matcher.Explain[T](m, actual)
}
