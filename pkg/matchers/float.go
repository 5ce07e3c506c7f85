package matchers

import (
	"math"

	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// approxUlps is the tolerance, in units in the last place of the
// expected value, granted by ApproxEq.
const approxUlps = 4

// IsNaN matches NaN. It is the only matcher that does: plain
// equality matchers never match NaN.
func IsNaN() matcher.Matcher[float64] {
	return floatPredicateMatcher{
		holds:       math.IsNaN,
		matchDesc:   "is NaN",
		noMatchDesc: "isn't NaN",
	}
}

// IsFinite matches values that are neither infinite nor NaN.
func IsFinite() matcher.Matcher[float64] {
	return floatPredicateMatcher{
		holds: func(v float64) bool {
			return !math.IsInf(v, 0) && !math.IsNaN(v)
		},
		matchDesc:   "is finite",
		noMatchDesc: "isn't finite",
	}
}

type floatPredicateMatcher struct {
	holds       func(float64) bool
	matchDesc   string
	noMatchDesc string
}

func (m floatPredicateMatcher) Matches(actual float64) matcher.Result {
	return matcher.ResultOf(m.holds(actual))
}

func (m floatPredicateMatcher) Describe(result matcher.Result) *description.Description {
	return description.New().Text(result.Pick(m.matchDesc, m.noMatchDesc))
}

func (m floatPredicateMatcher) Explain(actual float64) *description.Description {
	return matcher.Explain[float64](m, actual)
}

// Near matches values within maxAbsError of expected. NaN inputs
// never match, whatever the tolerance.
func Near(expected, maxAbsError float64) matcher.Matcher[float64] {
	return nearMatcher{expected: expected, maxAbsError: maxAbsError}
}

// ApproxEq matches values within a tolerance derived from the
// magnitude of expected (a few units in the last place).
func ApproxEq(expected float64) matcher.Matcher[float64] {
	return nearMatcher{
		expected:    expected,
		maxAbsError: approxUlps * ulpOf(expected),
	}
}

type nearMatcher struct {
	expected    float64
	maxAbsError float64
}

func (m nearMatcher) Matches(actual float64) matcher.Result {
	if math.IsNaN(actual) || math.IsNaN(m.expected) {
		return matcher.NoMatch
	}
	return matcher.ResultOf(math.Abs(actual-m.expected) <= m.maxAbsError)
}

func (m nearMatcher) Describe(result matcher.Result) *description.Description {
	return description.New().Textf(
		"%s within %v of %v",
		result.Pick("is", "isn't"),
		m.maxAbsError,
		m.expected,
	)
}

func (m nearMatcher) Explain(actual float64) *description.Description {
	return matcher.Explain[float64](m, actual)
}

// ulpOf returns the distance from v to the next representable
// float64 away from zero.
func ulpOf(v float64) float64 {
	av := math.Abs(v)
	return math.Nextafter(av, math.Inf(1)) - av
}
