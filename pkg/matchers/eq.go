package matchers

import (
	"reflect"
	"strings"

	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/diff"
	"digital.vasic.matchers/pkg/matcher"
)

// Eq matches values deeply equal to expected. NaN is never equal to
// anything, including itself; use IsNaN to match NaN.
//
// When both the expected and the actual value render across multiple
// lines, the mismatch explanation carries a structured line diff of
// the two renderings.
func Eq[T any](expected T) matcher.Matcher[T] {
	return eqMatcher[T]{expected: expected}
}

type eqMatcher[T any] struct {
	expected T
}

func (m eqMatcher[T]) Matches(actual T) matcher.Result {
	return matcher.ResultOf(reflect.DeepEqual(actual, m.expected))
}

func (m eqMatcher[T]) Describe(result matcher.Result) *description.Description {
	return description.New().Textf(
		"%s %s",
		result.Pick("is equal to", "isn't equal to"),
		matcher.FormatValue(m.expected),
	)
}

func (m eqMatcher[T]) Explain(actual T) *description.Description {
	if m.Matches(actual).IsMatch() {
		return matcher.Explain[T](m, actual)
	}

	expectedRendered := matcher.FormatValue(m.expected)
	actualRendered := matcher.FormatValue(actual)
	d := description.New().Textf("which isn't equal to %s", expectedRendered)

	if strings.Contains(expectedRendered, "\n") || strings.Contains(actualRendered, "\n") {
		if summary := diff.Summarize(expectedRendered, actualRendered); summary != "" {
			d.Text("Difference:").Text(summary)
		}
	}
	return d
}
