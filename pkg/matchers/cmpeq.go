package matchers

import (
	"strings"

	gocmp "github.com/google/go-cmp/cmp"

	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// CmpEq matches values equal to expected under go-cmp semantics,
// honoring the supplied options (comparers, transformers, field
// filters). The mismatch explanation carries the go-cmp difference
// report (-actual +expected).
func CmpEq[T any](expected T, opts ...gocmp.Option) matcher.Matcher[T] {
	return cmpEqMatcher[T]{expected: expected, opts: opts}
}

type cmpEqMatcher[T any] struct {
	expected T
	opts     []gocmp.Option
}

func (m cmpEqMatcher[T]) Matches(actual T) matcher.Result {
	return matcher.ResultOf(gocmp.Equal(actual, m.expected, m.opts...))
}

func (m cmpEqMatcher[T]) Describe(result matcher.Result) *description.Description {
	return description.New().Textf(
		"%s %s",
		result.Pick("is equal to", "isn't equal to"),
		matcher.FormatValue(m.expected),
	)
}

func (m cmpEqMatcher[T]) Explain(actual T) *description.Description {
	if m.Matches(actual).IsMatch() {
		return matcher.Explain[T](m, actual)
	}
	d := description.New().Textf(
		"which isn't equal to %s", matcher.FormatValue(m.expected),
	)
	if report := gocmp.Diff(actual, m.expected, m.opts...); report != "" {
		d.Text("Difference (-actual +expected):").
			Nested(description.New().Text(strings.TrimRight(report, "\n")))
	}
	return d
}
