package matchers

import (
	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// Pointwise matches a slice elementwise against an expected slice,
// deriving the matcher for each position from the corresponding
// expected value: Pointwise(func(e int) matcher.Matcher[int] { return Near(float64(e), 0.1) }, wants).
func Pointwise[T, E any](pair func(E) matcher.Matcher[T], expected []E) matcher.Matcher[[]T] {
	return pointwiseMatcher[T, E]{pair: pair, expected: expected}
}

type pointwiseMatcher[T, E any] struct {
	pair     func(E) matcher.Matcher[T]
	expected []E
}

func (m pointwiseMatcher[T, E]) matchers() []matcher.Matcher[T] {
	ms := make([]matcher.Matcher[T], len(m.expected))
	for i, e := range m.expected {
		ms[i] = m.pair(e)
	}
	return ms
}

func (m pointwiseMatcher[T, E]) Matches(actual []T) matcher.Result {
	if len(actual) != len(m.expected) {
		return matcher.NoMatch
	}
	for i, inner := range m.matchers() {
		if !inner.Matches(actual[i]).IsMatch() {
			return matcher.NoMatch
		}
	}
	return matcher.Match
}

func (m pointwiseMatcher[T, E]) Describe(result matcher.Result) *description.Description {
	heading := result.Pick(
		"matches elementwise against:",
		"doesn't match elementwise against:",
	)
	ms := m.matchers()
	items := make([]*description.Description, len(ms))
	for i, inner := range ms {
		items[i] = inner.Describe(matcher.Match)
	}
	return description.New().
		Text(heading).
		Nested(description.New().Collect(items).Enumerate())
}

func (m pointwiseMatcher[T, E]) Explain(actual []T) *description.Description {
	if len(actual) != len(m.expected) {
		return description.New().Textf(
			"which has size %d (expected %d)", len(actual), len(m.expected),
		)
	}
	var failures []*description.Description
	for i, inner := range m.matchers() {
		if inner.Matches(actual[i]).IsMatch() {
			continue
		}
		failures = append(failures, description.New().Textf(
			"element #%d is %s, %s",
			i, matcher.FormatValue(actual[i]), inner.Explain(actual[i]),
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
