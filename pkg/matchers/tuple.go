package matchers

import (
	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// Pair groups two values for componentwise matching.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple groups three values for componentwise matching.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// PairOf matches a Pair whose components satisfy the given matchers.
func PairOf[A, B any](first matcher.Matcher[A], second matcher.Matcher[B]) matcher.Matcher[Pair[A, B]] {
	return pairMatcher[A, B]{first: first, second: second}
}

type pairMatcher[A, B any] struct {
	first  matcher.Matcher[A]
	second matcher.Matcher[B]
}

func (m pairMatcher[A, B]) Matches(actual Pair[A, B]) matcher.Result {
	if !m.first.Matches(actual.First).IsMatch() {
		return matcher.NoMatch
	}
	return m.second.Matches(actual.Second)
}

func (m pairMatcher[A, B]) Describe(result matcher.Result) *description.Description {
	return describeTuple(result, []*description.Description{
		m.first.Describe(matcher.Match),
		m.second.Describe(matcher.Match),
	})
}

func (m pairMatcher[A, B]) Explain(actual Pair[A, B]) *description.Description {
	return explainTuple([]tupleField{
		{m.first.Matches(actual.First), actual.First, m.first.Explain(actual.First)},
		{m.second.Matches(actual.Second), actual.Second, m.second.Explain(actual.Second)},
	})
}

// TripleOf matches a Triple whose components satisfy the given matchers.
func TripleOf[A, B, C any](
	first matcher.Matcher[A],
	second matcher.Matcher[B],
	third matcher.Matcher[C],
) matcher.Matcher[Triple[A, B, C]] {
	return tripleMatcher[A, B, C]{first: first, second: second, third: third}
}

type tripleMatcher[A, B, C any] struct {
	first  matcher.Matcher[A]
	second matcher.Matcher[B]
	third  matcher.Matcher[C]
}

func (m tripleMatcher[A, B, C]) Matches(actual Triple[A, B, C]) matcher.Result {
	if !m.first.Matches(actual.First).IsMatch() {
		return matcher.NoMatch
	}
	if !m.second.Matches(actual.Second).IsMatch() {
		return matcher.NoMatch
	}
	return m.third.Matches(actual.Third)
}

func (m tripleMatcher[A, B, C]) Describe(result matcher.Result) *description.Description {
	return describeTuple(result, []*description.Description{
		m.first.Describe(matcher.Match),
		m.second.Describe(matcher.Match),
		m.third.Describe(matcher.Match),
	})
}

func (m tripleMatcher[A, B, C]) Explain(actual Triple[A, B, C]) *description.Description {
	return explainTuple([]tupleField{
		{m.first.Matches(actual.First), actual.First, m.first.Explain(actual.First)},
		{m.second.Matches(actual.Second), actual.Second, m.second.Explain(actual.Second)},
		{m.third.Matches(actual.Third), actual.Third, m.third.Explain(actual.Third)},
	})
}

type tupleField struct {
	result      matcher.Result
	value       any
	explanation *description.Description
}

func describeTuple(result matcher.Result, components []*description.Description) *description.Description {
	heading := result.Pick(
		"is a tuple whose fields respectively match:",
		"is a tuple whose fields don't respectively match:",
	)
	return description.New().
		Text(heading).
		Nested(description.New().Collect(components).Enumerate())
}

func explainTuple(fields []tupleField) *description.Description {
	var failures []*description.Description
	for i, f := range fields {
		if f.result.IsMatch() {
			continue
		}
		failures = append(failures, description.New().Textf(
			"field #%d is %s, %s", i, matcher.FormatValue(f.value), f.explanation,
		))
	}
	switch len(failures) {
	case 0:
		return description.New().Text("whose fields all match")
	case 1:
		return description.New().Textf("where %s", failures[0])
	default:
		return description.New().
			Text("where:").
			Nested(description.New().Collect(failures).BulletList())
	}
}
