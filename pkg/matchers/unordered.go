package matchers

import (
	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// UnorderedElementsAre matches a slice containing exactly one element
// for each given matcher, in any order. The pairing is a maximum
// bipartite matching, so elements satisfying several matchers are
// assigned wherever a complete correspondence exists.
func UnorderedElementsAre[T any](elements ...matcher.Matcher[T]) matcher.Matcher[[]T] {
	return unorderedMatcher[T]{elements: elements, req: perfectMatch}
}

// ContainsEach matches a slice containing a distinct element for each
// given matcher, in any order. Extra elements are allowed.
func ContainsEach[T any](elements ...matcher.Matcher[T]) matcher.Matcher[[]T] {
	return unorderedMatcher[T]{elements: elements, req: supersetMatch}
}

// IsContainedIn matches a slice each of whose elements satisfies a
// distinct one of the given matchers. Unused matchers are allowed.
func IsContainedIn[T any](elements ...matcher.Matcher[T]) matcher.Matcher[[]T] {
	return unorderedMatcher[T]{elements: elements, req: subsetMatch}
}

type unorderedMatcher[T any] struct {
	elements []matcher.Matcher[T]
	req      requirements
}

func (m unorderedMatcher[T]) Matches(actual []T) matcher.Result {
	if !m.sizeFits(len(actual)) {
		return matcher.NoMatch
	}
	return matcher.ResultOf(newMatchMatrix(actual, m.elements).isMatchFor(m.req))
}

func (m unorderedMatcher[T]) sizeFits(size int) bool {
	switch m.req {
	case perfectMatch:
		return size == len(m.elements)
	case supersetMatch:
		return size >= len(m.elements)
	case subsetMatch:
		return size <= len(m.elements)
	}
	return false
}

func (m unorderedMatcher[T]) Describe(result matcher.Result) *description.Description {
	var heading string
	switch m.req {
	case perfectMatch:
		heading = result.Pick(
			"contains elements matching in any order:",
			"doesn't contain elements matching in any order:",
		)
	case supersetMatch:
		heading = result.Pick(
			"contains at least one element matching each of:",
			"doesn't contain at least one element matching each of:",
		)
	case subsetMatch:
		heading = result.Pick(
			"contains only elements matching:",
			"contains at least one element not matching any of:",
		)
	}
	items := make([]*description.Description, len(m.elements))
	for i, e := range m.elements {
		items[i] = e.Describe(matcher.Match)
	}
	return description.New().
		Text(heading).
		Nested(description.New().Collect(items).Enumerate())
}

func (m unorderedMatcher[T]) Explain(actual []T) *description.Description {
	switch m.req {
	case perfectMatch:
		if len(actual) != len(m.elements) {
			return description.New().Textf(
				"which has size %d (expected %d)", len(actual), len(m.elements),
			)
		}
	case supersetMatch:
		if len(actual) < len(m.elements) {
			return description.New().Textf(
				"which has size %d (expected at least %d)", len(actual), len(m.elements),
			)
		}
	case subsetMatch:
		if len(actual) > len(m.elements) {
			return description.New().Textf(
				"which has size %d (expected at most %d)", len(actual), len(m.elements),
			)
		}
	}
	matrix := newMatchMatrix(actual, m.elements)
	if explanation := matrix.unmatchableElements(m.req).explanation(); explanation != "" {
		return description.New().Text(explanation)
	}
	best := matrix.bestMatch()
	full := best.isFullMatch(len(actual), len(m.elements))
	if m.req == supersetMatch {
		full = best.isSupersetMatch(len(m.elements))
	} else if m.req == subsetMatch {
		full = best.isSubsetMatch()
	}
	if full {
		return description.New().Text("whose elements all match")
	}
	rendered := make([]string, len(actual))
	for i, a := range actual {
		rendered[i] = matcher.FormatValue(a)
	}
	descs := make([]string, len(m.elements))
	for j, e := range m.elements {
		descs[j] = e.Describe(matcher.Match).String()
	}
	return description.New().Text(best.explanation(rendered, descs))
}
