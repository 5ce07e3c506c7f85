package matchers

import (
	"reflect"
	"strings"

	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// ContainerEq matches slices element-wise equal to expected, in
// order. Unlike Eq, the mismatch explanation is container-aware: it
// reports the missing and unexpected elements, and detects the case
// where the expected elements are all present but reordered.
func ContainerEq[T any](expected []T) matcher.Matcher[[]T] {
	return containerEqMatcher[T]{expected: expected}
}

type containerEqMatcher[T any] struct {
	expected []T
}

func (m containerEqMatcher[T]) Matches(actual []T) matcher.Result {
	if len(actual) != len(m.expected) {
		return matcher.NoMatch
	}
	for i := range actual {
		if !reflect.DeepEqual(actual[i], m.expected[i]) {
			return matcher.NoMatch
		}
	}
	return matcher.Match
}

func (m containerEqMatcher[T]) Describe(result matcher.Result) *description.Description {
	return description.New().Textf(
		"%s %s",
		result.Pick("is equal to", "isn't equal to"),
		matcher.FormatValue(m.expected),
	)
}

func (m containerEqMatcher[T]) Explain(actual []T) *description.Description {
	if m.Matches(actual).IsMatch() {
		return matcher.Explain[[]T](m, actual)
	}

	missing := elementsNotIn(m.expected, actual)
	unexpected := elementsNotIn(actual, m.expected)

	var clauses []string
	switch len(missing) {
	case 0:
	case 1:
		clauses = append(clauses, "which is missing the element "+missing[0])
	default:
		clauses = append(clauses, "which is missing the elements "+strings.Join(missing, ", "))
	}
	switch len(unexpected) {
	case 0:
	case 1:
		clauses = append(clauses, "which has the unexpected element "+unexpected[0])
	default:
		clauses = append(clauses, "which has the unexpected elements "+strings.Join(unexpected, ", "))
	}
	if len(clauses) == 0 {
		return description.New().
			Text("which contains all expected elements in a different order")
	}
	return description.New().Text(strings.Join(clauses, "\nand\n"))
}

// elementsNotIn renders the elements of from that have no deeply
// equal counterpart in reference, respecting multiplicity.
func elementsNotIn[T any](from, reference []T) []string {
	used := make([]bool, len(reference))
	var out []string
	for _, element := range from {
		found := false
		for i, candidate := range reference {
			if !used[i] && reflect.DeepEqual(element, candidate) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			out = append(out, matcher.FormatValue(element))
		}
	}
	return out
}
