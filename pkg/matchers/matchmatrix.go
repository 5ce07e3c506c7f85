package matchers

import (
	"fmt"
	"strings"

	"digital.vasic.matchers/pkg/matcher"
)

// requirements selects how an unordered container match must cover the
// expected matchers.
type requirements int

const (
	// perfectMatch requires a 1:1 correspondence between elements and
	// matchers.
	perfectMatch requirements = iota
	// supersetMatch requires every matcher to be matched by a distinct
	// element; extra elements are allowed.
	supersetMatch
	// subsetMatch requires every element to match a distinct matcher;
	// extra matchers are allowed.
	subsetMatch
)

func (r requirements) String() string {
	switch r {
	case perfectMatch:
		return "perfect"
	case supersetMatch:
		return "superset"
	case subsetMatch:
		return "subset"
	}
	return "unknown"
}

// matchMatrix records which actual elements (rows) satisfy which
// expected matchers (columns).
type matchMatrix struct {
	graph [][]bool
	cols  int
}

func newMatchMatrix[T any](actual []T, expected []matcher.Matcher[T]) matchMatrix {
	graph := make([][]bool, len(actual))
	for i, a := range actual {
		graph[i] = make([]bool, len(expected))
		for j, e := range expected {
			graph[i][j] = e.Matches(a).IsMatch()
		}
	}
	return matchMatrix{graph: graph, cols: len(expected)}
}

func (m matchMatrix) isMatchFor(req requirements) bool {
	switch req {
	case perfectMatch:
		if m.unmatchableElements(req).hasUnmatchable() {
			return false
		}
		return m.bestMatch().isFullMatch(len(m.graph), m.cols)
	case supersetMatch:
		if m.unmatchableElements(req).hasUnmatchable() {
			return false
		}
		return m.bestMatch().isSupersetMatch(m.cols)
	case subsetMatch:
		if m.unmatchableElements(req).hasUnmatchable() {
			return false
		}
		return m.bestMatch().isSubsetMatch()
	}
	return false
}

// unmatchableElements finds rows and columns that pair with nothing at
// all. Cheap necessary condition checked before the full matching.
func (m matchMatrix) unmatchableElements(req requirements) unmatchableElements {
	var u unmatchableElements
	if req == perfectMatch || req == subsetMatch {
		for i, row := range m.graph {
			matched := false
			for _, ok := range row {
				matched = matched || ok
			}
			if !matched {
				u.actual = append(u.actual, i)
			}
		}
	}
	if req == perfectMatch || req == supersetMatch {
		for j := 0; j < m.cols; j++ {
			matched := false
			for _, row := range m.graph {
				matched = matched || row[j]
			}
			if !matched {
				u.expected = append(u.expected, j)
			}
		}
	}
	return u
}

// bestMatch computes a maximum bipartite matching between elements and
// matchers using augmenting paths.
func (m matchMatrix) bestMatch() bestMatch {
	matchedRow := make([]int, len(m.graph))
	for i := range matchedRow {
		matchedRow[i] = -1
	}
	for j := 0; j < m.cols; j++ {
		seen := make([]bool, len(m.graph))
		m.tryAugment(j, matchedRow, seen)
	}
	return bestMatch{matchedRow: matchedRow}
}

// tryAugment looks for an augmenting path that assigns the given
// column, possibly re-routing rows already assigned elsewhere.
func (m matchMatrix) tryAugment(col int, matchedRow []int, seen []bool) bool {
	for i := range m.graph {
		if !m.graph[i][col] || seen[i] {
			continue
		}
		seen[i] = true
		if matchedRow[i] == -1 || m.tryAugment(matchedRow[i], matchedRow, seen) {
			matchedRow[i] = col
			return true
		}
	}
	return false
}

type unmatchableElements struct {
	actual   []int
	expected []int
}

func (u unmatchableElements) hasUnmatchable() bool {
	return len(u.actual) > 0 || len(u.expected) > 0
}

// explanation renders the unmatchable rows and columns, or "" when all
// elements pair with something.
func (u unmatchableElements) explanation() string {
	switch {
	case len(u.actual) == 0 && len(u.expected) == 0:
		return ""
	case len(u.expected) == 0:
		return fmt.Sprintf(
			"whose %s not match any expected elements",
			elementPhrase("element", u.actual, "does", "do"),
		)
	case len(u.actual) == 0:
		return fmt.Sprintf(
			"which has no elements matching the expected %s",
			indexPhrase("element", u.expected),
		)
	default:
		return fmt.Sprintf(
			"whose %s not match any expected elements and no elements match the expected %s",
			elementPhrase("element", u.actual, "does", "do"),
			indexPhrase("element", u.expected),
		)
	}
}

func elementPhrase(noun string, indexes []int, singular, plural string) string {
	if len(indexes) == 1 {
		return fmt.Sprintf("%s %s %s", noun, formatIndexes(indexes), singular)
	}
	return fmt.Sprintf("%ss %s %s", noun, formatIndexes(indexes), plural)
}

func indexPhrase(noun string, indexes []int) string {
	if len(indexes) == 1 {
		return fmt.Sprintf("%s %s", noun, formatIndexes(indexes))
	}
	return fmt.Sprintf("%ss %s", noun, formatIndexes(indexes))
}

func formatIndexes(indexes []int) string {
	parts := make([]string, len(indexes))
	for i, idx := range indexes {
		parts[i] = fmt.Sprintf("#%d", idx)
	}
	return strings.Join(parts, ", ")
}

// bestMatch maps each actual element index to the expected matcher
// index it was paired with, or -1 if it stayed unpaired.
type bestMatch struct {
	matchedRow []int
}

func (b bestMatch) isFullMatch(rows, cols int) bool {
	if rows != cols {
		return false
	}
	for _, j := range b.matchedRow {
		if j == -1 {
			return false
		}
	}
	return true
}

func (b bestMatch) isSupersetMatch(cols int) bool {
	matched := 0
	for _, j := range b.matchedRow {
		if j != -1 {
			matched++
		}
	}
	return matched == cols
}

func (b bestMatch) isSubsetMatch() bool {
	for _, j := range b.matchedRow {
		if j == -1 {
			return false
		}
	}
	return true
}

// explanation lays out the pairing found so the reader can see why no
// complete match exists. renderedActual holds the formatted actual
// elements and expectedDescs the matcher descriptions, both in order.
func (b bestMatch) explanation(renderedActual, expectedDescs []string) string {
	var sb strings.Builder
	sb.WriteString("which does not have a perfect match with the expected elements. The best match found was:")
	expectedUsed := make([]bool, len(expectedDescs))
	for i, j := range b.matchedRow {
		if j == -1 {
			fmt.Fprintf(&sb,
				"\n  Actual element %s at index %d did not match any remaining expected element.",
				renderedActual[i], i,
			)
			continue
		}
		expectedUsed[j] = true
		fmt.Fprintf(&sb,
			"\n  Actual element %s at index %d matched expected element `%s` at index %d.",
			renderedActual[i], i, expectedDescs[j], j,
		)
	}
	for j, used := range expectedUsed {
		if !used {
			fmt.Fprintf(&sb,
				"\n  Expected element `%s` at index %d did not match any remaining actual element.",
				expectedDescs[j], j,
			)
		}
	}
	return sb.String()
}
