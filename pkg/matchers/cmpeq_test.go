package matchers

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"digital.vasic.matchers/pkg/matcher"
)

func TestCmpEq(t *testing.T) {
	type point struct{ X, Y int }

	assert.Equal(t, matcher.Match, CmpEq(point{1, 2}).Matches(point{1, 2}))
	assert.Equal(t, matcher.NoMatch, CmpEq(point{1, 2}).Matches(point{1, 3}))
}

func TestCmpEqHonorsOptions(t *testing.T) {
	m := CmpEq([]int{3, 1, 2}, cmpopts.SortSlices(func(a, b int) bool { return a < b }))
	assert.Equal(t, matcher.Match, m.Matches([]int{1, 2, 3}))
	assert.Equal(t, matcher.NoMatch, m.Matches([]int{1, 2, 4}))
}

func TestCmpEqExplainCarriesDiffReport(t *testing.T) {
	type point struct{ X, Y int }

	explanation := CmpEq(point{1, 2}).Explain(point{1, 3}).String()
	assert.True(t, strings.HasPrefix(explanation, "which isn't equal to"))
	assert.Contains(t, explanation, "Difference (-actual +expected):")
}
