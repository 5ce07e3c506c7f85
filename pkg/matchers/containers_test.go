package matchers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"digital.vasic.matchers/pkg/matcher"
)

func TestEmpty(t *testing.T) {
	assert.Equal(t, matcher.Match, Empty[int]().Matches(nil))
	assert.Equal(t, matcher.Match, Empty[int]().Matches([]int{}))
	assert.Equal(t, matcher.NoMatch, Empty[int]().Matches([]int{1}))
}

func TestLen(t *testing.T) {
	m := Len[string](Gt(1))
	assert.Equal(t, matcher.Match, m.Matches([]string{"a", "b"}))
	assert.Equal(t, matcher.NoMatch, m.Matches([]string{"a"}))
	assert.Equal(t,
		"has length, which is greater than 1",
		m.Describe(matcher.Match).String(),
	)
	assert.Equal(t,
		"which has length 1, which is less than or equal to 1",
		m.Explain([]string{"a"}).String(),
	)
}

func TestHasSize(t *testing.T) {
	m := HasSize[int](3)
	assert.Equal(t, matcher.Match, m.Matches([]int{1, 2, 3}))
	assert.Equal(t, matcher.NoMatch, m.Matches([]int{1, 2}))
}

func TestContains(t *testing.T) {
	m := Contains(Eq(2))
	assert.Equal(t, matcher.Match, m.Matches([]int{1, 2, 3}))
	assert.Equal(t, matcher.NoMatch, m.Matches([]int{1, 3}))
	assert.Equal(t,
		"contains at least one element which is equal to 2",
		m.Describe(matcher.Match).String(),
	)
	assert.Equal(t,
		"contains no element which is equal to 2",
		m.Describe(matcher.NoMatch).String(),
	)
	assert.Equal(t, "which contains no matching elements", m.Explain([]int{1, 3}).String())
	assert.Equal(t, "which contains 2 matching elements", m.Explain([]int{2, 2}).String())
}

func TestEach(t *testing.T) {
	m := Each(Gt(0))
	assert.Equal(t, matcher.Match, m.Matches([]int{1, 2, 3}))
	assert.Equal(t, matcher.Match, m.Matches(nil))
	assert.Equal(t, matcher.NoMatch, m.Matches([]int{1, -2, 3}))
}

func TestEachExplainCitesFailingElements(t *testing.T) {
	m := Each(Gt(0))
	assert.Equal(t,
		"where element #1 is -2, which is less than or equal to 0",
		m.Explain([]int{1, -2, 3}).String(),
	)
	assert.Equal(t,
		"where:\n"+
			"  * element #0 is -1, which is less than or equal to 0\n"+
			"  * element #2 is -3, which is less than or equal to 0",
		m.Explain([]int{-1, 2, -3}).String(),
	)
}

func TestContainerEq(t *testing.T) {
	m := ContainerEq([]int{1, 2, 3})
	assert.Equal(t, matcher.Match, m.Matches([]int{1, 2, 3}))
	assert.Equal(t, matcher.NoMatch, m.Matches([]int{3, 2, 1}))
	assert.Equal(t, matcher.NoMatch, m.Matches([]int{1, 2}))
}

func TestContainerEqExplainsMissingAndUnexpected(t *testing.T) {
	m := ContainerEq([]int{1, 2, 3})
	assert.Equal(t,
		"which is missing the element 3\nand\nwhich has the unexpected element 4",
		m.Explain([]int{1, 2, 4}).String(),
	)
	assert.Equal(t,
		"which is missing the element 3",
		m.Explain([]int{1, 2}).String(),
	)
	assert.Equal(t,
		"which has the unexpected element 4",
		m.Explain([]int{1, 2, 3, 4}).String(),
	)
}

func TestContainerEqExplainsReordering(t *testing.T) {
	m := ContainerEq([]int{1, 2, 3})
	assert.Equal(t,
		"which contains all expected elements in a different order",
		m.Explain([]int{3, 2, 1}).String(),
	)
}

func TestContainerEqRespectsMultiplicity(t *testing.T) {
	m := ContainerEq([]int{1, 1, 2})
	assert.Equal(t,
		"which is missing the element 1",
		m.Explain([]int{1, 2}).String(),
	)
}

func TestHasEntry(t *testing.T) {
	m := HasEntry("a", Eq(1))
	assert.Equal(t, matcher.Match, m.Matches(map[string]int{"a": 1}))
	assert.Equal(t, matcher.NoMatch, m.Matches(map[string]int{"a": 2}))
	assert.Equal(t, matcher.NoMatch, m.Matches(map[string]int{"b": 1}))
}

func TestHasEntryExplainDistinguishesMissingKey(t *testing.T) {
	m := HasEntry("a", Eq(1))
	assert.Equal(t,
		`which doesn't contain key "a"`,
		m.Explain(map[string]int{"b": 1}).String(),
	)
	assert.Equal(t,
		`which contains key "a", whose value is 2, which isn't equal to 1`,
		m.Explain(map[string]int{"a": 2}).String(),
	)
}

func TestElementsAre(t *testing.T) {
	m := ElementsAre(Eq(1), Eq(2), Eq(3))
	assert.Equal(t, matcher.Match, m.Matches([]int{1, 2, 3}))
	assert.Equal(t, matcher.NoMatch, m.Matches([]int{1, 4, 3}))
	assert.Equal(t, matcher.NoMatch, m.Matches([]int{1, 2}))
	assert.Equal(t, matcher.NoMatch, m.Matches([]int{1, 2, 3, 4}))
}

func TestElementsAreDescription(t *testing.T) {
	m := ElementsAre(Eq(1), Gt(5))
	assert.Equal(t,
		"has elements:\n"+
			"  0. is equal to 1\n"+
			"  1. is greater than 5",
		m.Describe(matcher.Match).String(),
	)
}

func TestElementsAreExplainsSizeMismatchWithoutElementDetail(t *testing.T) {
	m := ElementsAre(Eq(1), Eq(2), Eq(3))
	assert.Equal(t, "whose size is 2", m.Explain([]int{1, 2}).String())
}

func TestElementsAreExplainsOnlyFailingPositions(t *testing.T) {
	m := ElementsAre(Eq(1), Eq(2), Eq(3))
	assert.Equal(t,
		"where element #1 is 4, which isn't equal to 2",
		m.Explain([]int{1, 4, 3}).String(),
	)
	assert.Equal(t,
		"where:\n"+
			"  * element #0 is 9, which isn't equal to 1\n"+
			"  * element #2 is 9, which isn't equal to 3",
		m.Explain([]int{9, 2, 9}).String(),
	)
}

func TestPointwise(t *testing.T) {
	m := Pointwise(func(e float64) matcher.Matcher[float64] {
		return Near(e, 0.01)
	}, []float64{1.0, 2.0})

	assert.Equal(t, matcher.Match, m.Matches([]float64{1.005, 1.995}))
	assert.Equal(t, matcher.NoMatch, m.Matches([]float64{1.005, 2.5}))
}

func TestPointwiseExplainsSizeMismatch(t *testing.T) {
	m := Pointwise(func(e int) matcher.Matcher[int] { return Eq(e) }, []int{1, 2, 3})
	assert.Equal(t,
		"which has size 2 (expected 3)",
		m.Explain([]int{1, 2}).String(),
	)
}

func TestPointwiseExplainsFailingPositions(t *testing.T) {
	m := Pointwise(func(e int) matcher.Matcher[int] { return Eq(e) }, []int{1, 2})
	assert.Equal(t,
		"where element #1 is 5, which isn't equal to 2",
		m.Explain([]int{1, 5}).String(),
	)
}
