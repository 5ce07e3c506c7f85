package verify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.matchers/pkg/matchers"
	"digital.vasic.matchers/pkg/outcome"
)

func TestThatReturnsNilOnMatch(t *testing.T) {
	assert.NoError(t, That(2, matchers.Eq(2)))
	assert.NoError(t, That("value", matchers.StartsWith("val")))
}

func TestThatFailureFormat(t *testing.T) {
	err := That(3, matchers.Eq(2))
	require.Error(t, err)

	rendered := err.Error()
	assert.True(t, strings.HasPrefix(rendered,
		"Value of: 3\n"+
			"Expected: is equal to 2\n"+
			"Actual: 3,\n"+
			"  which isn't equal to 2\n"+
			"  at "),
		"unexpected failure format:\n%s", rendered)
	assert.Contains(t, rendered, "verify_test.go:")
}

func TestThatCapturesTheAssertionLine(t *testing.T) {
	err := That(3, matchers.Eq(2))
	require.Error(t, err)

	var failure *outcome.Failure
	require.ErrorAs(t, err, &failure)
	assert.Contains(t, failure.Location.File, "verify_test.go")
	assert.Greater(t, failure.Location.Line, 0)
}

func TestNamedReplacesTheExpression(t *testing.T) {
	err := That(3, matchers.Eq(2), Named("result.Count"))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "Value of: result.Count\n"))
}

func TestMessageIsAppendedAfterTheDescription(t *testing.T) {
	err := That(3, matchers.Eq(2), Message("while loading account %d", 7))
	require.Error(t, err)

	rendered := err.Error()
	assert.Contains(t, rendered, "\nwhile loading account 7\n  at ")
}

func TestMessageLastWriteWins(t *testing.T) {
	err := That(3, matchers.Eq(2),
		Message("first"),
		Message("second"),
	)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "first")
	assert.Contains(t, err.Error(), "second")
}

func TestThatIndentsTheExplanation(t *testing.T) {
	err := That([]int{1, 4}, matchers.ElementsAre(matchers.Eq(1), matchers.Eq(2)))
	require.Error(t, err)
	assert.Contains(t, err.Error(),
		",\n  where element #1 is 4, which isn't equal to 2")
}

func TestThatRendersStructValues(t *testing.T) {
	type point struct{ X, Y int }

	err := That(point{1, 3}, matchers.Eq(point{1, 2}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected: is equal to verify.point{X:1, Y:2}")
}

func TestFail(t *testing.T) {
	err := Fail("gave up after %d retries", 3)
	require.Error(t, err)

	rendered := err.Error()
	assert.True(t, strings.HasPrefix(rendered, "gave up after 3 retries\n  at "))
	assert.Contains(t, rendered, "verify_test.go:")
}
