// Package matcher defines the core matching contract: a Matcher
// decides whether a value satisfies a condition, describes the
// condition in prose, and explains the verdict for a concrete
// value.
package matcher

import (
	"digital.vasic.matchers/pkg/description"
)

// Result is the outcome of applying a Matcher to a value.
type Result int

const (
	// NoMatch indicates the value does not satisfy the matcher.
	NoMatch Result = iota
	// Match indicates the value satisfies the matcher.
	Match
)

// ResultOf converts a boolean into a Result.
func ResultOf(ok bool) Result {
	if ok {
		return Match
	}
	return NoMatch
}

// IsMatch reports whether r is Match.
func (r Result) IsMatch() bool {
	return r == Match
}

// Pick returns ifMatch when r is Match and ifNoMatch otherwise.
func (r Result) Pick(ifMatch, ifNoMatch string) string {
	if r.IsMatch() {
		return ifMatch
	}
	return ifNoMatch
}

// String returns the name of the result.
func (r Result) String() string {
	return r.Pick("Match", "NoMatch")
}

// Matcher checks an arbitrary condition on a value of type T.
//
// Matchers are immutable once constructed: Matches must be a pure
// function of the actual value and the state captured at
// construction time. A matcher never retains the values it is
// applied to.
type Matcher[T any] interface {
	// Matches reports whether the condition holds for actual.
	Matches(actual T) Result

	// Describe returns a verb phrase describing values that match
	// (for Match) or don't match (for NoMatch) this matcher. The
	// implicit subject of the phrase is the value being matched.
	// The two phrasings need not be logical negations of each
	// other; callers must request the polarity they need rather
	// than negating prose.
	Describe(result Result) *description.Description

	// Explain returns a relative clause (starting with "which" or
	// "whose") explaining how actual matches or fails to match.
	// Implementations without richer diagnostics should return
	// Explain(m, actual) from this package.
	Explain(actual T) *description.Description
}

// Explain is the default match explanation, derived from Describe
// and Matches: "which <describe(matches(actual))>".
func Explain[T any](m Matcher[T], actual T) *description.Description {
	return description.New().Textf("which %s", m.Describe(m.Matches(actual)))
}
