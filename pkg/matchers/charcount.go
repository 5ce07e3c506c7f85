package matchers

import (
	"unicode/utf8"

	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// CharCount matches strings whose number of Unicode code points
// satisfies the inner matcher. Code points, not bytes: "äöüß" has a
// character count of 4.
func CharCount(inner matcher.Matcher[int]) matcher.Matcher[string] {
	return charCountMatcher{inner: inner}
}

type charCountMatcher struct {
	inner matcher.Matcher[int]
}

func (m charCountMatcher) Matches(actual string) matcher.Result {
	return m.inner.Matches(utf8.RuneCountInString(actual))
}

func (m charCountMatcher) Describe(result matcher.Result) *description.Description {
	return description.New().Textf(
		"has character count, which %s", m.inner.Describe(result),
	)
}

func (m charCountMatcher) Explain(actual string) *description.Description {
	count := utf8.RuneCountInString(actual)
	return description.New().Textf(
		"which has character count %d, %s", count, m.inner.Explain(count),
	)
}
