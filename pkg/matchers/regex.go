package matchers

import (
	"regexp"

	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// MatchesRegex matches strings that match the given pattern in
// their entirety. An invalid pattern is a programming error in the
// test and panics at construction time.
func MatchesRegex(pattern string) matcher.Matcher[string] {
	return regexMatcher{
		pattern:     pattern,
		re:          regexp.MustCompile(`\A(?:` + pattern + `)\z`),
		matchDesc:   "matches the regular expression",
		noMatchDesc: "doesn't match the regular expression",
	}
}

// ContainsRegex matches strings containing a match of the given
// pattern. An invalid pattern panics at construction time.
func ContainsRegex(pattern string) matcher.Matcher[string] {
	return regexMatcher{
		pattern:     pattern,
		re:          regexp.MustCompile(pattern),
		matchDesc:   "contains the regular expression",
		noMatchDesc: "doesn't contain the regular expression",
	}
}

type regexMatcher struct {
	pattern     string
	re          *regexp.Regexp
	matchDesc   string
	noMatchDesc string
}

func (m regexMatcher) Matches(actual string) matcher.Result {
	return matcher.ResultOf(m.re.MatchString(actual))
}

func (m regexMatcher) Describe(result matcher.Result) *description.Description {
	return description.New().Textf(
		"%s %q",
		result.Pick(m.matchDesc, m.noMatchDesc),
		m.pattern,
	)
}

func (m regexMatcher) Explain(actual string) *description.Description {
	return matcher.Explain[string](m, actual)
}
