package matchers

import (
	"strings"

	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// StartsWith matches strings beginning with the given prefix.
func StartsWith(prefix string) matcher.Matcher[string] {
	return strMatcher{
		expected:    prefix,
		holds:       strings.HasPrefix,
		matchDesc:   "starts with prefix",
		noMatchDesc: "does not start with",
	}
}

// EndsWith matches strings ending with the given suffix. A prefix
// that is not also a suffix does not match.
func EndsWith(suffix string) matcher.Matcher[string] {
	return strMatcher{
		expected:    suffix,
		holds:       strings.HasSuffix,
		matchDesc:   "ends with suffix",
		noMatchDesc: "does not end with",
	}
}

// ContainsSubstring matches strings containing the given substring.
func ContainsSubstring(substring string) matcher.Matcher[string] {
	return strMatcher{
		expected:    substring,
		holds:       strings.Contains,
		matchDesc:   "contains a substring",
		noMatchDesc: "does not contain a substring",
	}
}

// EqIgnoringASCIICase matches strings equal to expected up to ASCII
// case folding.
func EqIgnoringASCIICase(expected string) matcher.Matcher[string] {
	return strMatcher{
		expected:    expected,
		holds:       strings.EqualFold,
		matchDesc:   "is equal to (ignoring case)",
		noMatchDesc: "isn't equal to (ignoring case)",
	}
}

type strMatcher struct {
	expected    string
	holds       func(actual, expected string) bool
	matchDesc   string
	noMatchDesc string
}

func (m strMatcher) Matches(actual string) matcher.Result {
	return matcher.ResultOf(m.holds(actual, m.expected))
}

func (m strMatcher) Describe(result matcher.Result) *description.Description {
	return description.New().Textf(
		"%s %q",
		result.Pick(m.matchDesc, m.noMatchDesc),
		m.expected,
	)
}

func (m strMatcher) Explain(actual string) *description.Description {
	return matcher.Explain[string](m, actual)
}
