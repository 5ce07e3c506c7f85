package matchers

import (
	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// IsTrue matches the boolean value true.
func IsTrue() matcher.Matcher[bool] {
	return boolMatcher{expected: true}
}

// IsFalse matches the boolean value false.
func IsFalse() matcher.Matcher[bool] {
	return boolMatcher{expected: false}
}

type boolMatcher struct {
	expected bool
}

func (m boolMatcher) Matches(actual bool) matcher.Result {
	return matcher.ResultOf(actual == m.expected)
}

func (m boolMatcher) Describe(result matcher.Result) *description.Description {
	want := m.expected
	if !result.IsMatch() {
		want = !want
	}
	if want {
		return description.New().Text("is true")
	}
	return description.New().Text("is false")
}

func (m boolMatcher) Explain(actual bool) *description.Description {
	return matcher.Explain[bool](m, actual)
}
