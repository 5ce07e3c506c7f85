package matchers

import (
	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// Some matches non-nil pointers whose pointee satisfies the inner
// matcher. The explanation distinguishes a nil pointer from a
// present value that fails the inner matcher.
func Some[T any](inner matcher.Matcher[T]) matcher.Matcher[*T] {
	return someMatcher[T]{inner: inner}
}

type someMatcher[T any] struct {
	inner matcher.Matcher[T]
}

func (m someMatcher[T]) Matches(actual *T) matcher.Result {
	if actual == nil {
		return matcher.NoMatch
	}
	return m.inner.Matches(*actual)
}

func (m someMatcher[T]) Describe(result matcher.Result) *description.Description {
	if result.IsMatch() {
		return description.New().Textf(
			"has a value which %s", m.inner.Describe(matcher.Match),
		)
	}
	return description.New().Textf(
		"is nil or has a value which %s", m.inner.Describe(matcher.NoMatch),
	)
}

func (m someMatcher[T]) Explain(actual *T) *description.Description {
	if actual == nil {
		return description.New().Text("which is nil")
	}
	return description.New().
		Text("which has a value").
		Nested(m.inner.Explain(*actual))
}

// None matches nil pointers.
func None[T any]() matcher.Matcher[*T] {
	return noneMatcher[T]{}
}

type noneMatcher[T any] struct{}

func (noneMatcher[T]) Matches(actual *T) matcher.Result {
	return matcher.ResultOf(actual == nil)
}

func (noneMatcher[T]) Describe(result matcher.Result) *description.Description {
	return description.New().Text(result.Pick("is nil", "has a value"))
}

func (m noneMatcher[T]) Explain(actual *T) *description.Description {
	if actual == nil {
		return description.New().Text("which is nil")
	}
	return description.New().Textf(
		"which has the value %s", matcher.FormatValue(*actual),
	)
}
