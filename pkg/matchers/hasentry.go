package matchers

import (
	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// HasEntry matches maps that contain the given key with a value
// satisfying the inner matcher. The explanation distinguishes a
// missing key from a present key whose value fails the inner
// matcher.
func HasEntry[K comparable, V any](key K, inner matcher.Matcher[V]) matcher.Matcher[map[K]V] {
	return hasEntryMatcher[K, V]{key: key, inner: inner}
}

type hasEntryMatcher[K comparable, V any] struct {
	key   K
	inner matcher.Matcher[V]
}

func (m hasEntryMatcher[K, V]) Matches(actual map[K]V) matcher.Result {
	value, ok := actual[m.key]
	if !ok {
		return matcher.NoMatch
	}
	return m.inner.Matches(value)
}

func (m hasEntryMatcher[K, V]) Describe(result matcher.Result) *description.Description {
	key := matcher.FormatValue(m.key)
	if result.IsMatch() {
		return description.New().Textf(
			"contains key %s, whose value %s",
			key, m.inner.Describe(matcher.Match),
		)
	}
	return description.New().Textf(
		"doesn't contain key %s or contains key %s, whose value %s",
		key, key, m.inner.Describe(matcher.NoMatch),
	)
}

func (m hasEntryMatcher[K, V]) Explain(actual map[K]V) *description.Description {
	value, ok := actual[m.key]
	if !ok {
		return description.New().Textf(
			"which doesn't contain key %s", matcher.FormatValue(m.key),
		)
	}
	return description.New().Textf(
		"which contains key %s, whose value is %s, %s",
		matcher.FormatValue(m.key),
		matcher.FormatValue(value),
		m.inner.Explain(value),
	)
}
