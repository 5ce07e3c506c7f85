package matchers

import (
	"reflect"

	"digital.vasic.matchers/pkg/description"
	"digital.vasic.matchers/pkg/matcher"
)

// Field matches a value by applying the inner matcher to one of its
// fields. The accessor extracts the field and path names it in output,
// e.g. Field("user.Name", func(r Record) string { return r.User.Name }, Eq("x")).
func Field[O, I any](path string, get func(O) I, inner matcher.Matcher[I]) matcher.Matcher[O] {
	return fieldMatcher[O, I]{kind: "field", path: path, get: get, inner: inner}
}

// Property is Field for values reached through an accessor method
// rather than direct field access. Output names it a property.
func Property[O, I any](path string, get func(O) I, inner matcher.Matcher[I]) matcher.Matcher[O] {
	return fieldMatcher[O, I]{kind: "property", path: path, get: get, inner: inner}
}

type fieldMatcher[O, I any] struct {
	kind  string
	path  string
	get   func(O) I
	inner matcher.Matcher[I]
}

func (m fieldMatcher[O, I]) Matches(actual O) matcher.Result {
	return m.inner.Matches(m.get(actual))
}

func (m fieldMatcher[O, I]) Describe(result matcher.Result) *description.Description {
	return description.New().Textf(
		"has %s `%s`, which %s", m.kind, m.path, m.inner.Describe(result),
	)
}

func (m fieldMatcher[O, I]) Explain(actual O) *description.Description {
	value := m.get(actual)
	return description.New().Textf(
		"whose %s `%s` is %s, %s",
		m.kind, m.path, matcher.FormatValue(value), m.inner.Explain(value),
	)
}

// Variant matches one case of a sum-type-like value. The extractor
// returns the case's payload and whether the value holds that case;
// when it does not, the mismatch is reported as a wrong variant
// without consulting the inner matcher.
func Variant[O, I any](name string, extract func(O) (I, bool), inner matcher.Matcher[I]) matcher.Matcher[O] {
	return variantMatcher[O, I]{name: name, extract: extract, inner: inner}
}

type variantMatcher[O, I any] struct {
	name    string
	extract func(O) (I, bool)
	inner   matcher.Matcher[I]
}

func (m variantMatcher[O, I]) Matches(actual O) matcher.Result {
	value, ok := m.extract(actual)
	if !ok {
		return matcher.NoMatch
	}
	return m.inner.Matches(value)
}

func (m variantMatcher[O, I]) Describe(result matcher.Result) *description.Description {
	if result.IsMatch() {
		return description.New().Textf(
			"is a `%s` whose value %s", m.name, m.inner.Describe(matcher.Match),
		)
	}
	return description.New().Textf(
		"is not a `%s` or is a `%s` whose value %s",
		m.name, m.name, m.inner.Describe(matcher.NoMatch),
	)
}

func (m variantMatcher[O, I]) Explain(actual O) *description.Description {
	value, ok := m.extract(actual)
	if !ok {
		return description.New().Textf(
			"which has the wrong enum variant `%s`", variantNameOf(actual),
		)
	}
	return description.New().
		Textf("which is a `%s`", m.name).
		Nested(m.inner.Explain(value))
}

// variantNameOf names the concrete case held by a value: the dynamic
// type name for interface values, otherwise the value's own type name.
func variantNameOf(v any) string {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return "nil"
	}
	t := rv.Type()
	if t.Kind() == reflect.Pointer && !rv.IsNil() {
		t = t.Elem()
	}
	return t.Name()
}
