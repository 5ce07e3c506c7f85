package matchers

import (
	"fmt"

	"digital.vasic.matchers/pkg/matcher"
)

// AsMatcher converts a value into a matcher: an existing Matcher[T] is
// used as is, and a plain T becomes Eq(T). It panics when the value is
// neither, or when T is itself a matcher type and the conversion would
// be ambiguous.
func AsMatcher[T any](v any) matcher.Matcher[T] {
	m, isMatcher := v.(matcher.Matcher[T])
	value, isValue := v.(T)
	switch {
	case isMatcher && isValue:
		panic(fmt.Sprintf(
			"matchers: %T is both a matcher and a value of the matched type; pass Eq or the matcher explicitly", v,
		))
	case isMatcher:
		return m
	case isValue:
		return Eq(value)
	default:
		panic(fmt.Sprintf("matchers: %T is neither a Matcher[%T] nor a value of that type", v, *new(T)))
	}
}
