package matchers

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"digital.vasic.matchers/pkg/matcher"
)

type account struct {
	Owner   string
	Balance int
}

func ownerOf(a account) string { return a.Owner }

func TestField(t *testing.T) {
	m := Field("Owner", ownerOf, Eq("sam"))
	assert.Equal(t, matcher.Match, m.Matches(account{Owner: "sam"}))
	assert.Equal(t, matcher.NoMatch, m.Matches(account{Owner: "pat"}))
}

func TestFieldDescription(t *testing.T) {
	m := Field("Owner", ownerOf, Eq("sam"))
	assert.Equal(t,
		"has field `Owner`, which is equal to \"sam\"",
		m.Describe(matcher.Match).String(),
	)
	assert.Equal(t,
		"has field `Owner`, which isn't equal to \"sam\"",
		m.Describe(matcher.NoMatch).String(),
	)
}

func TestFieldExplainNamesTheField(t *testing.T) {
	m := Field("Owner", ownerOf, Eq("sam"))
	assert.Equal(t,
		"whose field `Owner` is \"pat\", which isn't equal to \"sam\"",
		m.Explain(account{Owner: "pat"}).String(),
	)
}

func TestResultOf(t *testing.T) {
	m := ResultOf("strconv.Itoa", strconv.Itoa, Eq("2"))
	assert.Equal(t, matcher.Match, m.Matches(2))
	assert.Equal(t, matcher.NoMatch, m.Matches(4))
}

func TestResultOfDescribeDelegatesToInner(t *testing.T) {
	m := ResultOf("strconv.Itoa", strconv.Itoa, Eq("2"))
	assert.Equal(t, "is equal to \"2\"", m.Describe(matcher.Match).String())
	assert.Equal(t, "isn't equal to \"2\"", m.Describe(matcher.NoMatch).String())
}

func TestResultOfExplainNamesTheFunction(t *testing.T) {
	m := ResultOf("strconv.Itoa", strconv.Itoa, Eq("2"))
	assert.Equal(t,
		"where the result of applying 4 to `strconv.Itoa` is \"4\", which isn't equal to \"2\"",
		m.Explain(4).String(),
	)
}

func TestProperty(t *testing.T) {
	m := Property("Balance", func(a account) int { return a.Balance }, Gt(0))
	assert.Equal(t, matcher.Match, m.Matches(account{Balance: 10}))
	assert.Equal(t,
		"has property `Balance`, which is greater than 0",
		m.Describe(matcher.Match).String(),
	)
	assert.Equal(t,
		"whose property `Balance` is -5, which is less than or equal to 0",
		m.Explain(account{Balance: -5}).String(),
	)
}

type circle struct{ Radius float64 }

type rectangle struct{ Width, Height float64 }

func asCircle(v any) (circle, bool) {
	c, ok := v.(circle)
	return c, ok
}

func TestVariant(t *testing.T) {
	m := Variant("circle", asCircle, Field("Radius", func(c circle) float64 { return c.Radius }, Gt(0.0)))
	assert.Equal(t, matcher.Match, m.Matches(circle{Radius: 1.0}))
	assert.Equal(t, matcher.NoMatch, m.Matches(circle{Radius: -1.0}))
	assert.Equal(t, matcher.NoMatch, m.Matches(rectangle{Width: 1.0, Height: 2.0}))
}

func TestVariantExplainsWrongVariantWithoutConsultingInner(t *testing.T) {
	wrong := rectangle{Width: 1.0, Height: 2.0}

	lenient := Variant("circle", asCircle, Anything[circle]())
	strict := Variant("circle", asCircle, Field("Radius", func(c circle) float64 { return c.Radius }, Gt(100.0)))

	expected := "which has the wrong enum variant `rectangle`"
	assert.Equal(t, expected, lenient.Explain(wrong).String())
	assert.Equal(t, expected, strict.Explain(wrong).String())
}

func TestVariantExplainsInnerFailure(t *testing.T) {
	m := Variant("circle", asCircle, Field("Radius", func(c circle) float64 { return c.Radius }, Gt(0.0)))
	assert.Equal(t,
		"which is a `circle`\n"+
			"  whose field `Radius` is -1, which is less than or equal to 0",
		m.Explain(circle{Radius: -1.0}).String(),
	)
}

func TestPairOf(t *testing.T) {
	m := PairOf(Eq(1), Eq("a"))
	assert.Equal(t, matcher.Match, m.Matches(Pair[int, string]{1, "a"}))
	assert.Equal(t, matcher.NoMatch, m.Matches(Pair[int, string]{1, "b"}))
	assert.Equal(t, matcher.NoMatch, m.Matches(Pair[int, string]{2, "a"}))
}

func TestPairOfDescription(t *testing.T) {
	m := PairOf(Eq(1), Eq("a"))
	assert.Equal(t,
		"is a tuple whose fields respectively match:\n"+
			"  0. is equal to 1\n"+
			"  1. is equal to \"a\"",
		m.Describe(matcher.Match).String(),
	)
}

func TestPairOfExplainsFailingFields(t *testing.T) {
	m := PairOf(Eq(1), Eq("a"))
	assert.Equal(t,
		"where field #1 is \"b\", which isn't equal to \"a\"",
		m.Explain(Pair[int, string]{1, "b"}).String(),
	)
	assert.Equal(t,
		"where:\n"+
			"  * field #0 is 2, which isn't equal to 1\n"+
			"  * field #1 is \"b\", which isn't equal to \"a\"",
		m.Explain(Pair[int, string]{2, "b"}).String(),
	)
}

func TestTripleOf(t *testing.T) {
	m := TripleOf(Eq(1), Gt(0), Eq("a"))
	assert.Equal(t, matcher.Match, m.Matches(Triple[int, int, string]{1, 5, "a"}))
	assert.Equal(t, matcher.NoMatch, m.Matches(Triple[int, int, string]{1, -5, "a"}))
	assert.Equal(t,
		"where field #1 is -5, which is less than or equal to 0",
		m.Explain(Triple[int, int, string]{1, -5, "a"}).String(),
	)
}

func TestSome(t *testing.T) {
	five := 5

	m := Some(Eq(5))
	assert.Equal(t, matcher.Match, m.Matches(&five))
	assert.Equal(t, matcher.NoMatch, m.Matches(nil))

	three := 3
	assert.Equal(t, matcher.NoMatch, m.Matches(&three))
}

func TestSomeDescription(t *testing.T) {
	m := Some(Eq(5))
	assert.Equal(t, "has a value which is equal to 5", m.Describe(matcher.Match).String())
	assert.Equal(t,
		"is nil or has a value which isn't equal to 5",
		m.Describe(matcher.NoMatch).String(),
	)
}

func TestSomeExplainDistinguishesNilFromMismatch(t *testing.T) {
	m := Some(Eq(5))
	assert.Equal(t, "which is nil", m.Explain(nil).String())

	three := 3
	assert.Equal(t,
		"which has a value\n  which isn't equal to 5",
		m.Explain(&three).String(),
	)
}

func TestNone(t *testing.T) {
	m := None[int]()
	assert.Equal(t, matcher.Match, m.Matches(nil))

	five := 5
	assert.Equal(t, matcher.NoMatch, m.Matches(&five))
	assert.Equal(t, "which has the value 5", m.Explain(&five).String())
	assert.Equal(t, "is nil", m.Describe(matcher.Match).String())
	assert.Equal(t, "has a value", m.Describe(matcher.NoMatch).String())
}

func TestOk(t *testing.T) {
	m := Ok(Eq(17))
	assert.Equal(t, matcher.Match, m.Matches(Try(strconv.Atoi("17"))))
	assert.Equal(t, matcher.NoMatch, m.Matches(Try(strconv.Atoi("18"))))
	assert.Equal(t, matcher.NoMatch, m.Matches(Try(strconv.Atoi("not a number"))))
}

func TestOkExplainDistinguishesErrorFromMismatch(t *testing.T) {
	m := Ok(Eq(17))
	assert.Equal(t,
		"which is a success\n  which isn't equal to 17",
		m.Explain(Fallible[int]{Value: 18}).String(),
	)

	failed := Fallible[int]{Err: errors.New("boom")}
	assert.Equal(t, "which is an error: boom", m.Explain(failed).String())
}

func TestErr(t *testing.T) {
	isBoom := PredicateDescribed(
		func(err error) bool { return err != nil && err.Error() == "boom" },
		"is the boom error", "isn't the boom error",
	)

	m := Err[int](isBoom)
	assert.Equal(t, matcher.Match, m.Matches(Fallible[int]{Err: errors.New("boom")}))
	assert.Equal(t, matcher.NoMatch, m.Matches(Fallible[int]{Err: errors.New("other")}))
	assert.Equal(t, matcher.NoMatch, m.Matches(Fallible[int]{Value: 17}))
}

func TestErrExplainsUnexpectedSuccess(t *testing.T) {
	m := Err[int](Anything[error]())
	assert.Equal(t,
		"which is a success containing 17",
		m.Explain(Fallible[int]{Value: 17}).String(),
	)
}

func TestAsMatcher(t *testing.T) {
	assert.Equal(t, matcher.Match, AsMatcher[int](5).Matches(5))
	assert.Equal(t, matcher.NoMatch, AsMatcher[int](5).Matches(6))
	assert.Equal(t, matcher.Match, AsMatcher[int](Gt(3)).Matches(5))
}

func TestAsMatcherRejectsForeignTypes(t *testing.T) {
	assert.Panics(t, func() { AsMatcher[int]("not an int") })
	assert.Panics(t, func() { AsMatcher[int](Eq("wrong type")) })
}
