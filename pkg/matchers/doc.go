// Package matchers provides the built-in matchers: primitives
// (equality, ordering, string and container predicates), combinators
// (conjunction, disjunction, negation) and structural matchers
// (field/property extraction, tuples, ordered and unordered element
// matching).
//
// Every constructor returns an opaque matcher.Matcher value; client
// code composes matchers through the constructors and never names
// the concrete types. A fresh matcher tree is built per assertion;
// matchers are immutable and freely shareable once constructed.
package matchers
