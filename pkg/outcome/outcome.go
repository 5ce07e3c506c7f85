// Package outcome tracks the pass/fail state of a test and carries
// the failures recorded against it. A test starts out passing and
// can only move to failing; no assertion can un-fail a test.
package outcome

import "sync/atomic"

// Outcome accumulates the verdict of one test. It is safe for
// concurrent use: assertions running in multiple goroutines may all
// record failures against the same Outcome.
type Outcome struct {
	failed atomic.Bool
}

// New returns a passing Outcome.
func New() *Outcome {
	return &Outcome{}
}

// Fail marks the test as failed. The transition is one-way.
func (o *Outcome) Fail() {
	o.failed.Store(true)
}

// Failed reports whether any assertion has failed.
func (o *Outcome) Failed() bool {
	return o.failed.Load()
}

// Passed reports whether no assertion has failed so far.
func (o *Outcome) Passed() bool {
	return !o.failed.Load()
}
