package verify

import "digital.vasic.matchers/pkg/outcome"

// Observer receives test lifecycle events. Observers serve reporting
// and metrics collection; assertion evaluation never depends on them.
//
// Observer methods may be called from the goroutine running the test
// function, so implementations shared across tests must be safe for
// concurrent use.
type Observer interface {
	// TestStarted is called before the test function runs.
	TestStarted(name string)

	// AssertionFailed is called for every recorded failure, fatal or
	// not.
	AssertionFailed(name string, failure *outcome.Failure)

	// TestFinished is called after the test function returns.
	TestFinished(name string, passed bool)
}
