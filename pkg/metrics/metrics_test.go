package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetrics_RecordTest(t *testing.T) {
	m := NewPrometheusMetrics()
	m.RecordTest("Suite.First", "passed", 2*time.Second)
	m.RecordTest("Suite.First", "passed", 3*time.Second)
	m.RecordTest("Suite.Second", "failed", time.Second)

	assert.Equal(t, 2, m.TestCount("Suite.First", "passed"))
	assert.Equal(t, 1, m.TestCount("Suite.Second", "failed"))
	assert.Equal(t, 0, m.TestCount("Suite.Third", "passed"))
}

func TestPrometheusMetrics_RecordAssertion(t *testing.T) {
	m := NewPrometheusMetrics()
	m.RecordAssertion("Suite.First", true)
	m.RecordAssertion("Suite.First", false)

	assert.Equal(t, 1, m.AssertionCount("Suite.First", true))
	assert.Equal(t, 1, m.AssertionCount("Suite.First", false))
}

func TestPrometheusMetrics_RunTotal(t *testing.T) {
	m := NewPrometheusMetrics()
	m.IncrementRunTotal()
	m.IncrementRunTotal()
	assert.Equal(t, 2, m.RunTotal())
}

func TestPrometheusMetrics_ActiveTests(t *testing.T) {
	m := NewPrometheusMetrics()
	m.SetActiveTests(5)
	assert.Equal(t, 5, m.ActiveTests())
}

func TestNoopMetrics(t *testing.T) {
	m := &NoopMetrics{}
	// Should not panic
	m.RecordTest("Suite.First", "passed", time.Second)
	m.RecordAssertion("Suite.First", true)
	m.IncrementRunTotal()
	m.SetActiveTests(0)
}
