package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetrics_ImplementsInterface(t *testing.T) {
	var _ TestMetrics = &PrometheusMetrics{}
}

func TestPrometheusMetrics_Durations(t *testing.T) {
	m := NewPrometheusMetrics()
	m.RecordTest("Suite.First", "passed", 2*time.Second)
	m.RecordTest("Suite.First", "passed", 3*time.Second)

	assert.Len(t, m.durations["Suite.First"], 2)
}

func TestNoopMetrics_ImplementsInterface(t *testing.T) {
	var _ TestMetrics = &NoopMetrics{}
}
