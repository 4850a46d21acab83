package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveRequest("POST", "/analyze", "200", 15*time.Millisecond)
	m.ObserveRequest("POST", "/analyze", "200", 5*time.Millisecond)
	m.ObserveAnalysis("text", "heuristic", 48)
	m.ObserveExtractionFailure("pdf")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("POST", "/analyze", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.analyses.WithLabelValues("text", "heuristic")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.extractionFailures.WithLabelValues("pdf")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.overallScore))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/health", "200", time.Millisecond)
		m.ObserveAnalysis("pdf", "basic", 0)
		m.ObserveExtractionFailure("pdf")
	})
}
