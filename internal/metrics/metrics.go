// Package metrics holds the Prometheus collectors exported by the server.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	requestDuration    *prometheus.SummaryVec
	requests           *prometheus.CounterVec
	analyses           *prometheus.CounterVec
	overallScore       *prometheus.HistogramVec
	extractionFailures *prometheus.CounterVec
}

// New registers every collector on reg. Passing nil uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		requestDuration: factory.NewSummaryVec(
			prometheus.SummaryOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP request duration in seconds",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.95: 0.005,
					0.99: 0.001,
				},
			},
			[]string{"method", "path", "status_code"},
		),
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		analyses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "profile_analyses_total",
				Help: "Profiles scored, by input source and engine",
			},
			[]string{"source", "engine"},
		),
		overallScore: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "profile_overall_score",
				Help:    "Distribution of overall profile scores",
				Buckets: prometheus.LinearBuckets(10, 10, 10),
			},
			[]string{"source"},
		),
		extractionFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "document_extraction_failures_total",
				Help: "Documents for which no extractor produced text",
			},
			[]string{"kind"},
		),
	}
}

func (m *Metrics) ObserveRequest(method, path, statusCode string, d time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, path, statusCode).Observe(d.Seconds())
	m.requests.WithLabelValues(method, path, statusCode).Inc()
}

func (m *Metrics) ObserveAnalysis(source, engine string, overall int) {
	if m == nil {
		return
	}
	m.analyses.WithLabelValues(source, engine).Inc()
	m.overallScore.WithLabelValues(source).Observe(float64(overall))
}

func (m *Metrics) ObserveExtractionFailure(kind string) {
	if m == nil {
		return
	}
	m.extractionFailures.WithLabelValues(kind).Inc()
}
