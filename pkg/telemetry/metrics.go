// Package telemetry provides Prometheus metrics for the application.
package telemetry

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all application metrics
type Metrics struct {
	// PDF generation metrics
	DocumentsTotal   *prometheus.CounterVec
	GenerateDuration prometheus.Histogram
	PagesPerDocument prometheus.Histogram
	DocumentBytes    prometheus.Histogram
	LogoFetchErrors  prometheus.Counter

	registry *prometheus.Registry
}

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// GetMetrics returns the global metrics instance, initializing it if necessary
func GetMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = newMetrics()
	})
	return globalMetrics
}

// newMetrics initializes all application metrics on a dedicated registry
func newMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector())

	m := &Metrics{registry: reg}

	m.DocumentsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sitesafe_documents_generated_total",
		Help: "Total number of PDF generation attempts by outcome.",
	}, []string{"status"})

	m.GenerateDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sitesafe_generate_duration_seconds",
		Help:    "Duration of PDF generation in seconds.",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})

	m.PagesPerDocument = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sitesafe_document_pages",
		Help:    "Number of pages per generated document.",
		Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 34},
	})

	m.DocumentBytes = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sitesafe_document_bytes",
		Help:    "Size in bytes of generated documents.",
		Buckets: prometheus.ExponentialBuckets(4096, 4, 8),
	})

	m.LogoFetchErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sitesafe_logo_fetch_errors_total",
		Help: "Total number of tolerated company logo fetch failures.",
	})

	reg.MustRegister(
		m.DocumentsTotal,
		m.GenerateDuration,
		m.PagesPerDocument,
		m.DocumentBytes,
		m.LogoFetchErrors,
	)

	return m
}

// ObserveGeneration records the outcome of one generation call
func (m *Metrics) ObserveGeneration(status string, seconds float64, pages, bytes int) {
	m.DocumentsTotal.WithLabelValues(status).Inc()
	m.GenerateDuration.Observe(seconds)
	if pages > 0 {
		m.PagesPerDocument.Observe(float64(pages))
	}
	if bytes > 0 {
		m.DocumentBytes.Observe(float64(bytes))
	}
}

// Handler returns the HTTP handler serving the /metrics endpoint
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
