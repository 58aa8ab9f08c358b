// Package metrics exposes the client's Prometheus collectors.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vagas"

// CategoryOK labels calls that finished without error.
const CategoryOK = "ok"

var (
	APIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Logical API calls by operation and outcome category.",
	}, []string{"operation", "category"})

	APIRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_retries_total",
		Help:      "Retried attempts by operation.",
	}, []string{"operation"})

	APIDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duration of logical API calls including retries and backoff.",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"operation"})

	FilterDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "filter_dropped_jobs_total",
		Help:      "Jobs dropped by client-side filter steps.",
	}, []string{"filter"})

	ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resume_validation_failures_total",
		Help:      "Résumé draft validation failures by field.",
	}, []string{"field"})
)

// WriteFile dumps the default registry in text format. An empty path is a no-op.
func WriteFile(path string) error {
	if path == "" {
		return nil
	}

	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics to %q: %w", path, err)
	}

	return nil
}
