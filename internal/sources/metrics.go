package sources

import (
	"netops-dashboard/internal/shared/metrics"
)

var (
	// metricBackendRequestsTotal counts backend REST calls by target and outcome.
	// status is the HTTP status code, or "error" when no response was received.
	metricBackendRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "backend_requests_total",
		},
		[]string{"target", "status"},
	)

	metricBackendRequestDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "backend_request_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"target"},
	)

	metricSampleLoadedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "sample_loaded_total",
		},
		[]string{"origin"},
	)
)
