package refreshers

import (
	"netops-dashboard/internal/shared/metrics"
)

var (
	metricRefreshTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRefresh,
			Name:      "total",
		},
		[]string{"reason", "source", metrics.FieldErrorCode},
	)

	metricRefreshDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRefresh,
			Name:      "duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"source"},
	)

	metricLiveFetchFailedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRefresh,
			Name:      "live_fetch_failed_total",
		},
		[]string{"reason"},
	)
)
