package aggregators

import (
	"netops-dashboard/internal/shared/metrics"
)

// metricViewComputedTotal counts view requests by view and memo outcome.
//
// The cache label is "hit" when the view was served from the memo cache for
// the installed snapshot sequence, and "miss" when it was recomputed.
var (
	metricViewComputedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "view_requests_total",
		},
		[]string{"view", "cache"},
	)

	metricViewComputeDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "view_compute_duration_seconds",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		},
		[]string{"view"},
	)
)
