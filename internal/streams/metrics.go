package streams

import (
	"netops-dashboard/internal/shared/metrics"
)

var (
	streamRefreshTrigger              = "refresh_trigger"
	metricRefreshTriggerProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "refresh_trigger_published_total",
		},
		[]string{"stream_id", "reason"},
	)

	metricRefreshTriggerCoalescedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "refresh_trigger_coalesced_total",
		},
		[]string{"stream_id", "reason"},
	)

	metricRefreshTriggerConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "refresh_trigger_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
