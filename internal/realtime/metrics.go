package realtime

import (
	"netops-dashboard/internal/shared/metrics"
)

var (
	metricRealtimeMessagesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRealtime,
			Name:      "messages_total",
		},
		[]string{"event"},
	)

	metricRealtimeReconnectsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRealtime,
			Name:      "reconnects_total",
		},
		[]string{},
	)

	metricRealtimeConnected = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRealtime,
			Name:      "connected",
		},
		[]string{},
	)
)
