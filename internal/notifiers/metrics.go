package notifiers

import (
	"netops-dashboard/internal/shared/metrics"
)

var (
	metricPushClients = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPush,
			Name:      "clients",
		},
		[]string{},
	)

	metricPushMessagesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPush,
			Name:      "messages_total",
		},
		[]string{"type", "result"},
	)
)
