package incidents

import (
	"netops-dashboard/internal/shared/metrics"
)

var (
	metricMassiveClosedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "massive_incidents_closed_total",
		},
		[]string{},
	)
)
