package stores

import (
	"netops-dashboard/internal/shared/metrics"
)

var (
	metricSnapshotInstalledTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSnapshot,
			Name:      "installed_total",
		},
		[]string{"source"},
	)

	// metricSnapshotStaleTotal counts refreshes that completed after a newer one and were discarded.
	metricSnapshotStaleTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSnapshot,
			Name:      "stale_discarded_total",
		},
		[]string{"source"},
	)

	metricSnapshotRecords = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSnapshot,
			Name:      "records",
		},
		[]string{"source"},
	)
)
