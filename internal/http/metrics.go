package http

import (
	"netops-dashboard/internal/shared/metrics"
)

var requestLabels = []string{"method", "path", "status", metrics.FieldErrorCode}

var (
	// metricHTTPRequestsTotal counts requests by route pattern.
	metricHTTPRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "requests_total",
		},
		requestLabels,
	)

	metricHTTPRequestDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "request_latency",
			Buckets:   metrics.DefBuckets,
		},
		requestLabels,
	)

	// metricHTTPInFlight includes open /ws connections, which stay in their handler.
	metricHTTPInFlight = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "in_flight_requests",
		},
		[]string{"method"},
	)
)
