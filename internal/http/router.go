package http

import (
	"net/http"
	"time"

	"netops-dashboard/internal/aggregators"
	"netops-dashboard/internal/incidents"
	"netops-dashboard/internal/notifiers"
	"netops-dashboard/internal/shared/loggers"
	"netops-dashboard/internal/shared/metrics"
	"netops-dashboard/internal/stores"
	"netops-dashboard/internal/streams"

	"github.com/go-chi/chi/v5"
)

// RouterDeps are the services behind the HTTP API.
type RouterDeps struct {
	AggregationService aggregators.AggregationService
	IncidentService    incidents.MassiveIncidentService
	TriggerProducer    streams.RefreshTriggerProducer
	RawSnapshots       stores.RawSnapshotStore
	Hub                notifiers.Hub
	Location           *time.Location
	Clock              func() time.Time
}

// NewRouter creates and configures the HTTP router.
func NewRouter(deps RouterDeps, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	agg := deps.AggregationService

	// Routes
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/views/comparative", errorHandlingAdapter(NewComparativeHandler(agg)))
		r.Get("/views/heatmap", errorHandlingAdapter(NewHeatmapHandler(agg, deps.Location)))
		r.Get("/views/sla-history", errorHandlingAdapter(NewSLAHistoryHandler(agg)))
		r.Get("/views/sla-history/{month}/breakdown", errorHandlingAdapter(NewSLABreakdownHandler(agg)))
		r.Get("/views/weekday", errorHandlingAdapter(NewWeekdayHandler(agg)))
		r.Get("/views/trends", errorHandlingAdapter(NewTrendsHandler(agg)))
		r.Get("/providers", errorHandlingAdapter(NewProvidersHandler(agg)))
		r.Get("/drilldown", errorHandlingAdapter(NewDrilldownHandler(agg)))
		r.Get("/incidents", errorHandlingAdapter(NewIncidentsHandler(agg)))
		r.Get("/devices", errorHandlingAdapter(NewDevicesHandler(agg)))
		r.Get("/status", errorHandlingAdapter(NewStatusHandler(agg, deps.Clock)))
		r.Get("/snapshots/latest", errorHandlingAdapter(NewLatestArchiveHandler(deps.RawSnapshots)))

		r.Post("/refresh", errorHandlingAdapter(NewRefreshHandler(deps.TriggerProducer)))
		r.Post("/massive-incidents/{id}/close", errorHandlingAdapter(NewCloseMassiveIncidentHandler(deps.IncidentService)))
	})
	if deps.Hub != nil {
		router.Get("/ws", deps.Hub.ServeWS)
	}
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
