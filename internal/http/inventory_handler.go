package http

import (
	"net/http"
	"strings"

	"netops-dashboard/internal/aggregators"
	"netops-dashboard/internal/models"
)

type incidentsHandler struct {
	aggregationService aggregators.AggregationService
}

func NewIncidentsHandler(aggregationService aggregators.AggregationService) AppHttpHandler {
	return &incidentsHandler{aggregationService: aggregationService}
}

// Handle processes GET /api/v1/incidents?type=&active=&limit=.
func (h *incidentsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	activeOnly, svcErr := queryBool(r, "active")
	if svcErr != nil {
		return svcErr
	}
	limit, svcErr := queryInt(r, "limit")
	if svcErr != nil {
		return svcErr
	}
	records, svcErr := h.aggregationService.Incidents(r.Context(), aggregators.IncidentFilter{
		Type:       models.EventType(strings.TrimSpace(r.URL.Query().Get("type"))),
		ActiveOnly: activeOnly,
		Limit:      limit,
	})
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, records)
}

type devicesHandler struct {
	aggregationService aggregators.AggregationService
}

func NewDevicesHandler(aggregationService aggregators.AggregationService) AppHttpHandler {
	return &devicesHandler{aggregationService: aggregationService}
}

// Handle processes GET /api/v1/devices?country=&provider=.
func (h *devicesHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	devices, svcErr := h.aggregationService.Devices(r.Context(), aggregators.DeviceFilter{
		Country:  r.URL.Query().Get("country"),
		Provider: r.URL.Query().Get("provider"),
	})
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, devices)
}
