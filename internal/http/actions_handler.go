package http

import (
	"net/http"

	"netops-dashboard/internal/events"
	"netops-dashboard/internal/incidents"
	"netops-dashboard/internal/streams"

	"github.com/go-chi/chi/v5"
)

type RefreshResponse struct {
	TriggerID string `json:"triggerId"`
	Coalesced bool   `json:"coalesced"`
}

type refreshHandler struct {
	producer streams.RefreshTriggerProducer
}

func NewRefreshHandler(producer streams.RefreshTriggerProducer) AppHttpHandler {
	return &refreshHandler{producer: producer}
}

// Handle processes POST /api/v1/refresh. The refresh runs asynchronously;
// clients learn about the new snapshot over /ws or /api/v1/status.
func (h *refreshHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	event, coalesced, err := h.producer.Produce(r.Context(), events.RefreshReasonManual, "")
	if err != nil {
		return errRefreshNotQueued(err)
	}
	return writeJSON(w, http.StatusAccepted, RefreshResponse{TriggerID: event.TriggerID, Coalesced: coalesced})
}

type closeMassiveIncidentHandler struct {
	incidentService incidents.MassiveIncidentService
}

func NewCloseMassiveIncidentHandler(incidentService incidents.MassiveIncidentService) AppHttpHandler {
	return &closeMassiveIncidentHandler{incidentService: incidentService}
}

// Handle processes POST /api/v1/massive-incidents/{id}/close.
func (h *closeMassiveIncidentHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, svcErr := h.incidentService.Close(r.Context(), chi.URLParam(r, "id"))
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusAccepted, result)
}
