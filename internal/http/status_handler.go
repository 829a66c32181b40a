package http

import (
	"errors"
	"net/http"
	"time"

	"netops-dashboard/internal/aggregators"
	"netops-dashboard/internal/presenters"
	"netops-dashboard/internal/stores"
)

type StatusResponse struct {
	Status  *aggregators.DashboardStatus `json:"status"`
	Display *presenters.StatusDisplay    `json:"display,omitempty"`
}

type statusHandler struct {
	aggregationService aggregators.AggregationService
	clock              func() time.Time
}

func NewStatusHandler(aggregationService aggregators.AggregationService, clock func() time.Time) AppHttpHandler {
	if clock == nil {
		clock = time.Now
	}
	return &statusHandler{aggregationService: aggregationService, clock: clock}
}

// Handle processes GET /api/v1/status. It answers 200 even before the
// first snapshot, with ready=false.
func (h *statusHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	status := h.aggregationService.Status(r.Context())
	return writeJSON(w, http.StatusOK, StatusResponse{
		Status:  status,
		Display: presenters.PresentStatus(status, h.clock()),
	})
}

type latestArchiveHandler struct {
	rawSnapshots stores.RawSnapshotStore
}

func NewLatestArchiveHandler(rawSnapshots stores.RawSnapshotStore) AppHttpHandler {
	return &latestArchiveHandler{rawSnapshots: rawSnapshots}
}

// Handle processes GET /api/v1/snapshots/latest: the raw payload of the
// last successful live fetch.
func (h *latestArchiveHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	raw, err := h.rawSnapshots.LoadLatest(r.Context())
	if err != nil {
		if errors.Is(err, stores.ErrRawSnapshotNotFound) {
			return errArchiveNotFound(err)
		}
		return errArchiveUnreadable(err)
	}
	return writeJSON(w, http.StatusOK, raw)
}
