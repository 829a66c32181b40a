package http

import (
	"net/http"
	"strings"

	"netops-dashboard/internal/aggregators"
	"netops-dashboard/internal/models"
)

type drilldownHandler struct {
	aggregationService aggregators.AggregationService
}

func NewDrilldownHandler(aggregationService aggregators.AggregationService) AppHttpHandler {
	return &drilldownHandler{aggregationService: aggregationService}
}

// Handle processes GET /api/v1/drilldown?view=&group=&provider=&country=&bucket=&granularity=&months=.
func (h *drilldownHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	view, err := aggregators.ParseView(strings.TrimSpace(q.Get("view")))
	if err != nil {
		return errInvalidDrilldownQuery(err)
	}
	months, svcErr := queryInt(r, "months")
	if svcErr != nil {
		return svcErr
	}

	cell := aggregators.CellKey{
		View:   view,
		Group:  strings.TrimSpace(q.Get("group")),
		Bucket: strings.TrimSpace(q.Get("bucket")),
	}
	provider, country := q.Get("provider"), q.Get("country")
	if strings.TrimSpace(provider) != "" || strings.TrimSpace(country) != "" {
		cell.Provider = models.NewProviderKey(provider, country)
	}

	result, svcErr := h.aggregationService.Drilldown(r.Context(), aggregators.DrilldownRequest{
		Cell:        cell,
		Granularity: queryGranularity(r),
		Months:      months,
	})
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, result)
}
