package http

import (
	"net/http"
	"time"

	"netops-dashboard/internal/aggregators"
	"netops-dashboard/internal/presenters"

	"github.com/go-chi/chi/v5"
)

// ViewResponse pairs a computed view with its display labels.
type ViewResponse[V any, D any] struct {
	View    V `json:"view"`
	Display D `json:"display"`
}

type comparativeHandler struct {
	aggregationService aggregators.AggregationService
}

func NewComparativeHandler(aggregationService aggregators.AggregationService) AppHttpHandler {
	return &comparativeHandler{aggregationService: aggregationService}
}

// Handle processes GET /api/v1/views/comparative?granularity=.
func (h *comparativeHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	rollup, svcErr := h.aggregationService.Comparative(r.Context(), queryGranularity(r))
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, ViewResponse[*aggregators.ComparativeRollup, presenters.ComparativeDisplay]{
		View:    rollup,
		Display: presenters.PresentComparative(rollup),
	})
}

type heatmapHandler struct {
	aggregationService aggregators.AggregationService
	loc                *time.Location
}

func NewHeatmapHandler(aggregationService aggregators.AggregationService, loc *time.Location) AppHttpHandler {
	return &heatmapHandler{aggregationService: aggregationService, loc: loc}
}

// Handle processes GET /api/v1/views/heatmap.
func (h *heatmapHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	heatmap, svcErr := h.aggregationService.Heatmap(r.Context())
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, ViewResponse[*aggregators.Heatmap, presenters.HeatmapDisplay]{
		View:    heatmap,
		Display: presenters.PresentHeatmap(heatmap, h.loc),
	})
}

type slaHistoryHandler struct {
	aggregationService aggregators.AggregationService
}

func NewSLAHistoryHandler(aggregationService aggregators.AggregationService) AppHttpHandler {
	return &slaHistoryHandler{aggregationService: aggregationService}
}

// Handle processes GET /api/v1/views/sla-history?months=.
func (h *slaHistoryHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	months, svcErr := queryInt(r, "months")
	if svcErr != nil {
		return svcErr
	}
	history, svcErr := h.aggregationService.SLAHistory(r.Context(), months)
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, ViewResponse[*aggregators.SLAHistory, presenters.SLAHistoryDisplay]{
		View:    history,
		Display: presenters.PresentSLAHistory(history),
	})
}

type slaBreakdownHandler struct {
	aggregationService aggregators.AggregationService
}

func NewSLABreakdownHandler(aggregationService aggregators.AggregationService) AppHttpHandler {
	return &slaBreakdownHandler{aggregationService: aggregationService}
}

// Handle processes GET /api/v1/views/sla-history/{month}/breakdown?months=&limit=.
func (h *slaBreakdownHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	months, svcErr := queryInt(r, "months")
	if svcErr != nil {
		return svcErr
	}
	limit, svcErr := queryInt(r, "limit")
	if svcErr != nil {
		return svcErr
	}
	breakdown, svcErr := h.aggregationService.SLABreakdown(r.Context(), months, chi.URLParam(r, "month"), limit)
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, breakdown)
}

type weekdayHandler struct {
	aggregationService aggregators.AggregationService
}

func NewWeekdayHandler(aggregationService aggregators.AggregationService) AppHttpHandler {
	return &weekdayHandler{aggregationService: aggregationService}
}

// Handle processes GET /api/v1/views/weekday.
func (h *weekdayHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	distribution, svcErr := h.aggregationService.Weekday(r.Context())
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, ViewResponse[*aggregators.WeekdayDistribution, presenters.WeekdayDisplay]{
		View:    distribution,
		Display: presenters.PresentWeekday(distribution),
	})
}

type trendsHandler struct {
	aggregationService aggregators.AggregationService
}

func NewTrendsHandler(aggregationService aggregators.AggregationService) AppHttpHandler {
	return &trendsHandler{aggregationService: aggregationService}
}

// Handle processes GET /api/v1/views/trends?granularity=&series=PROVIDER|COUNTRY.
// series may be repeated; no series yields an empty chart.
func (h *trendsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	selected, svcErr := queryProviderKeys(r, "series")
	if svcErr != nil {
		return svcErr
	}
	trends, svcErr := h.aggregationService.Trends(r.Context(), queryGranularity(r), selected)
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, ViewResponse[*aggregators.Trends, presenters.TrendsDisplay]{
		View:    trends,
		Display: presenters.PresentTrends(trends),
	})
}

type providersHandler struct {
	aggregationService aggregators.AggregationService
}

func NewProvidersHandler(aggregationService aggregators.AggregationService) AppHttpHandler {
	return &providersHandler{aggregationService: aggregationService}
}

// Handle processes GET /api/v1/providers.
func (h *providersHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	options, svcErr := h.aggregationService.ProviderOptions(r.Context())
	if svcErr != nil {
		return svcErr
	}
	return writeJSON(w, http.StatusOK, options)
}
