package aggregators

import (
	"context"
	"strconv"
	"time"

	"netops-dashboard/internal/models"
	"netops-dashboard/internal/shared/loggers"
	"netops-dashboard/internal/shared/memocaches"
	"netops-dashboard/internal/shared/svcerrors"
	"netops-dashboard/internal/stores"
)

const (
	defaultIncidentLimit = 100
	maxIncidentLimit     = 1000
)

// DrilldownRequest addresses one cell together with the view parameters
// that produced it.
type DrilldownRequest struct {
	Cell        CellKey
	Granularity models.Granularity
	Months      int
}

// DrilldownResult carries the records behind a cell. Value re-applies the
// view's own rule to them, so it equals the rendered cell value.
type DrilldownResult struct {
	Cell    CellKey                  `json:"cell"`
	Count   int                      `json:"count"`
	Value   int                      `json:"value"`
	Records []*models.IncidentRecord `json:"records"`
}

type IncidentFilter struct {
	Type       models.EventType
	ActiveOnly bool
	Limit      int
}

//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AggregationService interface {
	Comparative(ctx context.Context, granularity models.Granularity) (*ComparativeRollup, *svcerrors.ServiceError)
	Heatmap(ctx context.Context) (*Heatmap, *svcerrors.ServiceError)
	SLAHistory(ctx context.Context, months int) (*SLAHistory, *svcerrors.ServiceError)
	SLABreakdown(ctx context.Context, months int, month string, limit int) (*SLABreakdown, *svcerrors.ServiceError)
	Weekday(ctx context.Context) (*WeekdayDistribution, *svcerrors.ServiceError)
	Trends(ctx context.Context, granularity models.Granularity, selected []models.ProviderKey) (*Trends, *svcerrors.ServiceError)
	ProviderOptions(ctx context.Context) ([]ProviderOption, *svcerrors.ServiceError)
	Drilldown(ctx context.Context, req DrilldownRequest) (*DrilldownResult, *svcerrors.ServiceError)
	Incidents(ctx context.Context, filter IncidentFilter) ([]*models.IncidentRecord, *svcerrors.ServiceError)
	Activity(ctx context.Context) (*ActivitySummary, *svcerrors.ServiceError)
	Devices(ctx context.Context, filter DeviceFilter) ([]models.InventoryRow, *svcerrors.ServiceError)
	// Status never fails; before the first refresh it reports Ready=false.
	Status(ctx context.Context) *DashboardStatus
}

type aggregationService struct {
	snapshots  stores.SnapshotReader
	cache      memocaches.MemoCache
	thresholds Thresholds
	loc        *time.Location
	clock      func() time.Time
}

// NewAggregationService serves every view from the installed snapshot. Views
// are memoized per snapshot sequence, so installing a new snapshot makes all
// previous entries unreachable.
func NewAggregationService(snapshots stores.SnapshotReader, cache memocaches.MemoCache, thresholds Thresholds, loc *time.Location, clock func() time.Time) AggregationService {
	if loc == nil {
		loc = time.Local
	}
	if clock == nil {
		clock = time.Now
	}
	return &aggregationService{snapshots: snapshots, cache: cache, thresholds: thresholds, loc: loc, clock: clock}
}

func (s *aggregationService) Comparative(ctx context.Context, granularity models.Granularity) (*ComparativeRollup, *svcerrors.ServiceError) {
	snap, now, svcErr := s.current(ctx)
	if svcErr != nil {
		return nil, svcErr
	}
	g, svcErr := resolveGranularity(granularity)
	if svcErr != nil {
		return nil, svcErr
	}
	return s.comparative(snap, g, now), nil
}

func (s *aggregationService) comparative(snap *models.Snapshot, g models.Granularity, now time.Time) *ComparativeRollup {
	return memoize(s, snap, ViewComparative, []string{string(g), models.DayKey(now)}, func() *ComparativeRollup {
		return BuildComparativeRollup(snap.Records, snap.DeviceCount, g, now, s.thresholds)
	})
}

func (s *aggregationService) Heatmap(ctx context.Context) (*Heatmap, *svcerrors.ServiceError) {
	snap, now, svcErr := s.current(ctx)
	if svcErr != nil {
		return nil, svcErr
	}
	return s.heatmap(snap, now), nil
}

func (s *aggregationService) heatmap(snap *models.Snapshot, now time.Time) *Heatmap {
	return memoize(s, snap, ViewHeatmap, []string{models.DayKey(now)}, func() *Heatmap {
		return BuildHeatmap(snap.Records, now, s.thresholds)
	})
}

func (s *aggregationService) SLAHistory(ctx context.Context, months int) (*SLAHistory, *svcerrors.ServiceError) {
	snap, now, svcErr := s.current(ctx)
	if svcErr != nil {
		return nil, svcErr
	}
	return s.slaHistory(snap, months, now), nil
}

func (s *aggregationService) slaHistory(snap *models.Snapshot, months int, now time.Time) *SLAHistory {
	months = NormalizeSLAMonths(months)
	return memoize(s, snap, ViewSLAHistory, []string{strconv.Itoa(months), models.MonthKey(now)}, func() *SLAHistory {
		return BuildSLAHistory(snap.Records, snap.DeviceCount, months, now, s.thresholds)
	})
}

func (s *aggregationService) SLABreakdown(ctx context.Context, months int, month string, limit int) (*SLABreakdown, *svcerrors.ServiceError) {
	snap, now, svcErr := s.current(ctx)
	if svcErr != nil {
		return nil, svcErr
	}
	if limit <= 0 {
		limit = s.thresholds.RankingLimit
	}
	breakdown := BuildSLABreakdown(s.slaHistory(snap, months, now), month, limit)
	if !breakdown.Found {
		return nil, errSLAMonthNotFound(month)
	}
	return breakdown, nil
}

func (s *aggregationService) Weekday(ctx context.Context) (*WeekdayDistribution, *svcerrors.ServiceError) {
	snap, _, svcErr := s.current(ctx)
	if svcErr != nil {
		return nil, svcErr
	}
	return s.weekday(snap), nil
}

func (s *aggregationService) weekday(snap *models.Snapshot) *WeekdayDistribution {
	return memoize(s, snap, ViewWeekday, nil, func() *WeekdayDistribution {
		return BuildWeekdayDistribution(snap.Records, s.loc)
	})
}

func (s *aggregationService) Trends(ctx context.Context, granularity models.Granularity, selected []models.ProviderKey) (*Trends, *svcerrors.ServiceError) {
	snap, now, svcErr := s.current(ctx)
	if svcErr != nil {
		return nil, svcErr
	}
	g, svcErr := resolveGranularity(granularity)
	if svcErr != nil {
		return nil, svcErr
	}
	return s.trends(snap, g, selected, now), nil
}

func (s *aggregationService) trends(snap *models.Snapshot, g models.Granularity, selected []models.ProviderKey, now time.Time) *Trends {
	params := make([]string, 0, len(selected)+2)
	params = append(params, string(g), trendTimeKey(g, now))
	for _, k := range selected {
		params = append(params, models.NewProviderKey(k.Provider, k.Country).String())
	}
	return memoize(s, snap, ViewTrends, params, func() *Trends {
		return BuildTrends(snap.Records, g, selected, now, s.thresholds)
	})
}

func (s *aggregationService) ProviderOptions(ctx context.Context) ([]ProviderOption, *svcerrors.ServiceError) {
	snap, _, svcErr := s.current(ctx)
	if svcErr != nil {
		return nil, svcErr
	}
	return memoize(s, snap, "provider_options", nil, func() []ProviderOption {
		return ProviderOptions(snap.Records)
	}), nil
}

func (s *aggregationService) Drilldown(ctx context.Context, req DrilldownRequest) (*DrilldownResult, *svcerrors.ServiceError) {
	snap, now, svcErr := s.current(ctx)
	if svcErr != nil {
		return nil, svcErr
	}
	if _, err := ParseView(string(req.Cell.View)); err != nil {
		return nil, errInvalidDrilldownView(err)
	}

	var index DrilldownIndex
	value := func(recs []*models.IncidentRecord) int { return sumDowntime(recs) }

	switch req.Cell.View {
	case ViewComparative:
		if req.Cell.Group != GroupCurrent && req.Cell.Group != GroupPrevious {
			return nil, errInvalidDrilldownCell("comparative drill-down needs group current or previous")
		}
		g, svcErr := resolveGranularity(req.Granularity)
		if svcErr != nil {
			return nil, svcErr
		}
		index = s.comparative(snap, g, now).Drilldown
	case ViewHeatmap:
		if req.Cell.Group == "" {
			return nil, errInvalidDrilldownCell("heatmap drill-down needs the provider as group")
		}
		index = s.heatmap(snap, now).Drilldown
		value = func(recs []*models.IncidentRecord) int {
			total := 0
			for _, r := range recs {
				total += s.thresholds.heatmapMinutes(r.DowntimeMinutes)
			}
			return total
		}
	case ViewSLAHistory:
		if req.Cell.Bucket == "" {
			return nil, errInvalidDrilldownCell("sla_history drill-down needs the month as bucket")
		}
		index = s.slaHistory(snap, req.Months, now).Drilldown
	case ViewWeekday:
		day, err := strconv.Atoi(req.Cell.Bucket)
		if err != nil || day < 0 || day > 6 {
			return nil, errInvalidDrilldownCell("weekday drill-down needs a bucket between 0 and 6")
		}
		index = s.weekday(snap).Drilldown
	case ViewTrends:
		if req.Cell.Provider == (models.ProviderKey{}) || req.Cell.Bucket == "" {
			return nil, errInvalidDrilldownCell("trends drill-down needs a provider and a bucket")
		}
		g, svcErr := resolveGranularity(req.Granularity)
		if svcErr != nil {
			return nil, svcErr
		}
		req.Cell.Provider = models.NewProviderKey(req.Cell.Provider.Provider, req.Cell.Provider.Country)
		index = s.trends(snap, g, []models.ProviderKey{req.Cell.Provider}, now).Drilldown
		value = func(recs []*models.IncidentRecord) int { return len(recs) }
	}

	recs := index.Lookup(req.Cell)
	if recs == nil {
		recs = []*models.IncidentRecord{}
	}
	loggers.Ctx(ctx).Debug().
		Str("view", string(req.Cell.View)).
		Int("matches", len(recs)).
		Msg("drill-down served")

	return &DrilldownResult{Cell: req.Cell, Count: len(recs), Value: value(recs), Records: recs}, nil
}

func (s *aggregationService) Incidents(ctx context.Context, filter IncidentFilter) ([]*models.IncidentRecord, *svcerrors.ServiceError) {
	snap, _, svcErr := s.current(ctx)
	if svcErr != nil {
		return nil, svcErr
	}
	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, errInvalidIncidentType(string(filter.Type))
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultIncidentLimit
	}
	if limit > maxIncidentLimit {
		limit = maxIncidentLimit
	}

	out := make([]*models.IncidentRecord, 0, min(limit, len(snap.Records)))
	for i := range snap.Records {
		rec := &snap.Records[i]
		if filter.Type != "" && rec.EventType != filter.Type {
			continue
		}
		if filter.ActiveOnly && !rec.IsActive() {
			continue
		}
		out = append(out, rec)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *aggregationService) Activity(ctx context.Context) (*ActivitySummary, *svcerrors.ServiceError) {
	snap, _, svcErr := s.current(ctx)
	if svcErr != nil {
		return nil, svcErr
	}
	return memoize(s, snap, "activity", nil, func() *ActivitySummary {
		return BuildActivitySummary(snap.Records)
	}), nil
}

func (s *aggregationService) Devices(ctx context.Context, filter DeviceFilter) ([]models.InventoryRow, *svcerrors.ServiceError) {
	snap, _, svcErr := s.current(ctx)
	if svcErr != nil {
		return nil, svcErr
	}
	return FilterDevices(snap.Inventory, filter), nil
}

func (s *aggregationService) Status(ctx context.Context) *DashboardStatus {
	snap := s.snapshots.Current()
	if snap == nil {
		return &DashboardStatus{}
	}
	info := snap.Info()
	return &DashboardStatus{
		Ready:    true,
		Snapshot: &info,
		Activity: memoize(s, snap, "activity", nil, func() *ActivitySummary {
			return BuildActivitySummary(snap.Records)
		}),
	}
}

func (s *aggregationService) current(ctx context.Context) (*models.Snapshot, time.Time, *svcerrors.ServiceError) {
	snap := s.snapshots.Current()
	if snap == nil {
		loggers.Ctx(ctx).Debug().Msg("view requested before first snapshot")
		return nil, time.Time{}, errSnapshotUnavailable()
	}
	return snap, s.clock().In(s.loc), nil
}

// memoize returns the cached value for (snapshot sequence, view, params) or
// computes and stores it. Cached values are shared and never mutated.
func memoize[T any](s *aggregationService, snap *models.Snapshot, view View, params []string, compute func() T) T {
	parts := make([]string, 0, len(params)+2)
	parts = append(parts, strconv.FormatUint(snap.Sequence, 10), string(view))
	parts = append(parts, params...)
	key := memocaches.Key(parts...)

	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			if v, ok := cached.(T); ok {
				metricViewComputedTotal.WithLabelValues(string(view), "hit").Inc()
				return v
			}
		}
	}

	start := time.Now()
	v := compute()
	metricViewComputeDuration.WithLabelValues(string(view)).Observe(time.Since(start).Seconds())
	metricViewComputedTotal.WithLabelValues(string(view), "miss").Inc()

	if s.cache != nil {
		s.cache.Set(key, v)
	}
	return v
}

func resolveGranularity(g models.Granularity) (models.Granularity, *svcerrors.ServiceError) {
	if g == "" {
		return models.DefaultGranularity, nil
	}
	if !g.IsValid() {
		return "", errInvalidGranularity(string(g))
	}
	return g, nil
}

// trendTimeKey changes whenever the trailing buckets of g shift.
func trendTimeKey(g models.Granularity, now time.Time) string {
	if g == models.GranularityDay {
		return now.Format(hourBucketLayout)
	}
	return models.DayKey(now)
}

func sumDowntime(recs []*models.IncidentRecord) int {
	total := 0
	for _, r := range recs {
		total += r.DowntimeMinutes
	}
	return total
}
