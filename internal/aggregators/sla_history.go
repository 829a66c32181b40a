package aggregators

import (
	"sort"
	"time"

	"netops-dashboard/internal/models"
)

const defaultSLAMonths = 6

type SLAStatus string

const (
	SLAStatusCritical SLAStatus = "critical"
	SLAStatusWarning  SLAStatus = "warning"
	SLAStatusOptimal  SLAStatus = "optimal"
)

// NormalizeSLAMonths accepts 3, 6 or 12 and falls back to 6 otherwise.
func NormalizeSLAMonths(months int) int {
	switch months {
	case 3, 6, 12:
		return months
	}
	return defaultSLAMonths
}

type SLAMonth struct {
	Month                 string    `json:"month"`
	Start                 time.Time `json:"start"`
	Days                  int       `json:"days"`
	TotalMinutes          float64   `json:"totalMinutes"`
	DowntimeMinutes       int       `json:"downtimeMinutes"`
	Incidents             int       `json:"incidents"`
	SLA                   float64   `json:"sla"`
	AllowedDowntime       float64   `json:"allowedDowntime"`
	BudgetConsumedPercent float64   `json:"budgetConsumedPercent"`
	BudgetRemaining       float64   `json:"budgetRemaining"`
	Status                SLAStatus `json:"status"`
}

type SLAHistory struct {
	Months      int            `json:"months"`
	DeviceCount int            `json:"deviceCount"`
	Target      float64        `json:"target"`
	Series      []SLAMonth     `json:"series"`
	AverageSLA  float64        `json:"averageSla"`
	Drilldown   DrilldownIndex `json:"-"`
}

// BuildSLAHistory computes one calendar month per entry, oldest first,
// ending with the month containing now.
func BuildSLAHistory(records []models.IncidentRecord, deviceCount, months int, now time.Time, th Thresholds) *SLAHistory {
	months = NormalizeSLAMonths(months)
	loc := now.Location()
	y, m, _ := now.Date()

	out := &SLAHistory{
		Months:      months,
		DeviceCount: deviceCount,
		Target:      th.SLATarget,
		Series:      make([]SLAMonth, months),
		Drilldown:   DrilldownIndex{},
	}

	monthIndex := make(map[string]int, months)
	for i := 0; i < months; i++ {
		start := time.Date(y, m-time.Month(months-1-i), 1, 0, 0, 0, 0, loc)
		days := models.DaysInMonth(start)
		key := models.MonthKey(start)
		out.Series[i] = SLAMonth{
			Month:        key,
			Start:        start,
			Days:         days,
			TotalMinutes: float64(days) * minutesPerDay * float64(deviceCount),
		}
		monthIndex[key] = i
	}

	for i := range records {
		rec := &records[i]
		if !rec.HasStartTime() {
			continue
		}
		key := models.MonthKey(rec.StartTime.In(loc))
		idx, ok := monthIndex[key]
		if !ok {
			continue
		}
		out.Series[idx].DowntimeMinutes += rec.DowntimeMinutes
		out.Series[idx].Incidents++
		out.Drilldown.add(CellKey{View: ViewSLAHistory, Bucket: key}, rec)
	}

	var slaSum float64
	for i := range out.Series {
		sm := &out.Series[i]
		sm.SLA = 100
		if sm.TotalMinutes > 0 {
			sm.SLA = clampPercent(100 - float64(sm.DowntimeMinutes)/sm.TotalMinutes*100)
		}
		sm.AllowedDowntime = sm.TotalMinutes * th.ErrorBudgetRatio
		if sm.AllowedDowntime > 0 {
			sm.BudgetConsumedPercent = float64(sm.DowntimeMinutes) / sm.AllowedDowntime * 100
		}
		if remaining := sm.AllowedDowntime - float64(sm.DowntimeMinutes); remaining > 0 {
			sm.BudgetRemaining = remaining
		}
		sm.Status = slaStatus(sm.SLA, th)
		slaSum += sm.SLA
	}
	out.AverageSLA = slaSum / float64(len(out.Series))

	return out
}

func slaStatus(sla float64, th Thresholds) SLAStatus {
	switch {
	case sla < th.SLATarget:
		return SLAStatusCritical
	case sla < th.SLAWarning:
		return SLAStatusWarning
	default:
		return SLAStatusOptimal
	}
}

type RankedEntry struct {
	Name            string `json:"name"`
	DowntimeMinutes int    `json:"downtimeMinutes"`
	Incidents       int    `json:"incidents"`
}

type SLABreakdown struct {
	Month        string        `json:"month"`
	Found        bool          `json:"found"`
	Incidents    int           `json:"incidents"`
	TopStores    []RankedEntry `json:"topStores"`
	TopProviders []RankedEntry `json:"topProviders"`
}

// BuildSLABreakdown ranks the stores and providers of one month of history by
// summed downtime. Equal downtime keeps the records' original order.
func BuildSLABreakdown(history *SLAHistory, month string, limit int) *SLABreakdown {
	if limit <= 0 {
		limit = DefaultThresholds().RankingLimit
	}
	out := &SLABreakdown{Month: month, TopStores: []RankedEntry{}, TopProviders: []RankedEntry{}}
	if history == nil {
		return out
	}
	for _, sm := range history.Series {
		if sm.Month == month {
			out.Found = true
			break
		}
	}
	if !out.Found {
		return out
	}

	recs := history.Drilldown.Lookup(CellKey{View: ViewSLAHistory, Bucket: month})
	out.Incidents = len(recs)
	out.TopStores = rankBy(recs, func(r *models.IncidentRecord) string { return r.StoreName }, limit)
	out.TopProviders = rankBy(recs, func(r *models.IncidentRecord) string { return r.ProviderName }, limit)
	return out
}

func rankBy(recs []*models.IncidentRecord, name func(*models.IncidentRecord) string, limit int) []RankedEntry {
	index := map[string]int{}
	entries := []RankedEntry{}
	for _, rec := range recs {
		n := name(rec)
		pos, ok := index[n]
		if !ok {
			pos = len(entries)
			index[n] = pos
			entries = append(entries, RankedEntry{Name: n})
		}
		entries[pos].DowntimeMinutes += rec.DowntimeMinutes
		entries[pos].Incidents++
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].DowntimeMinutes > entries[j].DowntimeMinutes })
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
