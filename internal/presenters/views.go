package presenters

import (
	"time"

	"netops-dashboard/internal/aggregators"
)

// Each view endpoint returns the computed view next to its display block:
// the numbers stay machine-readable, the labels are ready to render.

type MetricDisplay struct {
	Current  string `json:"current"`
	Previous string `json:"previous"`
	Growth   string `json:"growth,omitempty"`
}

type ProviderGrowthDisplay struct {
	Label    string `json:"label"`
	Current  string `json:"current"`
	Previous string `json:"previous"`
	Downtime string `json:"downtime"`
	Growth   string `json:"growth"`
}

type ComparativeDisplay struct {
	CurrentPeriod  string                  `json:"currentPeriod"`
	PreviousPeriod string                  `json:"previousPeriod"`
	Incidents      MetricDisplay           `json:"incidents"`
	Downtime       MetricDisplay           `json:"downtime"`
	MTTR           MetricDisplay           `json:"mttr"`
	SLA            MetricDisplay           `json:"sla"`
	Devices        string                  `json:"devices"`
	ByProvider     []ProviderGrowthDisplay `json:"byProvider"`
}

func PresentComparative(r *aggregators.ComparativeRollup) ComparativeDisplay {
	out := ComparativeDisplay{
		CurrentPeriod:  PeriodLabel(r.Granularity, r.Window.CurrentStart),
		PreviousPeriod: PeriodLabel(r.Granularity, r.Window.PreviousStart),
		Incidents: MetricDisplay{
			Current:  Count(r.Current.Incidents),
			Previous: Count(r.Previous.Incidents),
			Growth:   Growth(r.IncidentGrowth),
		},
		Downtime: MetricDisplay{
			Current:  Duration(r.Current.DowntimeMinutes),
			Previous: Duration(r.Previous.DowntimeMinutes),
			Growth:   Growth(r.DowntimeGrowth),
		},
		MTTR: MetricDisplay{
			Current:  Hours(r.Current.MTTRHours),
			Previous: Hours(r.Previous.MTTRHours),
			Growth:   Growth(r.MTTRGrowth),
		},
		SLA: MetricDisplay{
			Current:  Percent(r.Current.SLA),
			Previous: Percent(r.Previous.SLA),
		},
		Devices:    Count(r.DeviceCount),
		ByProvider: make([]ProviderGrowthDisplay, 0, len(r.ByProvider)),
	}
	for _, p := range r.ByProvider {
		out.ByProvider = append(out.ByProvider, ProviderGrowthDisplay{
			Label:    p.Label,
			Current:  Count(p.Current),
			Previous: Count(p.Previous),
			Downtime: Duration(p.CurrentDowntime),
			Growth:   Growth(p.Growth),
		})
	}
	return out
}

type HeatmapDayDisplay struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Total string `json:"total"`
}

type HeatmapCellDisplay struct {
	Minutes  string `json:"minutes"`
	Severity string `json:"severity"`
}

type HeatmapRowDisplay struct {
	Provider string               `json:"provider"`
	Total    string               `json:"total"`
	Cells    []HeatmapCellDisplay `json:"cells"`
}

type HeatmapDisplay struct {
	Days         []HeatmapDayDisplay `json:"days"`
	Rows         []HeatmapRowDisplay `json:"rows"`
	TotalMinutes string              `json:"totalMinutes"`
	CriticalDays string              `json:"criticalDays"`
	WorstCell    string              `json:"worstCell,omitempty"`
}

func PresentHeatmap(h *aggregators.Heatmap, loc *time.Location) HeatmapDisplay {
	out := HeatmapDisplay{
		Days:         make([]HeatmapDayDisplay, 0, len(h.Days)),
		Rows:         make([]HeatmapRowDisplay, 0, len(h.Rows)),
		TotalMinutes: Duration(h.TotalMinutes),
		CriticalDays: Count(h.CriticalDays) + " " + plural(h.CriticalDays, "día crítico", "días críticos"),
	}
	for _, d := range h.Days {
		out.Days = append(out.Days, HeatmapDayDisplay{Date: d.Date, Label: dayLabel(d.Date, loc), Total: Duration(d.Minutes)})
	}
	for _, row := range h.Rows {
		display := HeatmapRowDisplay{Provider: row.Provider, Total: Duration(row.TotalMinutes), Cells: make([]HeatmapCellDisplay, 0, len(row.Cells))}
		for _, c := range row.Cells {
			display.Cells = append(display.Cells, HeatmapCellDisplay{Minutes: Duration(c.Minutes), Severity: SeverityLabel(c.Severity)})
		}
		out.Rows = append(out.Rows, display)
	}
	if h.WorstCell != nil {
		out.WorstCell = h.WorstCell.Provider + " · " + dayLabel(h.WorstCell.Date, loc) + " · " + Duration(h.WorstCell.Minutes)
	}
	return out
}

func dayLabel(date string, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return date
	}
	return ShortDate(t)
}

type SLAMonthDisplay struct {
	Month          string `json:"month"`
	Label          string `json:"label"`
	SLA            string `json:"sla"`
	Status         string `json:"status"`
	Downtime       string `json:"downtime"`
	Allowed        string `json:"allowed"`
	BudgetConsumed string `json:"budgetConsumed"`
}

type SLAHistoryDisplay struct {
	Target  string            `json:"target"`
	Average string            `json:"average"`
	Series  []SLAMonthDisplay `json:"series"`
}

func PresentSLAHistory(h *aggregators.SLAHistory) SLAHistoryDisplay {
	out := SLAHistoryDisplay{
		Target:  Percent(h.Target),
		Average: Percent(h.AverageSLA),
		Series:  make([]SLAMonthDisplay, 0, len(h.Series)),
	}
	for _, m := range h.Series {
		out.Series = append(out.Series, SLAMonthDisplay{
			Month:          m.Month,
			Label:          MonthLabel(m.Month),
			SLA:            Percent(m.SLA),
			Status:         SLAStatusLabel(m.Status),
			Downtime:       Duration(m.DowntimeMinutes),
			Allowed:        Duration(int(m.AllowedDowntime)),
			BudgetConsumed: Percent(m.BudgetConsumedPercent),
		})
	}
	return out
}

type WeekdayBucketDisplay struct {
	Label     string `json:"label"`
	Incidents string `json:"incidents"`
	Downtime  string `json:"downtime"`
}

type WeekdayDisplay struct {
	Total   string                 `json:"total"`
	Buckets []WeekdayBucketDisplay `json:"buckets"`
}

func PresentWeekday(w *aggregators.WeekdayDistribution) WeekdayDisplay {
	out := WeekdayDisplay{Total: Count(w.Total), Buckets: make([]WeekdayBucketDisplay, 0, len(w.Buckets))}
	for _, b := range w.Buckets {
		out.Buckets = append(out.Buckets, WeekdayBucketDisplay{
			Label:     WeekdayName(b.Weekday),
			Incidents: Count(b.Incidents),
			Downtime:  Duration(b.DowntimeMinutes),
		})
	}
	return out
}

type TrendsDisplay struct {
	Buckets []string `json:"buckets"`
}

func PresentTrends(t *aggregators.Trends) TrendsDisplay {
	out := TrendsDisplay{Buckets: make([]string, 0, len(t.Buckets))}
	for _, b := range t.Buckets {
		out.Buckets = append(out.Buckets, TrendBucketLabel(t.Granularity, b.Start))
	}
	return out
}

type StatusDisplay struct {
	Source    string `json:"source"`
	UpdatedAt string `json:"updatedAt"`
	Records   string `json:"records"`
	Devices   string `json:"devices"`
}

func PresentStatus(s *aggregators.DashboardStatus, now time.Time) *StatusDisplay {
	if s == nil || s.Snapshot == nil {
		return nil
	}
	return &StatusDisplay{
		Source:    SourceLabel(s.Snapshot.Source),
		UpdatedAt: Ago(s.Snapshot.FetchedAt, now),
		Records:   Count(s.Snapshot.RecordCount),
		Devices:   Count(s.Snapshot.DeviceCount),
	}
}
