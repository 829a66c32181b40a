package aggregators

import (
	"sort"
	"time"

	"netops-dashboard/internal/models"
)

type HeatmapCell struct {
	Date      string   `json:"date"`
	Minutes   int      `json:"minutes"`
	Incidents int      `json:"incidents"`
	Severity  Severity `json:"severity"`
}

type HeatmapRow struct {
	Provider       string        `json:"provider"`
	TotalIncidents int           `json:"totalIncidents"`
	Cells          []HeatmapCell `json:"cells"`
	TotalMinutes   int           `json:"totalMinutes"`
}

type HeatmapDay struct {
	Date     string `json:"date"`
	Weekday  int    `json:"weekday"`
	Minutes  int    `json:"minutes"`
	Critical bool   `json:"critical"`
}

type HeatmapWorstCell struct {
	Provider string `json:"provider"`
	Date     string `json:"date"`
	Minutes  int    `json:"minutes"`
}

type Heatmap struct {
	Days         []HeatmapDay      `json:"days"`
	Rows         []HeatmapRow      `json:"rows"`
	CriticalDays int               `json:"criticalDays"`
	TotalMinutes int               `json:"totalMinutes"`
	WorstCell    *HeatmapWorstCell `json:"worstCell,omitempty"`
	Drilldown    DrilldownIndex    `json:"-"`
}

// BuildHeatmap lays out the trailing local days ending today against the
// providers with the most incidents over the whole record set. A record
// without downtime contributes the fallback minutes to its cell.
func BuildHeatmap(records []models.IncidentRecord, now time.Time, th Thresholds) *Heatmap {
	numDays := th.HeatmapDays
	if numDays <= 0 {
		numDays = DefaultThresholds().HeatmapDays
	}

	out := &Heatmap{
		Days:      make([]HeatmapDay, numDays),
		Rows:      []HeatmapRow{},
		Drilldown: DrilldownIndex{},
	}

	y, m, d := now.Date()
	dayIndex := make(map[string]int, numDays)
	for i := 0; i < numDays; i++ {
		day := time.Date(y, m, d-(numDays-1-i), 0, 0, 0, 0, now.Location())
		key := models.DayKey(day)
		out.Days[i] = HeatmapDay{Date: key, Weekday: int(day.Weekday())}
		dayIndex[key] = i
	}

	providers := topProviders(records, th.HeatmapTopProviders)
	rowIndex := make(map[string]int, len(providers))
	for i, p := range providers {
		cells := make([]HeatmapCell, numDays)
		for j := range cells {
			cells[j] = HeatmapCell{Date: out.Days[j].Date, Severity: SeverityNone}
		}
		out.Rows = append(out.Rows, HeatmapRow{Provider: p.name, TotalIncidents: p.count, Cells: cells})
		rowIndex[p.name] = i
	}

	for i := range records {
		rec := &records[i]
		if !rec.HasStartTime() {
			continue
		}
		row, ok := rowIndex[rec.ProviderName]
		if !ok {
			continue
		}
		date := models.DayKey(rec.StartTime.In(now.Location()))
		col, ok := dayIndex[date]
		if !ok {
			continue
		}

		minutes := th.heatmapMinutes(rec.DowntimeMinutes)
		cell := &out.Rows[row].Cells[col]
		cell.Minutes += minutes
		cell.Incidents++
		out.Rows[row].TotalMinutes += minutes
		out.Days[col].Minutes += minutes
		out.TotalMinutes += minutes

		out.Drilldown.add(CellKey{View: ViewHeatmap, Group: rec.ProviderName, Bucket: date}, rec)
		out.Drilldown.add(CellKey{View: ViewHeatmap, Group: rec.ProviderName}, rec)
	}

	for r := range out.Rows {
		for c := range out.Rows[r].Cells {
			cell := &out.Rows[r].Cells[c]
			cell.Severity = th.Severity(cell.Minutes)
			if cell.Minutes > 0 && (out.WorstCell == nil || cell.Minutes > out.WorstCell.Minutes) {
				out.WorstCell = &HeatmapWorstCell{Provider: out.Rows[r].Provider, Date: cell.Date, Minutes: cell.Minutes}
			}
		}
	}
	for i := range out.Days {
		if th.IsCriticalDay(out.Days[i].Minutes) {
			out.Days[i].Critical = true
			out.CriticalDays++
		}
	}

	return out
}

type providerCount struct {
	name  string
	count int
}

// topProviders ranks provider names by incident count over all records,
// ties kept in first-seen order.
func topProviders(records []models.IncidentRecord, limit int) []providerCount {
	if limit <= 0 {
		limit = DefaultThresholds().HeatmapTopProviders
	}

	index := map[string]int{}
	var counts []providerCount
	for i := range records {
		name := records[i].ProviderName
		pos, ok := index[name]
		if !ok {
			pos = len(counts)
			index[name] = pos
			counts = append(counts, providerCount{name: name})
		}
		counts[pos].count++
	}

	sort.SliceStable(counts, func(i, j int) bool { return counts[i].count > counts[j].count })
	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}
