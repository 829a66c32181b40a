package aggregators

import (
	"time"

	"netops-dashboard/internal/models"
)

type WeekdayBucket struct {
	Weekday         int     `json:"weekday"`
	Incidents       int     `json:"incidents"`
	DowntimeMinutes int     `json:"downtimeMinutes"`
	PercentOfMax    float64 `json:"percentOfMax"`
}

type WeekdayDistribution struct {
	Buckets   [7]WeekdayBucket `json:"buckets"`
	Total     int              `json:"total"`
	Drilldown DrilldownIndex   `json:"-"`
}

// BuildWeekdayDistribution groups every dated record, regardless of age, by
// its local weekday (0 is Sunday).
func BuildWeekdayDistribution(records []models.IncidentRecord, loc *time.Location) *WeekdayDistribution {
	if loc == nil {
		loc = time.Local
	}
	out := &WeekdayDistribution{Drilldown: DrilldownIndex{}}
	for i := range out.Buckets {
		out.Buckets[i].Weekday = i
	}

	for i := range records {
		rec := &records[i]
		if !rec.HasStartTime() {
			continue
		}
		day := int(rec.StartTime.In(loc).Weekday())
		out.Buckets[day].Incidents++
		out.Buckets[day].DowntimeMinutes += rec.DowntimeMinutes
		out.Total++
		out.Drilldown.add(CellKey{View: ViewWeekday, Bucket: weekdayBucket(day)}, rec)
	}

	maxCount := 0
	for _, b := range out.Buckets {
		if b.Incidents > maxCount {
			maxCount = b.Incidents
		}
	}
	if maxCount > 0 {
		for i := range out.Buckets {
			out.Buckets[i].PercentOfMax = float64(out.Buckets[i].Incidents) / float64(maxCount) * 100
		}
	}

	return out
}
