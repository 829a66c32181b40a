package aggregators

import (
	"math"
	"sort"
	"time"

	"netops-dashboard/internal/models"
)

const minutesPerDay = 1440

type GrowthState string

const (
	GrowthChange   GrowthState = "change"
	GrowthBaseline GrowthState = "baseline"
	GrowthNoData   GrowthState = "no_data"
)

// Growth is the relative change between two periods. Percent is only
// meaningful when State is GrowthChange.
type Growth struct {
	State   GrowthState `json:"state"`
	Percent float64     `json:"percent"`
}

func newGrowth(current, previous float64) Growth {
	switch {
	case previous == 0 && current == 0:
		return Growth{State: GrowthNoData}
	case previous == 0:
		return Growth{State: GrowthBaseline}
	default:
		return Growth{State: GrowthChange, Percent: (current - previous) / previous * 100}
	}
}

type PeriodMetrics struct {
	Incidents       int     `json:"incidents"`
	DowntimeMinutes int     `json:"downtimeMinutes"`
	MTTRHours       float64 `json:"mttrHours"`
	SLA             float64 `json:"sla"`
}

type ImpactComparison struct {
	Impact   models.SiteImpact `json:"impact"`
	Current  int               `json:"current"`
	Previous int               `json:"previous"`
}

type ProviderComparison struct {
	Provider         models.ProviderKey `json:"provider"`
	Label            string             `json:"label"`
	Current          int                `json:"current"`
	Previous         int                `json:"previous"`
	CurrentDowntime  int                `json:"currentDowntime"`
	PreviousDowntime int                `json:"previousDowntime"`
	Growth           Growth             `json:"growth"`
}

type ComparativeRollup struct {
	Granularity    models.Granularity   `json:"granularity"`
	Window         models.Window        `json:"window"`
	DeviceCount    int                  `json:"deviceCount"`
	Current        PeriodMetrics        `json:"current"`
	Previous       PeriodMetrics        `json:"previous"`
	IncidentGrowth Growth               `json:"incidentGrowth"`
	DowntimeGrowth Growth               `json:"downtimeGrowth"`
	MTTRGrowth     Growth               `json:"mttrGrowth"`
	ByImpact       []ImpactComparison   `json:"byImpact"`
	ByProvider     []ProviderComparison `json:"byProvider"`
	Drilldown      DrilldownIndex       `json:"-"`
}

var impactOrder = []models.SiteImpact{
	models.SiteImpactTotal,
	models.SiteImpactPartial,
	models.SiteImpactDegradation,
	models.SiteImpactMassive,
}

// BuildComparativeRollup partitions records into the current and previous
// windows of granularity and compares them.
func BuildComparativeRollup(records []models.IncidentRecord, deviceCount int, granularity models.Granularity, now time.Time, th Thresholds) *ComparativeRollup {
	granularity = granularity.OrDefault()
	window := granularity.Resolve(now)

	out := &ComparativeRollup{
		Granularity: granularity,
		Window:      window,
		DeviceCount: deviceCount,
		Drilldown:   DrilldownIndex{},
	}

	impacts := make(map[models.SiteImpact]*ImpactComparison, len(impactOrder))
	for _, impact := range impactOrder {
		impacts[impact] = &ImpactComparison{Impact: impact}
	}
	providers := map[models.ProviderKey]*ProviderComparison{}
	var providerOrder []models.ProviderKey

	for i := range records {
		rec := &records[i]
		if !rec.HasStartTime() {
			continue
		}

		var group string
		var period *PeriodMetrics
		switch {
		case window.InCurrent(rec.StartTime):
			group, period = GroupCurrent, &out.Current
		case window.InPrevious(rec.StartTime):
			group, period = GroupPrevious, &out.Previous
		default:
			continue
		}

		period.Incidents++
		period.DowntimeMinutes += rec.DowntimeMinutes

		impact, ok := impacts[rec.SiteImpact]
		if !ok {
			impact = &ImpactComparison{Impact: rec.SiteImpact}
			impacts[rec.SiteImpact] = impact
		}

		key := rec.ProviderKey()
		pc, ok := providers[key]
		if !ok {
			pc = &ProviderComparison{Provider: key, Label: key.Label()}
			providers[key] = pc
			providerOrder = append(providerOrder, key)
		}

		if group == GroupCurrent {
			impact.Current++
			pc.Current++
			pc.CurrentDowntime += rec.DowntimeMinutes
		} else {
			impact.Previous++
			pc.Previous++
			pc.PreviousDowntime += rec.DowntimeMinutes
		}

		out.Drilldown.add(CellKey{View: ViewComparative, Group: group}, rec)
		out.Drilldown.add(CellKey{View: ViewComparative, Group: group, Provider: key}, rec)
		out.Drilldown.add(CellKey{View: ViewComparative, Group: group, Bucket: string(rec.SiteImpact)}, rec)
	}

	windowDays := granularity.NominalDays()
	finishPeriod(&out.Current, deviceCount, windowDays)
	finishPeriod(&out.Previous, deviceCount, windowDays)

	out.IncidentGrowth = newGrowth(float64(out.Current.Incidents), float64(out.Previous.Incidents))
	out.DowntimeGrowth = newGrowth(float64(out.Current.DowntimeMinutes), float64(out.Previous.DowntimeMinutes))
	out.MTTRGrowth = newGrowth(out.Current.MTTRHours, out.Previous.MTTRHours)

	out.ByImpact = make([]ImpactComparison, 0, len(impacts))
	for _, impact := range impactOrder {
		out.ByImpact = append(out.ByImpact, *impacts[impact])
		delete(impacts, impact)
	}
	extra := make([]models.SiteImpact, 0, len(impacts))
	for impact := range impacts {
		extra = append(extra, impact)
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	for _, impact := range extra {
		out.ByImpact = append(out.ByImpact, *impacts[impact])
	}

	out.ByProvider = make([]ProviderComparison, 0, len(providerOrder))
	for _, key := range providerOrder {
		pc := providers[key]
		pc.Growth = newGrowth(float64(pc.Current), float64(pc.Previous))
		out.ByProvider = append(out.ByProvider, *pc)
	}
	sort.SliceStable(out.ByProvider, func(i, j int) bool {
		return out.ByProvider[i].Current > out.ByProvider[j].Current
	})

	return out
}

func finishPeriod(p *PeriodMetrics, deviceCount int, windowDays float64) {
	if p.Incidents > 0 {
		p.MTTRHours = float64(p.DowntimeMinutes) / float64(p.Incidents) / 60
	}
	p.SLA = approximateSLA(p.DowntimeMinutes, deviceCount, windowDays)
}

// approximateSLA is 100 - downtime/(devices*days*1440)*100 clamped to [0,100];
// an empty fleet reports 100.
func approximateSLA(downtime, deviceCount int, windowDays float64) float64 {
	capacity := float64(deviceCount) * windowDays * minutesPerDay
	if capacity <= 0 {
		return 100
	}
	return clampPercent(100 - float64(downtime)/capacity*100)
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) {
		return 100
	}
	return math.Max(0, math.Min(100, v))
}
