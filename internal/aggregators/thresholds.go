package aggregators

// Severity is the discrete banding of a heatmap cell.
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Thresholds gathers every constant the views depend on. The critical-day
// cutoff is intentionally separate from the severity bands.
type Thresholds struct {
	HeatmapFallbackMinutes int
	SeverityLowMax         int
	SeverityMediumMax      int
	SeverityHighMax        int
	CriticalDayMinutes     int

	SLATarget        float64
	SLAWarning       float64
	ErrorBudgetRatio float64

	HeatmapDays         int
	HeatmapTopProviders int
	RankingLimit        int

	TrendHeadroom  float64
	TrendEmptyAxis int
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		HeatmapFallbackMinutes: 60,
		SeverityLowMax:         30,
		SeverityMediumMax:      120,
		SeverityHighMax:        480,
		CriticalDayMinutes:     500,
		SLATarget:              99.5,
		SLAWarning:             99.8,
		ErrorBudgetRatio:       0.005,
		HeatmapDays:            30,
		HeatmapTopProviders:    10,
		RankingLimit:           3,
		TrendHeadroom:          1.1,
		TrendEmptyAxis:         5,
	}
}

// Severity bands a cell: 0 none, <30 low, <120 medium, <=480 high, above critical.
func (t Thresholds) Severity(minutes int) Severity {
	switch {
	case minutes <= 0:
		return SeverityNone
	case minutes < t.SeverityLowMax:
		return SeverityLow
	case minutes < t.SeverityMediumMax:
		return SeverityMedium
	case minutes <= t.SeverityHighMax:
		return SeverityHigh
	default:
		return SeverityCritical
	}
}

// IsCriticalDay applies the headline KPI cutoff to a day's total minutes.
func (t Thresholds) IsCriticalDay(minutes int) bool {
	return minutes > t.CriticalDayMinutes
}

// heatmapMinutes is the cell contribution of one record.
func (t Thresholds) heatmapMinutes(downtime int) int {
	if downtime <= 0 {
		return t.HeatmapFallbackMinutes
	}
	return downtime
}
