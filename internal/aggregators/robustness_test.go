package aggregators

import (
	"testing"
	"time"

	"netops-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestViews_NeverPanicOnDirtyRecords(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 18, 15, 0, 0, 0, testLoc)
	records := dirtyRecords(now)
	th := DefaultThresholds()

	for _, g := range []models.Granularity{models.GranularityDay, models.GranularityWeek, models.GranularityMonth, models.GranularityYear, "", "bogus"} {
		assert.NotPanics(t, func() {
			BuildComparativeRollup(records, 0, g, now, th)
			BuildComparativeRollup(records, 500, g, now, th)
			BuildTrends(records, g, []models.ProviderKey{models.NewProviderKey("", "")}, now, th)
		}, string(g))
	}
	for _, months := range []int{-1, 0, 3, 6, 12, 24} {
		assert.NotPanics(t, func() {
			h := BuildSLAHistory(records, 0, months, now, th)
			BuildSLABreakdown(h, models.MonthKey(now), 0)
		})
	}
	assert.NotPanics(t, func() {
		BuildHeatmap(records, now, th)
		BuildHeatmap(records, now, Thresholds{})
		BuildWeekdayDistribution(records, testLoc)
		ProviderOptions(records)
		BuildActivitySummary(records)
	})
}

func TestViews_EmptyRecordSet(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 18, 15, 0, 0, 0, testLoc)
	th := DefaultThresholds()

	comparative := BuildComparativeRollup(nil, 100, models.GranularityMonth, now, th)
	assert.Equal(t, GrowthNoData, comparative.IncidentGrowth.State)
	assert.Equal(t, 100.0, comparative.Current.SLA)

	heatmap := BuildHeatmap(nil, now, th)
	assert.Empty(t, heatmap.Rows)
	assert.Nil(t, heatmap.WorstCell)
	assert.Len(t, heatmap.Days, 30)

	assert.Empty(t, ProviderOptions(nil))
	assert.Equal(t, &ActivitySummary{}, BuildActivitySummary(nil))
}

func TestBuildActivitySummary(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 18, 15, 0, 0, 0, testLoc)
	independent := failure("1", "CANTV", "Venezuela", now, 0)
	independent.LifecycleStage = models.StageActive
	linked := failure("2", "CANTV", "Venezuela", now, 0)
	linked.LifecycleStage = models.StageInProgress
	linked.Failure.Wan1MassiveIncidentID = "9"
	massive := models.IncidentRecord{ID: "9", EventType: models.EventTypeMassiveIncident, LifecycleStage: models.StageActive, StartTime: now}
	resolved := failure("3", "CANTV", "Venezuela", time.Time{}, 0)

	out := BuildActivitySummary([]models.IncidentRecord{
		independent, linked, massive, resolved, degradation("4", "Inter", "VE", now),
	})

	assert.Equal(t, &ActivitySummary{
		TotalRecords:              5,
		ActiveIncidents:           4,
		IndependentActiveFailures: 1,
		LinkedActiveFailures:      1,
		ActiveMassiveIncidents:    1,
		ActiveDegradations:        1,
		UndatedRecords:            1,
	}, out)
}
