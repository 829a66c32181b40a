package aggregators

import (
	"testing"
	"time"

	"netops-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildWeekdayDistribution(t *testing.T) {
	t.Parallel()

	records := []models.IncidentRecord{
		// Sunday
		failure("1", "CANTV", "Venezuela", time.Date(2026, 3, 15, 10, 0, 0, 0, testLoc), 30),
		// Monday
		failure("2", "CANTV", "Venezuela", time.Date(2026, 3, 16, 10, 0, 0, 0, testLoc), 10),
		failure("3", "CANTV", "Venezuela", time.Date(2019, 3, 18, 10, 0, 0, 0, testLoc), 20),
		// Monday 01:00 UTC is still Sunday in UTC-4
		failure("4", "CANTV", "Venezuela", time.Date(2026, 3, 16, 1, 0, 0, 0, time.UTC), 5),
		failure("5", "CANTV", "Venezuela", time.Time{}, 99),
	}

	out := BuildWeekdayDistribution(records, testLoc)

	assert.Equal(t, 4, out.Total)
	assert.Equal(t, 2, out.Buckets[0].Incidents)
	assert.Equal(t, 35, out.Buckets[0].DowntimeMinutes)
	assert.Equal(t, 2, out.Buckets[1].Incidents)
	assert.Equal(t, 30, out.Buckets[1].DowntimeMinutes)
	assert.Equal(t, 100.0, out.Buckets[0].PercentOfMax)
	assert.Equal(t, 0.0, out.Buckets[3].PercentOfMax)

	sum := 0
	for i, b := range out.Buckets {
		assert.Equal(t, i, b.Weekday)
		sum += b.Incidents
		assert.Len(t, out.Drilldown.Lookup(CellKey{View: ViewWeekday, Bucket: weekdayBucket(i)}), b.Incidents)
	}
	assert.Equal(t, out.Total, sum)
}

func TestBuildWeekdayDistribution_Empty(t *testing.T) {
	t.Parallel()

	out := BuildWeekdayDistribution(nil, nil)
	assert.Equal(t, 0, out.Total)
	for _, b := range out.Buckets {
		assert.Equal(t, 0.0, b.PercentOfMax)
	}
}
