package aggregators

import (
	"testing"
	"time"

	"netops-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrendBuckets(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 18, 15, 40, 0, 0, testLoc)

	tests := []struct {
		granularity models.Granularity
		count       int
		first       string
		last        string
	}{
		{models.GranularityDay, 24, "2026-03-17T16", "2026-03-18T15"},
		{models.GranularityWeek, 7, "2026-03-12", "2026-03-18"},
		{models.GranularityMonth, 30, "2026-02-17", "2026-03-18"},
		{models.GranularityYear, 12, "2025-04", "2026-03"},
	}

	for _, tt := range tests {
		t.Run(string(tt.granularity), func(t *testing.T) {
			t.Parallel()

			buckets, _ := trendBuckets(tt.granularity, now)
			require.Len(t, buckets, tt.count)
			assert.Equal(t, tt.first, buckets[0].Key)
			assert.Equal(t, tt.last, buckets[len(buckets)-1].Key)
		})
	}
}

func TestBuildTrends_OnlySelectedKeysContribute(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 18, 15, 40, 0, 0, testLoc)
	records := []models.IncidentRecord{
		failure("1", "Cantv", "venezuela", now.Add(-time.Hour), 10),
		failure("2", "CANTV", "VENEZUELA", now.Add(-time.Hour), 10),
		failure("3", "CANTV", "Colombia", now.Add(-time.Hour), 10),
		failure("4", "Inter", "Venezuela", now.Add(-time.Hour), 10),
		failure("5", "CANTV", "Venezuela", time.Time{}, 10),
	}

	selected := []models.ProviderKey{
		models.NewProviderKey("CANTV", "VENEZUELA"),
		{Provider: "cantv", Country: "venezuela"},
	}
	out := BuildTrends(records, models.GranularityDay, selected, now, DefaultThresholds())

	require.Len(t, out.Series, 1, "duplicate selections collapse into one series")
	s := out.Series[0]
	assert.Equal(t, "CANTV (VENEZUELA)", s.Label)
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 2, s.Values[22])
	assert.Equal(t, 3, out.MaxValue)

	recs := out.Drilldown.Lookup(CellKey{View: ViewTrends, Provider: s.Provider, Bucket: "2026-03-18T14"})
	assert.Len(t, recs, 2)
	assert.Nil(t, out.Drilldown.Lookup(CellKey{View: ViewTrends, Provider: models.NewProviderKey("Inter", "Venezuela"), Bucket: "2026-03-18T14"}))
}

func TestBuildTrends_EmptyAxis(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 18, 15, 40, 0, 0, testLoc)
	out := BuildTrends(nil, models.GranularityYear, []models.ProviderKey{models.NewProviderKey("CANTV", "VE")}, now, DefaultThresholds())

	assert.Equal(t, 5, out.MaxValue)
	require.Len(t, out.Series, 1)
	assert.Len(t, out.Series[0].Values, 12)

	none := BuildTrends(nil, models.GranularityWeek, nil, now, DefaultThresholds())
	assert.Empty(t, none.Series)
	assert.Equal(t, 5, none.MaxValue)
}

func TestBuildTrends_MonthlyBuckets(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 18, 15, 40, 0, 0, testLoc)
	key := models.NewProviderKey("CANTV", "Venezuela")
	var records []models.IncidentRecord
	for i := 0; i < 5; i++ {
		records = append(records, failure("jan", "CANTV", "Venezuela", time.Date(2026, 1, 3, 9, 0, 0, 0, testLoc), 0))
	}
	records = append(records, failure("old", "CANTV", "Venezuela", time.Date(2025, 3, 31, 9, 0, 0, 0, testLoc), 0))

	out := BuildTrends(records, models.GranularityYear, []models.ProviderKey{key}, now, DefaultThresholds())

	assert.Equal(t, 5, out.Series[0].Values[9])
	assert.Equal(t, 5, out.Series[0].Total)
	assert.Equal(t, 6, out.MaxValue)
}

func TestProviderOptions_MatchBucketingKeys(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 18, 15, 40, 0, 0, testLoc)
	records := []models.IncidentRecord{
		failure("1", "Inter", "Venezuela", now, 0),
		failure("2", "cantv ", "Venezuela", now, 0),
		failure("3", "CANTV", "venezuela", now, 0),
		failure("4", "", "", time.Time{}, 0),
	}

	options := ProviderOptions(records)
	require.Len(t, options, 3)
	assert.Equal(t, "CANTV (VENEZUELA)", options[0].Label)
	assert.Equal(t, "CANTV|VENEZUELA", options[0].Value)
	assert.Equal(t, 2, options[0].Incidents)
	assert.Equal(t, "DESCONOCIDO (DESCONOCIDO)", options[1].Label)
	assert.Equal(t, "INTER (VENEZUELA)", options[2].Label)

	out := BuildTrends(records, models.GranularityDay, []models.ProviderKey{options[0].Key}, now, DefaultThresholds())
	assert.Equal(t, 2, out.Series[0].Total)
}
