package normalizers

import (
	"testing"
	"time"

	"netops-dashboard/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func newTestNormalizer() IncidentNormalizer {
	return NewIncidentNormalizer(time.UTC, zerolog.Nop())
}

func TestIncidentNormalizer_Normalize_NilInput(t *testing.T) {
	t.Parallel()

	records := newTestNormalizer().Normalize(nil)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestIncidentNormalizer_Normalize_FailureJoinsInventory(t *testing.T) {
	t.Parallel()

	raw := &models.RawSnapshot{
		Failures: []models.FailureRow{{
			ID:                    "1",
			NetworkID:             "L_100",
			StartTime:             "2026-03-18T10:00:00Z",
			LifecycleStage:        "Activa",
			SiteImpact:            "parcial",
			DowntimeMinutes:       ptr(44.6),
			StoreName:             "stale name",
			ProviderName:          "stale provider",
			Wan1MassiveIncidentID: "77",
		}},
		Inventory: []models.InventoryRow{{
			NetworkID:        "L_100",
			StoreName:        "Tienda Centro",
			StoreCode:        "T-001",
			CrossStreet:      "Av. Urdaneta",
			Country:          "Venezuela",
			Wan1ProviderName: "CANTV",
			Wan2ProviderName: "Inter",
		}},
	}

	records := newTestNormalizer().Normalize(raw)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "Tienda Centro", rec.StoreName)
	assert.Equal(t, "T-001", rec.StoreCode)
	assert.Equal(t, "Av. Urdaneta", rec.CrossStreet)
	assert.Equal(t, "Venezuela", rec.Country)
	assert.Equal(t, "CANTV", rec.ProviderName)
	assert.Equal(t, 45, rec.DowntimeMinutes)
	assert.Equal(t, models.EventTypeStandardFailure, rec.EventType)
	assert.Equal(t, models.SiteImpactPartial, rec.SiteImpact)
	require.NotNil(t, rec.Failure)
	assert.Equal(t, "Inter", rec.Failure.Wan2ProviderName)
	assert.True(t, rec.IsLinkedToMassive())
	assert.Nil(t, rec.Degradation)
	assert.Nil(t, rec.Massive)
}

func TestIncidentNormalizer_Normalize_FailureJoinMissFallsBack(t *testing.T) {
	t.Parallel()

	raw := &models.RawSnapshot{
		Failures: []models.FailureRow{
			{ID: "1", NetworkID: "L_200", StartTime: "2026-03-18T10:00:00Z", StoreName: "Own Copy", Country: "Colombia", ProviderName: "Claro"},
			{ID: "2", NetworkID: "L_300", StartTime: "2026-03-18T09:00:00Z", DowntimeMinutes: ptr(-15)},
		},
	}

	records := newTestNormalizer().Normalize(raw)
	require.Len(t, records, 2)

	assert.Equal(t, "Own Copy", records[0].StoreName)
	assert.Equal(t, "Colombia", records[0].Country)
	assert.Equal(t, "Claro", records[0].ProviderName)
	assert.Equal(t, models.SiteImpactTotal, records[0].SiteImpact)

	assert.Equal(t, "L_300", records[1].StoreName)
	assert.Equal(t, models.UnknownPlaceholder, records[1].Country)
	assert.Equal(t, models.UnknownPlaceholder, records[1].ProviderName)
	assert.Equal(t, models.UnknownPlaceholder, records[1].StoreCode)
	assert.Equal(t, 0, records[1].DowntimeMinutes)
}

func TestIncidentNormalizer_Normalize_DegradationAndMassive(t *testing.T) {
	t.Parallel()

	raw := &models.RawSnapshot{
		Degradations: []models.DegradationRow{{
			ID: "d1", NetworkID: "L_100", StartTime: "2026-03-18T08:00:00Z", Status: "En observación", Description: "latencia alta",
		}},
		Massive: []models.MassiveIncidentRow{{
			ID: "9", StartTime: "2026-03-18T07:00:00Z", Status: "Activa", Country: "Venezuela", ProviderName: "CANTV", AffectedStores: 42,
		}},
		Inventory: []models.InventoryRow{{NetworkID: "L_100", StoreName: "Tienda Centro", Country: "Venezuela", Wan1ProviderName: "CANTV"}},
	}

	records := newTestNormalizer().Normalize(raw)
	require.Len(t, records, 2)

	deg := records[0]
	assert.Equal(t, models.EventTypeDegradation, deg.EventType)
	assert.Equal(t, models.SiteImpactDegradation, deg.SiteImpact)
	assert.Equal(t, 0, deg.DowntimeMinutes)
	assert.Equal(t, "Tienda Centro", deg.StoreName)
	assert.Equal(t, "CANTV", deg.ProviderName)
	require.NotNil(t, deg.Degradation)
	assert.Equal(t, "latencia alta", deg.Degradation.Description)

	massive := records[1]
	assert.Equal(t, models.EventTypeMassiveIncident, massive.EventType)
	assert.Equal(t, "MASIVA-9", massive.NetworkID)
	assert.Equal(t, "Afectación Masiva Venezuela", massive.StoreName)
	assert.Equal(t, models.SiteImpactMassive, massive.SiteImpact)
	assert.Equal(t, 0, massive.DowntimeMinutes)
	require.NotNil(t, massive.Massive)
	assert.Equal(t, 42, massive.Massive.AffectedStores)
}

func TestIncidentNormalizer_Normalize_OrdersByStartTimeDescending(t *testing.T) {
	t.Parallel()

	raw := &models.RawSnapshot{
		Failures: []models.FailureRow{
			{ID: "old", StartTime: "2026-03-01T00:00:00Z"},
			{ID: "bad", StartTime: "not a date"},
			{ID: "new", StartTime: "2026-03-18T00:00:00Z"},
			{ID: "missing"},
		},
		Degradations: []models.DegradationRow{
			{ID: "mid", StartTime: "2026-03-10T00:00:00Z"},
		},
	}

	records := newTestNormalizer().Normalize(raw)
	require.Len(t, records, 5)

	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"new", "mid", "old", "bad", "missing"}, ids)
	assert.False(t, records[3].HasStartTime())
	assert.Equal(t, "not a date", records[3].RawStartTime)
}
