package aggregators

import (
	"time"

	"netops-dashboard/internal/models"
)

var testLoc = time.FixedZone("VET", -4*3600)

func failure(id, provider, country string, start time.Time, downtime int) models.IncidentRecord {
	return models.IncidentRecord{
		ID:              id,
		NetworkID:       "L_" + id,
		StoreName:       "Tienda " + id,
		Country:         country,
		StartTime:       start,
		DowntimeMinutes: downtime,
		LifecycleStage:  models.StageResolved,
		EventType:       models.EventTypeStandardFailure,
		SiteImpact:      models.SiteImpactTotal,
		ProviderName:    provider,
		Failure:         &models.FailureDetail{},
	}
}

func degradation(id, provider, country string, start time.Time) models.IncidentRecord {
	return models.IncidentRecord{
		ID:             id,
		NetworkID:      "L_" + id,
		StoreName:      "Tienda " + id,
		Country:        country,
		StartTime:      start,
		LifecycleStage: models.StageObservation,
		EventType:      models.EventTypeDegradation,
		SiteImpact:     models.SiteImpactDegradation,
		ProviderName:   provider,
		Degradation:    &models.DegradationDetail{},
	}
}

// dirtyRecords mixes undated, zero-downtime and unknown-provider records.
func dirtyRecords(now time.Time) []models.IncidentRecord {
	return []models.IncidentRecord{
		failure("1", "CANTV", "Venezuela", now.Add(-time.Hour), 30),
		failure("2", "", "", time.Time{}, 0),
		failure("3", models.UnknownPlaceholder, "Colombia", now.AddDate(0, 0, -3), 0),
		degradation("4", "Inter", "Venezuela", now.AddDate(0, -2, 0)),
		{ID: "5", EventType: models.EventTypeMassiveIncident, StartTime: now.AddDate(-2, 0, 0), Massive: &models.MassiveDetail{}},
	}
}
