package aggregators

import "netops-dashboard/internal/models"

// ActivitySummary counts what is currently open across the fleet. A failure
// carried by a parent massive incident is not counted as independently active.
type ActivitySummary struct {
	TotalRecords              int `json:"totalRecords"`
	ActiveIncidents           int `json:"activeIncidents"`
	IndependentActiveFailures int `json:"independentActiveFailures"`
	LinkedActiveFailures      int `json:"linkedActiveFailures"`
	ActiveMassiveIncidents    int `json:"activeMassiveIncidents"`
	ActiveDegradations        int `json:"activeDegradations"`
	UndatedRecords            int `json:"undatedRecords"`
}

func BuildActivitySummary(records []models.IncidentRecord) *ActivitySummary {
	out := &ActivitySummary{TotalRecords: len(records)}
	for i := range records {
		rec := &records[i]
		if !rec.HasStartTime() {
			out.UndatedRecords++
		}
		if !rec.IsActive() {
			continue
		}
		out.ActiveIncidents++
		switch rec.EventType {
		case models.EventTypeStandardFailure:
			if rec.CountsAsIndependentActive() {
				out.IndependentActiveFailures++
			} else {
				out.LinkedActiveFailures++
			}
		case models.EventTypeMassiveIncident:
			out.ActiveMassiveIncidents++
		case models.EventTypeDegradation:
			out.ActiveDegradations++
		}
	}
	return out
}
