package models

import "time"

type EventType string

const (
	EventTypeStandardFailure EventType = "standard_failure"
	EventTypeDegradation     EventType = "degradation"
	EventTypeMassiveIncident EventType = "massive_incident"
)

func (e EventType) IsValid() bool {
	switch e {
	case EventTypeStandardFailure, EventTypeDegradation, EventTypeMassiveIncident:
		return true
	}
	return false
}

type SiteImpact string

const (
	SiteImpactTotal       SiteImpact = "TOTAL"
	SiteImpactPartial     SiteImpact = "PARCIAL"
	SiteImpactDegradation SiteImpact = "DEGRADACIÓN"
	SiteImpactMassive     SiteImpact = "MASIVO"
)

// LifecycleStage is an open set; unknown stages are kept verbatim.
type LifecycleStage string

const (
	StageActive         LifecycleStage = "Activa"
	StageInProgress     LifecycleStage = "En gestión"
	StageObservation    LifecycleStage = "En observación"
	StageIntermittent   LifecycleStage = "Intermitencia"
	StageResolved       LifecycleStage = "Resuelta"
	StageFalsePositive  LifecycleStage = "Falso Positivo"
	StagePendingClosure LifecycleStage = "Pendiente por cierre"
)

func (s LifecycleStage) IsActive() bool {
	switch s {
	case StageActive, StageInProgress, StageObservation, StageIntermittent, StagePendingClosure:
		return true
	}
	return false
}

type FailureDetail struct {
	Wan1MassiveIncidentID string `json:"wan1MassiveIncidentId,omitempty"`
	Wan2MassiveIncidentID string `json:"wan2MassiveIncidentId,omitempty"`
	IsMassive             bool   `json:"isMassive"`
	Wan2ProviderName      string `json:"wan2ProviderName,omitempty"`
}

type DegradationDetail struct {
	Description string `json:"description,omitempty"`
}

type MassiveDetail struct {
	AffectedStores int `json:"affectedStores"`
}

// IncidentRecord is the unit of all aggregation. Exactly one of Failure,
// Degradation or Massive is set, matching EventType.
type IncidentRecord struct {
	ID              string         `json:"id"`
	NetworkID       string         `json:"networkId"`
	StoreName       string         `json:"storeName"`
	StoreCode       string         `json:"storeCode"`
	Country         string         `json:"country"`
	CrossStreet     string         `json:"crossStreet"`
	StartTime       time.Time      `json:"startTime"`
	RawStartTime    string         `json:"rawStartTime,omitempty"`
	DowntimeMinutes int            `json:"downtimeMinutes"`
	LifecycleStage  LifecycleStage `json:"lifecycleStage"`
	EventType       EventType      `json:"eventType"`
	SiteImpact      SiteImpact     `json:"siteImpact"`
	ProviderName    string         `json:"providerName"`

	Failure     *FailureDetail     `json:"failure,omitempty"`
	Degradation *DegradationDetail `json:"degradation,omitempty"`
	Massive     *MassiveDetail     `json:"massive,omitempty"`
}

// HasStartTime reports whether the onset parsed. Records without it are
// excluded from every time-bucketed view.
func (r *IncidentRecord) HasStartTime() bool {
	return !r.StartTime.IsZero()
}

func (r *IncidentRecord) IsActive() bool {
	return r.LifecycleStage.IsActive()
}

func (r *IncidentRecord) IsLinkedToMassive() bool {
	if r.Failure == nil {
		return false
	}
	return r.Failure.IsMassive || r.Failure.Wan1MassiveIncidentID != "" || r.Failure.Wan2MassiveIncidentID != ""
}

// CountsAsIndependentActive is true for an active record whose state is not
// carried by a parent massive incident.
func (r *IncidentRecord) CountsAsIndependentActive() bool {
	return r.IsActive() && !r.IsLinkedToMassive()
}

func (r *IncidentRecord) ProviderKey() ProviderKey {
	return NewProviderKey(r.ProviderName, r.Country)
}
