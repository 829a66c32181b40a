package incidents

import (
	"context"
	"errors"

	"netops-dashboard/internal/events"
	"netops-dashboard/internal/shared/loggers"
	"netops-dashboard/internal/shared/svcerrors"
	"netops-dashboard/internal/sources"
	"netops-dashboard/internal/streams"
)

type CloseResult struct {
	IncidentID string `json:"incidentId"`
	TriggerID  string `json:"triggerId,omitempty"`
	Coalesced  bool   `json:"coalesced"`
}

// MassiveIncidentService runs operator actions on massive incidents. The
// dashboard reflects an action only after the refresh it triggers completes.
//
//go:generate mockgen -source=massive_incident_service.go -destination=./mocks/massive_incident_service_mock.go -package=mocks
type MassiveIncidentService interface {
	Close(ctx context.Context, incidentID string) (*CloseResult, *svcerrors.ServiceError)
}

type massiveIncidentService struct {
	backend  sources.BackendClient
	producer streams.RefreshTriggerProducer
}

func NewMassiveIncidentService(backend sources.BackendClient, producer streams.RefreshTriggerProducer) MassiveIncidentService {
	return &massiveIncidentService{backend: backend, producer: producer}
}

func (s *massiveIncidentService) Close(ctx context.Context, incidentID string) (*CloseResult, *svcerrors.ServiceError) {
	if err := s.backend.CloseMassiveIncident(ctx, incidentID); err != nil {
		switch {
		case errors.Is(err, sources.ErrInvalidIncidentID):
			return nil, errInvalidIncidentID(err)
		case errors.Is(err, sources.ErrMassiveIncidentNotFound):
			return nil, errMassiveIncidentMissing(err)
		default:
			return nil, errBackendUnavailable(err)
		}
	}
	metricMassiveClosedTotal.WithLabelValues().Inc()

	result := &CloseResult{IncidentID: incidentID}
	event, coalesced, err := s.producer.Produce(ctx, events.RefreshReasonPostClose, "massive incident "+incidentID)
	if err != nil {
		// The close itself succeeded; the next poll picks it up.
		loggers.Ctx(ctx).Warn().Err(err).Str("incident_id", incidentID).Msg("failed to trigger refresh after close")
		return result, nil
	}
	result.TriggerID = event.TriggerID
	result.Coalesced = coalesced

	loggers.Ctx(ctx).Info().
		Str("incident_id", incidentID).
		Str(loggers.FieldTriggerID, event.TriggerID).
		Msg("massive incident closed")
	return result, nil
}
