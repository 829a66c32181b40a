package refreshers

import (
	"context"
	"time"

	"netops-dashboard/internal/events"
	"netops-dashboard/internal/models"
	"netops-dashboard/internal/normalizers"
	"netops-dashboard/internal/notifiers"
	"netops-dashboard/internal/shared/loggers"
	"netops-dashboard/internal/shared/metrics"
	"netops-dashboard/internal/shared/svcerrors"
	"netops-dashboard/internal/shared/ulid"
	"netops-dashboard/internal/sources"
	"netops-dashboard/internal/stores"
)

// RefreshService rebuilds the dashboard snapshot for one trigger.
//
// Flow:
//  1. reserve a sequence number before any I/O
//  2. fetch the live record sets; on any failure load the sample dataset
//  3. normalize into one record list
//  4. install, unless a refresh with a higher sequence already did
//  5. archive live payloads and notify push clients
//
//go:generate mockgen -source=refresh_service.go -destination=./mocks/refresh_service_mock.go -package=mocks
type RefreshService interface {
	Refresh(ctx context.Context, event *events.RefreshTriggeredEvent) (*models.SnapshotInfo, *svcerrors.ServiceError)
}

type refreshService struct {
	backend      sources.BackendClient
	samples      sources.SampleSource
	normalizer   normalizers.IncidentNormalizer
	snapshots    stores.SnapshotStore
	rawSnapshots stores.RawSnapshotStore
	notifier     notifiers.SnapshotNotifier
	clock        func() time.Time
}

func NewRefreshService(
	backend sources.BackendClient,
	samples sources.SampleSource,
	normalizer normalizers.IncidentNormalizer,
	snapshots stores.SnapshotStore,
	rawSnapshots stores.RawSnapshotStore,
	notifier notifiers.SnapshotNotifier,
	clock func() time.Time,
) RefreshService {
	if clock == nil {
		clock = time.Now
	}
	return &refreshService{
		backend:      backend,
		samples:      samples,
		normalizer:   normalizer,
		snapshots:    snapshots,
		rawSnapshots: rawSnapshots,
		notifier:     notifier,
		clock:        clock,
	}
}

func (s *refreshService) Refresh(ctx context.Context, event *events.RefreshTriggeredEvent) (*models.SnapshotInfo, *svcerrors.ServiceError) {
	started := time.Now()
	sequence := s.snapshots.NextSequence()
	logger := loggers.Ctx(ctx).With().
		Str(loggers.FieldTriggerID, event.TriggerID).
		Str(loggers.FieldTriggerReason, string(event.Reason)).
		Uint64(loggers.FieldSnapshotSequence, sequence).
		Logger()

	source := models.SnapshotSourceLive
	fetchError := ""
	raw, err := s.backend.FetchSnapshot(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, s.fail(event, source, errRefreshCanceled(ctx.Err()))
		}
		metricLiveFetchFailedTotal.WithLabelValues(string(event.Reason)).Inc()
		logger.Warn().Err(err).Msg("live fetch failed, falling back to sample dataset")

		fetchError = err.Error()
		source = models.SnapshotSourceSample
		raw, err = s.samples.Load(ctx, s.clock())
		if err != nil {
			if ctx.Err() != nil {
				return nil, s.fail(event, source, errRefreshCanceled(ctx.Err()))
			}
			return nil, s.fail(event, source, errSampleUnavailable(err))
		}
	}

	fetchedAt := s.clock().UTC()
	snap := &models.Snapshot{
		Sequence:    sequence,
		ID:          ulid.NewULIDAt(fetchedAt),
		Records:     s.normalizer.Normalize(raw),
		Inventory:   raw.Inventory,
		DeviceCount: len(raw.Inventory),
		Source:      source,
		FetchedAt:   fetchedAt,
		Trigger:     string(event.Reason),
		FetchError:  fetchError,
	}

	if !s.snapshots.Install(snap) {
		installed := uint64(0)
		if cur := s.snapshots.Current(); cur != nil {
			installed = cur.Sequence
		}
		logger.Info().Uint64("installed_sequence", installed).Msg("stale snapshot discarded")
		return nil, s.fail(event, source, errStaleSnapshot(sequence, installed))
	}

	info := snap.Info()
	if source == models.SnapshotSourceLive && s.rawSnapshots != nil {
		if err := s.rawSnapshots.SaveLatest(ctx, raw); err != nil {
			logger.Warn().Err(err).Msg("failed to archive live snapshot")
		}
	}
	if s.notifier != nil {
		s.notifier.NotifySnapshot(info)
	}

	metricRefreshDuration.WithLabelValues(string(source)).Observe(time.Since(started).Seconds())
	metricRefreshTotal.WithLabelValues(string(event.Reason), string(source), metrics.ValueNoError).Inc()
	logger.Info().
		Str(loggers.FieldSnapshotSource, string(source)).
		Int(loggers.FieldRecordCount, info.RecordCount).
		Int("device_count", info.DeviceCount).
		Dur(loggers.FieldDuration, time.Since(started)).
		Msg("snapshot installed")

	return &info, nil
}

func (s *refreshService) fail(event *events.RefreshTriggeredEvent, source models.SnapshotSource, svcErr *svcerrors.ServiceError) *svcerrors.ServiceError {
	metricRefreshTotal.WithLabelValues(string(event.Reason), string(source), svcErr.Code).Inc()
	return svcErr
}
