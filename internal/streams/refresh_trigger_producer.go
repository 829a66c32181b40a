package streams

import (
	"context"
	"time"

	"netops-dashboard/internal/events"
	"netops-dashboard/internal/shared/ulid"
)

// RefreshTriggerProducer turns refresh requests into RefreshTriggeredEvents
// on the partitioned queue.
//
// Coalescing:
//
// A trigger that is still queued has not started fetching yet, so the fetch
// it eventually makes already observes whatever caused a newer request. New
// requests arriving while any trigger is pending are therefore coalesced
// into it instead of queueing another full fetch.
//
// Example scenario:
//   - poll timer publishes T1; the workers are busy, T1 waits in the queue
//   - a realtime change and a manual refresh arrive before T1 starts
//   - both are coalesced; T1's fetch includes both changes
//
//go:generate mockgen -source=refresh_trigger_producer.go -destination=./mocks/refresh_trigger_producer_mock.go -package=mocks
type RefreshTriggerProducer interface {
	// Produce publishes a trigger and reports whether it was coalesced into
	// an already pending one.
	Produce(ctx context.Context, reason events.RefreshReason, detail string) (*events.RefreshTriggeredEvent, bool, error)
}

type refreshTriggerProducer struct {
	queue *PartitionedQueue[events.RefreshTriggeredEvent]
	clock func() time.Time
}

func NewRefreshTriggerProducer(queue *PartitionedQueue[events.RefreshTriggeredEvent]) RefreshTriggerProducer {
	return &refreshTriggerProducer{
		queue: queue,
		clock: time.Now,
	}
}

func (producer *refreshTriggerProducer) Produce(ctx context.Context, reason events.RefreshReason, detail string) (*events.RefreshTriggeredEvent, bool, error) {
	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	default:
	}

	requestedAt := producer.clock().UTC()
	event := events.RefreshTriggeredEvent{
		TriggerID:   ulid.NewULIDAt(requestedAt),
		Reason:      reason,
		RequestedAt: requestedAt,
		Detail:      detail,
	}

	// Spread triggers across partitions so a slow fetch never holds up the next one.
	if producer.queue.Pending() > 0 || !producer.queue.TryPublish(event.TriggerID, event) {
		metricRefreshTriggerCoalescedTotal.WithLabelValues(streamRefreshTrigger, string(reason)).Inc()
		return &event, true, nil
	}
	metricRefreshTriggerProducedTotal.WithLabelValues(streamRefreshTrigger, string(reason)).Inc()
	return &event, false, nil
}
