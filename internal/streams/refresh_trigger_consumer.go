package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"netops-dashboard/internal/events"
	"netops-dashboard/internal/refreshers"
	"netops-dashboard/internal/shared/loggers"
	"netops-dashboard/internal/shared/metrics"
	"netops-dashboard/internal/shared/svcerrors"
	"netops-dashboard/internal/shared/ulid"
)

//go:generate mockgen -source=refresh_trigger_consumer.go -destination=./mocks/refresh_trigger_consumer_mock.go -package=mocks
type RefreshTriggerConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type refreshTriggerConsumer struct {
	queue          *PartitionedQueue[events.RefreshTriggeredEvent]
	refreshService refreshers.RefreshService

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewRefreshTriggerConsumer(queue *PartitionedQueue[events.RefreshTriggeredEvent], refreshService refreshers.RefreshService, logger loggers.Logger) RefreshTriggerConsumer {
	return &refreshTriggerConsumer{
		queue:          queue,
		refreshService: refreshService,
		stopCh:         make(chan struct{}),
		logger:         logger,
	}
}

// Start spawns 1 worker goroutine per partition. Workers on different
// partitions may refresh concurrently; the snapshot store keeps only the
// newest result.
func (consumer *refreshTriggerConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop waits for workers to stop (best called during app shutdown).
func (consumer *refreshTriggerConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *refreshTriggerConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.RefreshTriggeredEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.handle(ctx, partitionIndex, event)
		}
	}
}

func (consumer *refreshTriggerConsumer) handle(ctx context.Context, partitionIndex int, event events.RefreshTriggeredEvent) {
	// Handle panic recovery to prevent worker goroutine from crashing
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Str(loggers.FieldTriggerID, event.TriggerID).
				Msg("consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricRefreshTriggerConsumedTotal.WithLabelValues(streamRefreshTrigger, svcErr.Code).Inc()
		}
	}()

	ctx = consumer.logger.With().
		Str(loggers.FieldPartitionId, fmt.Sprintf("%d", partitionIndex)).
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Logger().WithContext(ctx)

	_, svcError := consumer.refreshService.Refresh(ctx, &event)
	if svcError != nil {
		metricRefreshTriggerConsumedTotal.WithLabelValues(streamRefreshTrigger, svcError.Code).Inc()
		logEvent := loggers.Ctx(ctx).Warn()
		if svcError.IsInternalError() {
			logEvent = loggers.Ctx(ctx).Error()
		}
		logEvent.Err(svcError.Cause).
			Str(loggers.FieldErrorCode, svcError.Code).
			Str(loggers.FieldTriggerID, event.TriggerID).
			Msg("refresh failed")
		return
	}
	metricRefreshTriggerConsumedTotal.WithLabelValues(streamRefreshTrigger, metrics.ValueNoError).Inc()
}
