package streams

import (
	"context"
	"sync"
	"time"

	"netops-dashboard/internal/events"
	"netops-dashboard/internal/shared/loggers"
)

// RefreshPoller publishes a poll trigger on every tick.
//
//go:generate mockgen -source=refresh_poller.go -destination=./mocks/refresh_poller_mock.go -package=mocks
type RefreshPoller interface {
	Start(ctx context.Context)
	Stop()
}

type refreshPoller struct {
	producer RefreshTriggerProducer
	interval time.Duration

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewRefreshPoller(producer RefreshTriggerProducer, interval time.Duration, logger loggers.Logger) RefreshPoller {
	return &refreshPoller{
		producer: producer,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

func (poller *refreshPoller) Start(ctx context.Context) {
	poller.wg.Add(1)
	go func() {
		defer poller.wg.Done()

		ticker := time.NewTicker(poller.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-poller.stopCh:
				return
			case <-ticker.C:
				event, coalesced, err := poller.producer.Produce(ctx, events.RefreshReasonPoll, "")
				if err != nil {
					return
				}
				poller.logger.Debug().
					Str(loggers.FieldTriggerID, event.TriggerID).
					Bool("coalesced", coalesced).
					Msg("poll trigger published")
			}
		}
	}()
}

func (poller *refreshPoller) Stop() {
	poller.stopOnce.Do(func() { close(poller.stopCh) })
	poller.wg.Wait()
}
