package streams

import (
	"context"
	"testing"

	"netops-dashboard/internal/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshTriggerProducer_Produce(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[events.RefreshTriggeredEvent](2, 4)
	producer := NewRefreshTriggerProducer(queue)
	ctx := context.Background()

	first, coalesced, err := producer.Produce(ctx, events.RefreshReasonManual, "")
	require.NoError(t, err)
	assert.False(t, coalesced)
	assert.NotEmpty(t, first.TriggerID)
	assert.Equal(t, events.RefreshReasonManual, first.Reason)
	assert.False(t, first.RequestedAt.IsZero())
	assert.Equal(t, 1, queue.Pending())

	second, coalesced, err := producer.Produce(ctx, events.RefreshReasonRealtime, "UPDATE devices_inventory_jj")
	require.NoError(t, err)
	assert.True(t, coalesced)
	assert.Equal(t, "UPDATE devices_inventory_jj", second.Detail)
	assert.Equal(t, 1, queue.Pending())

	idx := partitionIndex(first.TriggerID, queue.PartitionCount())
	queued := <-queue.partitions[idx]
	assert.Equal(t, first.TriggerID, queued.TriggerID)

	_, coalesced, err = producer.Produce(ctx, events.RefreshReasonPoll, "")
	require.NoError(t, err)
	assert.False(t, coalesced)
}

func TestRefreshTriggerProducer_CanceledContext(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[events.RefreshTriggeredEvent](1, 1)
	producer := NewRefreshTriggerProducer(queue)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	event, _, err := producer.Produce(ctx, events.RefreshReasonPoll, "")
	assert.Nil(t, event)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, queue.Pending())
}
