package streams

import (
	"context"

	"github.com/cespare/xxhash/v2"
)

type PartitionedQueue[T any] struct {
	partitions []chan T
}

const (
	defaultNumPartitions = 2
	defaultBuffer        = 16
)

// NewPartitionedQueue creates numPartitions lanes of the given buffer size.
// Non-positive arguments fall back to the defaults.
func NewPartitionedQueue[T any](numPartitions, buffer int) *PartitionedQueue[T] {
	if numPartitions <= 0 {
		numPartitions = defaultNumPartitions
	}
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	channels := make([]chan T, numPartitions)
	for i := range channels {
		channels[i] = make(chan T, buffer)
	}
	return &PartitionedQueue[T]{partitions: channels}
}

func (queue *PartitionedQueue[T]) PartitionCount() int { return len(queue.partitions) }

// Publish blocks until the partition accepts msg or ctx is done.
func (queue *PartitionedQueue[T]) Publish(ctx context.Context, partitionKey string, msg T) error {
	ch := queue.partitions[partitionIndex(partitionKey, len(queue.partitions))]
	select {
	case ch <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryPublish never blocks; it reports false when the partition is full.
func (queue *PartitionedQueue[T]) TryPublish(partitionKey string, msg T) bool {
	ch := queue.partitions[partitionIndex(partitionKey, len(queue.partitions))]
	select {
	case ch <- msg:
		return true
	default:
		return false
	}
}

// Pending is the number of messages waiting across all partitions.
func (queue *PartitionedQueue[T]) Pending() int {
	total := 0
	for _, ch := range queue.partitions {
		total += len(ch)
	}
	return total
}

func (queue *PartitionedQueue[T]) Close() {
	for _, ch := range queue.partitions {
		close(ch)
	}
}

func partitionIndex(key string, n int) int {
	return int(xxhash.Sum64String(key) % uint64(n))
}
