package stores

import (
	"sync"
	"sync/atomic"

	"netops-dashboard/internal/models"
)

// SnapshotReader exposes the installed snapshot to the views.
//
//go:generate mockgen -source=snapshot_store.go -destination=./mocks/snapshot_store_mock.go -package=mocks
type SnapshotReader interface {
	// Current returns the installed snapshot, or nil before the first refresh.
	Current() *models.Snapshot
}

// SnapshotStore holds the single installed snapshot and guards it against
// out-of-order refresh completion.
//
// Example scenario:
//   - Refresh A takes sequence 4, refresh B takes sequence 5
//   - B finishes first and installs snapshot 5
//   - A finishes later; Install(4) is rejected as stale and snapshot 5 stays
type SnapshotStore interface {
	SnapshotReader
	// NextSequence reserves the sequence of a refresh about to start.
	NextSequence() uint64
	// Install replaces the current snapshot when snap.Sequence is newer and
	// reports whether it did.
	Install(snap *models.Snapshot) bool
}

type snapshotStore struct {
	current  atomic.Pointer[models.Snapshot]
	sequence atomic.Uint64

	mu sync.Mutex
}

func NewSnapshotStore() SnapshotStore {
	return &snapshotStore{}
}

func (s *snapshotStore) Current() *models.Snapshot {
	return s.current.Load()
}

func (s *snapshotStore) NextSequence() uint64 {
	return s.sequence.Add(1)
}

func (s *snapshotStore) Install(snap *models.Snapshot) bool {
	if snap == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if cur := s.current.Load(); cur != nil && snap.Sequence <= cur.Sequence {
		metricSnapshotStaleTotal.WithLabelValues(string(snap.Source)).Inc()
		return false
	}
	s.current.Store(snap)

	metricSnapshotInstalledTotal.WithLabelValues(string(snap.Source)).Inc()
	metricSnapshotRecords.WithLabelValues(string(snap.Source)).Set(float64(len(snap.Records)))
	return true
}
