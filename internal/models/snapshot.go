package models

import "time"

type SnapshotSource string

const (
	SnapshotSourceLive   SnapshotSource = "live"
	SnapshotSourceSample SnapshotSource = "sample"
)

// Snapshot is one immutable, fully normalized record set. A new fetch
// always produces a new Snapshot; nothing mutates an installed one.
type Snapshot struct {
	Sequence    uint64           `json:"sequence"`
	ID          string           `json:"id"`
	Records     []IncidentRecord `json:"-"`
	Inventory   []InventoryRow   `json:"-"`
	DeviceCount int              `json:"deviceCount"`
	Source      SnapshotSource   `json:"source"`
	FetchedAt   time.Time        `json:"fetchedAt"`
	Trigger     string           `json:"trigger"`
	FetchError  string           `json:"fetchError,omitempty"`
}

// Info is the passive status view of a snapshot.
func (s *Snapshot) Info() SnapshotInfo {
	return SnapshotInfo{
		Sequence:    s.Sequence,
		ID:          s.ID,
		Source:      s.Source,
		FetchedAt:   s.FetchedAt,
		Trigger:     s.Trigger,
		FetchError:  s.FetchError,
		RecordCount: len(s.Records),
		DeviceCount: s.DeviceCount,
	}
}

type SnapshotInfo struct {
	Sequence    uint64         `json:"sequence"`
	ID          string         `json:"id"`
	Source      SnapshotSource `json:"source"`
	FetchedAt   time.Time      `json:"fetchedAt"`
	Trigger     string         `json:"trigger"`
	FetchError  string         `json:"fetchError,omitempty"`
	RecordCount int            `json:"recordCount"`
	DeviceCount int            `json:"deviceCount"`
}
