package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"netops-dashboard/internal/models"
	"netops-dashboard/internal/shared/filestorages"
)

var (
	ErrRawSnapshotNotFound = errors.New("raw snapshot not found")
)

const (
	latestRawSnapshotKey   = "snapshots/latest.json"
	fallbackRawSnapshotKey = "fallback/sample_snapshot.json"
)

// RawSnapshotStore keeps raw backend payloads in file storage: the last
// successful live fetch, and an optional operator-provided fallback dataset.
//
//go:generate mockgen -source=raw_snapshot_store.go -destination=./mocks/raw_snapshot_store_mock.go -package=mocks
type RawSnapshotStore interface {
	SaveLatest(ctx context.Context, raw *models.RawSnapshot) error
	LoadLatest(ctx context.Context) (*models.RawSnapshot, error)
	LoadFallback(ctx context.Context) (*models.RawSnapshot, error)
}

type rawSnapshotStore struct {
	fileStorage filestorages.FileStorage
}

func NewRawSnapshotStore(fileStorage filestorages.FileStorage) RawSnapshotStore {
	return &rawSnapshotStore{fileStorage: fileStorage}
}

func (s *rawSnapshotStore) SaveLatest(ctx context.Context, raw *models.RawSnapshot) error {
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to marshal raw snapshot: %w", err)
	}
	_, err = s.fileStorage.Put(ctx, latestRawSnapshotKey, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put raw snapshot: %w", err)
	}
	return nil
}

func (s *rawSnapshotStore) LoadLatest(ctx context.Context) (*models.RawSnapshot, error) {
	return s.load(ctx, latestRawSnapshotKey)
}

func (s *rawSnapshotStore) LoadFallback(ctx context.Context) (*models.RawSnapshot, error) {
	return s.load(ctx, fallbackRawSnapshotKey)
}

func (s *rawSnapshotStore) load(ctx context.Context, key string) (*models.RawSnapshot, error) {
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrRawSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get raw snapshot %s: %w", key, err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read raw snapshot %s: %w", key, err)
	}
	var raw models.RawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal raw snapshot %s: %w", key, err)
	}
	return &raw, nil
}
