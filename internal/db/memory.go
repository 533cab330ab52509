package db

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/h2grid/h2grid-api/internal/types/business"
)

// MemoryStore keeps encoded snapshots in process. Every read decodes a
// fresh copy so callers never share nested maps.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[uuid.UUID][]byte
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[uuid.UUID][]byte)}
}

func (s *MemoryStore) GetSnapshot(_ context.Context, projectID uuid.UUID) (*business.DashboardData, error) {
	s.mu.RLock()
	payload, ok := s.snapshots[projectID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSnapshotNotFound
	}

	var data business.DashboardData
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot for project %s: %w", projectID, err)
	}
	return &data, nil
}

func (s *MemoryStore) PutSnapshot(_ context.Context, projectID uuid.UUID, data *business.DashboardData) error {
	if data == nil {
		data = &business.DashboardData{}
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot for project %s: %w", projectID, err)
	}

	s.mu.Lock()
	s.snapshots[projectID] = payload
	s.mu.Unlock()
	return nil
}
