package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/h2grid/h2grid-api/internal/types/business"
)

// ErrSnapshotNotFound is returned when a project has no stored snapshot
var ErrSnapshotNotFound = errors.New("dashboard snapshot not found")

// SnapshotStore persists the latest dashboard snapshot per project
type SnapshotStore interface {
	GetSnapshot(ctx context.Context, projectID uuid.UUID) (*business.DashboardData, error)
	PutSnapshot(ctx context.Context, projectID uuid.UUID, data *business.DashboardData) error
}
