package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/h2grid/h2grid-api/internal/types/business"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createSnapshotsTable = `
CREATE TABLE IF NOT EXISTS dashboard_snapshots (
    project_id UUID PRIMARY KEY,
    payload JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

const getSnapshot = `SELECT payload FROM dashboard_snapshots WHERE project_id = $1`

const upsertSnapshot = `
INSERT INTO dashboard_snapshots (project_id, payload, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (project_id) DO UPDATE
SET payload = EXCLUDED.payload, updated_at = NOW()`

// DBTX is the subset of pgx shared by pools, connections and transactions
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// PostgresStore keeps snapshots as JSONB rows
type PostgresStore struct {
	db DBTX
}

// NewPostgresStore creates a store on top of a pool, connection or transaction
func NewPostgresStore(db DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

// Connect opens and pings a connection pool
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to reach database: %w", err)
	}
	return pool, nil
}

// EnsureSchema creates the snapshots table when it does not exist
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createSnapshotsTable); err != nil {
		return fmt.Errorf("failed to create dashboard_snapshots table: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetSnapshot(ctx context.Context, projectID uuid.UUID) (*business.DashboardData, error) {
	var payload []byte
	if err := s.db.QueryRow(ctx, getSnapshot, projectID).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to load snapshot for project %s: %w", projectID, err)
	}

	var data business.DashboardData
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot for project %s: %w", projectID, err)
	}
	return &data, nil
}

func (s *PostgresStore) PutSnapshot(ctx context.Context, projectID uuid.UUID, data *business.DashboardData) error {
	if data == nil {
		data = &business.DashboardData{}
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot for project %s: %w", projectID, err)
	}

	if _, err := s.db.Exec(ctx, upsertSnapshot, projectID, payload); err != nil {
		return fmt.Errorf("failed to store snapshot for project %s: %w", projectID, err)
	}
	return nil
}
