package db

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/h2grid/h2grid-api/internal/types/business"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	payload []byte
	err     error
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.payload
	return nil
}

type execCall struct {
	sql  string
	args []interface{}
}

type fakeDB struct {
	rows    map[string][]byte
	execs   []execCall
	execErr error
	rowErr  error
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, execCall{sql: sql, args: args})
	if f.execErr != nil {
		return pgconn.CommandTag{}, f.execErr
	}
	if len(args) == 2 {
		f.rows[args[0].(uuid.UUID).String()] = args[1].([]byte)
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeDB) QueryRow(_ context.Context, _ string, args ...interface{}) pgx.Row {
	if f.rowErr != nil {
		return fakeRow{err: f.rowErr}
	}
	payload, ok := f.rows[args[0].(uuid.UUID).String()]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{payload: payload}
}

func sampleSnapshot() *business.DashboardData {
	return &business.DashboardData{LandOptimizer: &business.OptimizerResult{
		SuggestedLocations: []business.SuggestedLocation{{
			CostBreakdown:    map[string]string{"electrolyzer_cost": "₹12,000"},
			BaseCostEstimate: "₹150 Million",
		}},
	}}
}

func TestSnapshotStores(t *testing.T) {
	stores := map[string]func() SnapshotStore{
		"memory":   func() SnapshotStore { return NewMemoryStore() },
		"postgres": func() SnapshotStore { return NewPostgresStore(&fakeDB{rows: map[string][]byte{}}) },
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := newStore()
			projectID := uuid.New()

			_, err := store.GetSnapshot(ctx, projectID)
			assert.ErrorIs(t, err, ErrSnapshotNotFound)

			require.NoError(t, store.PutSnapshot(ctx, projectID, sampleSnapshot()))
			got, err := store.GetSnapshot(ctx, projectID)
			require.NoError(t, err)
			assert.Equal(t, sampleSnapshot(), got)

			// readers get independent copies
			got.LandOptimizer.SuggestedLocations[0].CostBreakdown["land_cost"] = "₹1"
			again, err := store.GetSnapshot(ctx, projectID)
			require.NoError(t, err)
			assert.NotContains(t, again.LandOptimizer.SuggestedLocations[0].CostBreakdown, "land_cost")

			require.NoError(t, store.PutSnapshot(ctx, projectID, nil))
			empty, err := store.GetSnapshot(ctx, projectID)
			require.NoError(t, err)
			assert.Nil(t, empty.PrimaryLocation())
		})
	}
}

func TestPostgresStoreQueries(t *testing.T) {
	ctx := context.Background()
	fake := &fakeDB{rows: map[string][]byte{}}
	store := NewPostgresStore(fake)

	require.NoError(t, store.EnsureSchema(ctx))
	require.NoError(t, store.PutSnapshot(ctx, uuid.New(), sampleSnapshot()))

	require.Len(t, fake.execs, 2)
	assert.True(t, strings.Contains(fake.execs[0].sql, "CREATE TABLE IF NOT EXISTS dashboard_snapshots"))
	assert.True(t, strings.Contains(fake.execs[1].sql, "ON CONFLICT (project_id) DO UPDATE"))
	assert.True(t, json.Valid(fake.execs[1].args[1].([]byte)))
}

func TestPostgresStoreErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection reset")

	store := NewPostgresStore(&fakeDB{rows: map[string][]byte{}, execErr: boom, rowErr: boom})

	err := store.EnsureSchema(ctx)
	assert.ErrorIs(t, err, boom)

	err = store.PutSnapshot(ctx, uuid.New(), sampleSnapshot())
	assert.ErrorIs(t, err, boom)

	_, err = store.GetSnapshot(ctx, uuid.New())
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrSnapshotNotFound)

	id := uuid.New()
	corrupt := NewPostgresStore(&fakeDB{rows: map[string][]byte{id.String(): []byte("{not json")}})
	_, err = corrupt.GetSnapshot(ctx, id)
	assert.Error(t, err)
}
