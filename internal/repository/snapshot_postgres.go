package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createSnapshotsTable = `
	CREATE TABLE IF NOT EXISTS cart_snapshots (
		key        TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// PostgresSnapshotRepository stores cart snapshots in the cart_snapshots table.
type PostgresSnapshotRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPool opens a pgx pool for dsn and verifies connectivity.
func NewPostgresPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

// NewPostgresSnapshotRepository creates the repository and ensures its table exists.
func NewPostgresSnapshotRepository(ctx context.Context, pool *pgxpool.Pool) (*PostgresSnapshotRepository, error) {
	if _, err := pool.Exec(ctx, createSnapshotsTable); err != nil {
		return nil, fmt.Errorf("create cart_snapshots table: %w", err)
	}
	return &PostgresSnapshotRepository{pool: pool}, nil
}

// Get returns the payload stored under key, or nil when absent.
func (r *PostgresSnapshotRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var payload string
	err := r.pool.QueryRow(ctx, `SELECT payload FROM cart_snapshots WHERE key = $1`, key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(payload), nil
}

// Put upserts the payload under key.
func (r *PostgresSnapshotRepository) Put(ctx context.Context, key string, payload []byte) error {
	query := `
		INSERT INTO cart_snapshots (key, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query, key, string(payload))
	return err
}

// Delete removes the row for key.
func (r *PostgresSnapshotRepository) Delete(ctx context.Context, key string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_snapshots WHERE key = $1`, key)
	return err
}

// Ping verifies the pool can reach the server.
func (r *PostgresSnapshotRepository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return r.pool.Ping(ctx)
}

// PurgeOlderThan deletes snapshots not written since cutoff and returns
// how many were removed.
func (r *PostgresSnapshotRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cart_snapshots WHERE updated_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
