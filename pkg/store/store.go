// Package store persists a history of driver runs to PostgreSQL, so an
// operator can audit modularity trends and compare runs across
// configurations.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dd0wney/louvain-engine/pkg/louvain"
)

// RunRecord is one completed driver run, as stored in run_history.
type RunRecord struct {
	ID           string
	GraphName    string
	Mode         string // "static" or "incremental"
	Resolution   float64
	Iterations   int
	Passes       int
	Modularity   float64
	Communities  int
	Duration     time.Duration
	Membership   []int
	CreatedAt    time.Time
}

// Store handles run-history persistence using PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a new PostgreSQL-backed run-history store.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return s, nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the database connection pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func msToDuration(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// NewRunRecord builds a RunRecord from a completed driver run.
func NewRunRecord(id, graphName, mode string, opts louvain.Options, result louvain.Result, createdAt time.Time) *RunRecord {
	return &RunRecord{
		ID:          id,
		GraphName:   graphName,
		Mode:        mode,
		Resolution:  opts.Resolution,
		Iterations:  result.Iterations,
		Passes:      result.Passes,
		Modularity:  result.Modularity,
		Communities: result.CommunityCount(),
		Duration:    result.Time,
		Membership:  result.Membership,
		CreatedAt:   createdAt,
	}
}
