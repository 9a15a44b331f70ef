package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// SaveRun inserts a completed run into the history table.
func (s *Store) SaveRun(ctx context.Context, r *RunRecord) error {
	membershipJSON, err := json.Marshal(r.Membership)
	if err != nil {
		return fmt.Errorf("failed to marshal membership: %w", err)
	}

	query := `
		INSERT INTO run_history (id, graph_name, mode, resolution, iterations, passes, modularity, communities, duration_ms, membership, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = s.pool.Exec(ctx, query,
		r.ID,
		r.GraphName,
		r.Mode,
		r.Resolution,
		r.Iterations,
		r.Passes,
		r.Modularity,
		r.Communities,
		r.Duration.Milliseconds(),
		membershipJSON,
		r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

// GetRun retrieves a run by id.
func (s *Store) GetRun(ctx context.Context, id string) (*RunRecord, error) {
	query := `
		SELECT id, graph_name, mode, resolution, iterations, passes, modularity, communities, duration_ms, membership, created_at
		FROM run_history
		WHERE id = $1
	`

	r := &RunRecord{}
	var membershipJSON []byte
	var durationMs int64

	err := s.pool.QueryRow(ctx, query, id).Scan(
		&r.ID, &r.GraphName, &r.Mode, &r.Resolution, &r.Iterations, &r.Passes,
		&r.Modularity, &r.Communities, &durationMs, &membershipJSON, &r.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("run not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	r.Duration = msToDuration(durationMs)

	if len(membershipJSON) > 0 {
		if err := json.Unmarshal(membershipJSON, &r.Membership); err != nil {
			return nil, fmt.Errorf("failed to unmarshal membership: %w", err)
		}
	}
	return r, nil
}

// ListRunsForGraph returns every recorded run for a graph, most recent
// first.
func (s *Store) ListRunsForGraph(ctx context.Context, graphName string) ([]*RunRecord, error) {
	query := `
		SELECT id, graph_name, mode, resolution, iterations, passes, modularity, communities, duration_ms, membership, created_at
		FROM run_history
		WHERE graph_name = $1
		ORDER BY created_at DESC
	`

	rows, err := s.pool.Query(ctx, query, graphName)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var records []*RunRecord
	for rows.Next() {
		r := &RunRecord{}
		var membershipJSON []byte
		var durationMs int64

		if err := rows.Scan(
			&r.ID, &r.GraphName, &r.Mode, &r.Resolution, &r.Iterations, &r.Passes,
			&r.Modularity, &r.Communities, &durationMs, &membershipJSON, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.Duration = msToDuration(durationMs)
		if len(membershipJSON) > 0 {
			if err := json.Unmarshal(membershipJSON, &r.Membership); err != nil {
				return nil, fmt.Errorf("failed to unmarshal membership: %w", err)
			}
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}
	return records, nil
}
