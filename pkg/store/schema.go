package store

import "context"

// migrate creates the run_history table if it doesn't already exist.
func (s *Store) migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS run_history (
		id TEXT PRIMARY KEY,
		graph_name TEXT NOT NULL,
		mode TEXT NOT NULL,
		resolution DOUBLE PRECISION NOT NULL,
		iterations INTEGER NOT NULL,
		passes INTEGER NOT NULL,
		modularity DOUBLE PRECISION NOT NULL,
		communities INTEGER NOT NULL,
		duration_ms BIGINT NOT NULL,
		membership JSONB,
		created_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_run_history_graph_name ON run_history(graph_name);
	CREATE INDEX IF NOT EXISTS idx_run_history_created_at ON run_history(created_at);
	`

	_, err := s.pool.Exec(ctx, schema)
	return err
}
