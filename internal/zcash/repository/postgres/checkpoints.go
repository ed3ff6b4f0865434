package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Checkpoint returns the saved cursor for a named job. ok is false when the
// job has no checkpoint.
func (r *Repository) Checkpoint(ctx context.Context, job string) (cursor string, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("get_checkpoint", err, start)
	}()

	err = r.db.QueryRowContext(ctx, `SELECT cursor FROM backfill_checkpoints WHERE job = $1`, job).Scan(&cursor)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get checkpoint %s: %w", job, err)
	}
	return cursor, true, nil
}

// SaveCheckpoint stores the cursor a job should resume from.
func (r *Repository) SaveCheckpoint(ctx context.Context, job, cursor string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("save_checkpoint", err, start)
	}()

	const query = `
INSERT INTO backfill_checkpoints (job, cursor, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (job) DO UPDATE SET cursor = EXCLUDED.cursor, updated_at = now()`

	if _, err = r.db.ExecContext(ctx, query, job, cursor); err != nil {
		return fmt.Errorf("save checkpoint %s: %w", job, err)
	}
	return nil
}

// ClearCheckpoint removes a finished job's cursor so the next run starts
// from the beginning.
func (r *Repository) ClearCheckpoint(ctx context.Context, job string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("clear_checkpoint", err, start)
	}()

	if _, err = r.db.ExecContext(ctx, `DELETE FROM backfill_checkpoints WHERE job = $1`, job); err != nil {
		return fmt.Errorf("clear checkpoint %s: %w", job, err)
	}
	return nil
}
