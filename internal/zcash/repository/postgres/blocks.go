package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Kenbak/cipherscan-backend/internal/zcash/model"
)

// UpsertBlock stores a block row, updating the mutable header fields in
// place when the height was already indexed (next-hash pointer and tx count
// change on reorg).
func (r *Repository) UpsertBlock(ctx context.Context, block model.Block) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_block", err, start)
	}()

	const query = `
INSERT INTO blocks (height, hash, prev_hash, next_hash, time, size, difficulty, tx_count)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (height) DO UPDATE SET
	hash = EXCLUDED.hash,
	prev_hash = EXCLUDED.prev_hash,
	next_hash = EXCLUDED.next_hash,
	time = EXCLUDED.time,
	size = EXCLUDED.size,
	difficulty = EXCLUDED.difficulty,
	tx_count = EXCLUDED.tx_count`

	_, err = r.db.ExecContext(ctx, query,
		block.Height,
		block.Hash,
		nullString(block.PrevHash),
		nullString(block.NextHash),
		block.Timestamp,
		block.Size,
		block.Difficulty,
		block.TxCount,
	)
	if err != nil {
		return fmt.Errorf("upsert block %d: %w", block.Height, err)
	}
	return nil
}

// MaxBlockHeight returns the highest indexed height. The second return is
// false when no block has been indexed yet.
func (r *Repository) MaxBlockHeight(ctx context.Context) (uint64, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_block_height", err, start)
	}()

	const query = `SELECT max(height) FROM blocks`

	var height sql.NullInt64
	if err = r.db.QueryRowContext(ctx, query).Scan(&height); err != nil {
		return 0, false, fmt.Errorf("query max block height: %w", err)
	}
	if !height.Valid {
		return 0, false, nil
	}
	return uint64(height.Int64), true, nil
}

// MaxContiguousBlockHeight returns the highest height H such that every
// height from the lowest indexed one up to H is present. Concurrent catch-up
// batches can commit heights past a failed one, so the contiguous height is
// the only safe resume point. The second return is false when no block has
// been indexed yet.
func (r *Repository) MaxContiguousBlockHeight(ctx context.Context) (uint64, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_contiguous_block_height", err, start)
	}()

	const query = `
SELECT height
FROM (
	SELECT height,
		row_number() OVER (ORDER BY height) - 1 AS rn,
		min(height) OVER () AS base
	FROM blocks
) t
WHERE height = base + rn
ORDER BY height DESC
LIMIT 1`

	var height uint64
	err = r.db.QueryRowContext(ctx, query).Scan(&height)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query max contiguous block height: %w", err)
	}
	return height, true, nil
}

// Block returns one block row by height.
func (r *Repository) Block(ctx context.Context, height uint64) (model.Block, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_block", err, start)
	}()

	const query = `
SELECT height, hash, coalesce(prev_hash, ''), coalesce(next_hash, ''), time, size, difficulty, tx_count
FROM blocks
WHERE height = $1`

	var b model.Block
	err = r.db.QueryRowContext(ctx, query, height).Scan(
		&b.Height, &b.Hash, &b.PrevHash, &b.NextHash, &b.Timestamp, &b.Size, &b.Difficulty, &b.TxCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Block{}, fmt.Errorf("block %d not indexed", height)
	}
	if err != nil {
		return model.Block{}, fmt.Errorf("get block %d: %w", height, err)
	}
	return b, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
