package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Kenbak/cipherscan-backend/internal/zcash/model"
)

// UpsertPrivacyStats replaces the single latest privacy snapshot row.
func (r *Repository) UpsertPrivacyStats(ctx context.Context, stats model.PrivacyStats) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_privacy_stats", err, start)
	}()

	const query = `
INSERT INTO privacy_stats (
	id, sprout_pool_zat, sapling_pool_zat, orchard_pool_zat, chain_supply_zat,
	total_tx, coinbase_tx, transparent_tx, shielded_tx, fully_shielded_tx, mixed_tx,
	shielded_pct, privacy_score, updated_at
)
VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (id) DO UPDATE SET
	sprout_pool_zat = EXCLUDED.sprout_pool_zat,
	sapling_pool_zat = EXCLUDED.sapling_pool_zat,
	orchard_pool_zat = EXCLUDED.orchard_pool_zat,
	chain_supply_zat = EXCLUDED.chain_supply_zat,
	total_tx = EXCLUDED.total_tx,
	coinbase_tx = EXCLUDED.coinbase_tx,
	transparent_tx = EXCLUDED.transparent_tx,
	shielded_tx = EXCLUDED.shielded_tx,
	fully_shielded_tx = EXCLUDED.fully_shielded_tx,
	mixed_tx = EXCLUDED.mixed_tx,
	shielded_pct = EXCLUDED.shielded_pct,
	privacy_score = EXCLUDED.privacy_score,
	updated_at = EXCLUDED.updated_at`

	_, err = r.db.ExecContext(ctx, query,
		stats.SproutPoolZat, stats.SaplingPoolZat, stats.OrchardPoolZat, stats.ChainSupplyZat,
		stats.TxCounts.Total, stats.TxCounts.Coinbase, stats.TxCounts.Transparent,
		stats.TxCounts.Shielded, stats.TxCounts.FullyShielded, stats.TxCounts.Mixed,
		stats.ShieldedPct, stats.PrivacyScore, stats.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert privacy stats: %w", err)
	}
	return nil
}

// PrivacyStats returns the latest privacy snapshot.
func (r *Repository) PrivacyStats(ctx context.Context) (model.PrivacyStats, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_privacy_stats", err, start)
	}()

	const query = `
SELECT sprout_pool_zat, sapling_pool_zat, orchard_pool_zat, chain_supply_zat,
	total_tx, coinbase_tx, transparent_tx, shielded_tx, fully_shielded_tx, mixed_tx,
	shielded_pct, privacy_score, updated_at
FROM privacy_stats
WHERE id = 1`

	var s model.PrivacyStats
	err = r.db.QueryRowContext(ctx, query).Scan(
		&s.SproutPoolZat, &s.SaplingPoolZat, &s.OrchardPoolZat, &s.ChainSupplyZat,
		&s.TxCounts.Total, &s.TxCounts.Coinbase, &s.TxCounts.Transparent,
		&s.TxCounts.Shielded, &s.TxCounts.FullyShielded, &s.TxCounts.Mixed,
		&s.ShieldedPct, &s.PrivacyScore, &s.UpdatedAt,
	)
	if err != nil {
		return model.PrivacyStats{}, fmt.Errorf("get privacy stats: %w", err)
	}
	return s, nil
}

// UpsertTrendDay writes one day of the privacy trend series, replacing any
// earlier computation for the same day.
func (r *Repository) UpsertTrendDay(ctx context.Context, day model.TrendDay) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_trend_day", err, start)
	}()

	const query = `
INSERT INTO privacy_trends (day, shielded_count, transparent_count, shielded_pct, pool_zat, privacy_score)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (day) DO UPDATE SET
	shielded_count = EXCLUDED.shielded_count,
	transparent_count = EXCLUDED.transparent_count,
	shielded_pct = EXCLUDED.shielded_pct,
	pool_zat = EXCLUDED.pool_zat,
	privacy_score = EXCLUDED.privacy_score`

	_, err = r.db.ExecContext(ctx, query,
		day.Day, day.ShieldedCount, day.TransparentCount, day.ShieldedPct, day.PoolZat, day.PrivacyScore,
	)
	if err != nil {
		return fmt.Errorf("upsert trend day %s: %w", day.Day.Format("2006-01-02"), err)
	}
	return nil
}

// TrendDays returns the most recent trend days, newest first.
func (r *Repository) TrendDays(ctx context.Context, limit uint64) ([]model.TrendDay, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_trend_days", err, start)
	}()

	const query = `
SELECT day, shielded_count, transparent_count, shielded_pct, pool_zat, privacy_score
FROM privacy_trends
ORDER BY day DESC
LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("select trend days: %w", err)
	}
	defer rows.Close()

	var days []model.TrendDay
	for rows.Next() {
		var d model.TrendDay
		if err = rows.Scan(&d.Day, &d.ShieldedCount, &d.TransparentCount, &d.ShieldedPct, &d.PoolZat, &d.PrivacyScore); err != nil {
			return nil, fmt.Errorf("scan trend day: %w", err)
		}
		days = append(days, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trend days: %w", err)
	}
	return days, nil
}

// TxTypeCountsForHeights aggregates classification tallies over a closed
// block height window.
func (r *Repository) TxTypeCountsForHeights(ctx context.Context, fromHeight, toHeight uint64) (model.TxTypeCounts, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("tx_type_counts_for_heights", err, start)
	}()

	const query = `
SELECT
	count(*),
	count(*) FILTER (WHERE tx_index = 0),
	count(*) FILTER (WHERE NOT shielded AND tx_index > 0),
	count(*) FILTER (WHERE shielded),
	count(*) FILTER (WHERE shielded AND input_count = 0 AND output_count = 0),
	count(*) FILTER (WHERE shielded AND (input_count > 0 OR output_count > 0))
FROM (
	SELECT tx_index, input_count, output_count,
		(shielded_spend_count + shielded_output_count + orchard_action_count) > 0 AS shielded
	FROM transactions
	WHERE block_height BETWEEN $1 AND $2
) t`

	var counts model.TxTypeCounts
	err = r.db.QueryRowContext(ctx, query, fromHeight, toHeight).Scan(
		&counts.Total, &counts.Coinbase, &counts.Transparent,
		&counts.Shielded, &counts.FullyShielded, &counts.Mixed,
	)
	if err != nil {
		return model.TxTypeCounts{}, fmt.Errorf("aggregate tx type counts for heights %d..%d: %w", fromHeight, toHeight, err)
	}
	return counts, nil
}

// TxTypeCountsForDay aggregates classification tallies for one UTC calendar
// day of block time.
func (r *Repository) TxTypeCountsForDay(ctx context.Context, day time.Time) (model.TxTypeCounts, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("tx_type_counts_for_day", err, start)
	}()

	dayStart := day.UTC().Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)

	const query = `
SELECT
	count(*),
	count(*) FILTER (WHERE tx_index = 0),
	count(*) FILTER (WHERE NOT shielded AND tx_index > 0),
	count(*) FILTER (WHERE shielded),
	count(*) FILTER (WHERE shielded AND input_count = 0 AND output_count = 0),
	count(*) FILTER (WHERE shielded AND (input_count > 0 OR output_count > 0))
FROM (
	SELECT tx_index, input_count, output_count,
		(shielded_spend_count + shielded_output_count + orchard_action_count) > 0 AS shielded
	FROM transactions
	WHERE block_time >= $1 AND block_time < $2
) t`

	var counts model.TxTypeCounts
	err = r.db.QueryRowContext(ctx, query, dayStart, dayEnd).Scan(
		&counts.Total, &counts.Coinbase, &counts.Transparent,
		&counts.Shielded, &counts.FullyShielded, &counts.Mixed,
	)
	if err != nil {
		return model.TxTypeCounts{}, fmt.Errorf("aggregate tx type counts for %s: %w", dayStart.Format("2006-01-02"), err)
	}
	return counts, nil
}

// MissingTrendDays lists the UTC days that have indexed transactions but no
// trend row yet, oldest first.
func (r *Repository) MissingTrendDays(ctx context.Context) ([]time.Time, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("missing_trend_days", err, start)
	}()

	const query = `
SELECT d.day
FROM (SELECT DISTINCT date_trunc('day', block_time AT TIME ZONE 'UTC') AS day FROM transactions) d
LEFT JOIN privacy_trends t ON t.day = d.day
WHERE t.day IS NULL
ORDER BY d.day`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select missing trend days: %w", err)
	}
	defer rows.Close()

	var days []time.Time
	for rows.Next() {
		var d time.Time
		if err = rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan missing trend day: %w", err)
		}
		days = append(days, d.UTC())
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate missing trend days: %w", err)
	}
	return days, nil
}
