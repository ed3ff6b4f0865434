package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/Kenbak/cipherscan-backend/internal/zcash/model"
)

// upsertFlow writes one boundary crossing. counterpart_addresses stays NULL
// until the counterpart pass fills it in; an empty array means the pass ran
// and found none.
func upsertFlow(ctx context.Context, dbTx *sql.Tx, flow model.ShieldedFlow) error {
	const query = `
INSERT INTO shielded_flows (txid, direction, amount_zat, pool, block_height, block_time, counterpart_addresses, counterpart_value_zat)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (txid) DO NOTHING`

	var counterparts any
	if flow.CounterpartAddresses != nil {
		counterparts = pq.Array(flow.CounterpartAddresses)
	}
	_, err := dbTx.ExecContext(ctx, query,
		flow.TxID, string(flow.Direction), flow.AmountZat, string(flow.Pool),
		flow.BlockHeight, flow.BlockTime, counterparts, flow.CounterpartValueZat,
	)
	if err != nil {
		return fmt.Errorf("upsert shielded flow %s: %w", flow.TxID, err)
	}
	return nil
}

// Flow returns one shielded flow by transaction id.
func (r *Repository) Flow(ctx context.Context, txid string) (model.ShieldedFlow, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_flow", err, start)
	}()

	const query = `
SELECT txid, direction, amount_zat, pool, block_height, block_time, counterpart_addresses, counterpart_value_zat
FROM shielded_flows
WHERE txid = $1`

	var f model.ShieldedFlow
	var counterparts pq.StringArray
	row := r.db.QueryRowContext(ctx, query, txid)
	err = row.Scan(
		&f.TxID, &f.Direction, &f.AmountZat, &f.Pool,
		&f.BlockHeight, &f.BlockTime, (*nullStringArray)(&counterparts), &f.CounterpartValueZat,
	)
	if err != nil {
		return model.ShieldedFlow{}, fmt.Errorf("get flow %s: %w", txid, err)
	}
	if counterparts != nil {
		f.CounterpartAddresses = []string(counterparts)
	}
	return f, nil
}

// nullStringArray scans a possibly NULL text[] column, keeping nil for NULL
// so callers can tell unprocessed from processed-with-none.
type nullStringArray pq.StringArray

func (a *nullStringArray) Scan(src any) error {
	if src == nil {
		*a = nil
		return nil
	}
	return (*pq.StringArray)(a).Scan(src)
}

// FlowsMissingCounterparts pages through flows whose counterpart addresses
// have never been extracted, ordered by txid for a stable resumable cursor.
func (r *Repository) FlowsMissingCounterparts(ctx context.Context, afterTxID string, limit uint64) ([]model.ShieldedFlow, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("flows_missing_counterparts", err, start)
	}()

	const query = `
SELECT txid, direction, amount_zat, pool, block_height, block_time, counterpart_value_zat
FROM shielded_flows
WHERE counterpart_addresses IS NULL AND txid > $1
ORDER BY txid
LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, afterTxID, limit)
	if err != nil {
		return nil, fmt.Errorf("select flows missing counterparts: %w", err)
	}
	defer rows.Close()

	var flows []model.ShieldedFlow
	for rows.Next() {
		var f model.ShieldedFlow
		if err = rows.Scan(&f.TxID, &f.Direction, &f.AmountZat, &f.Pool, &f.BlockHeight, &f.BlockTime, &f.CounterpartValueZat); err != nil {
			return nil, fmt.Errorf("scan flow row: %w", err)
		}
		flows = append(flows, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate flow rows: %w", err)
	}
	return flows, nil
}

// UpdateFlowCounterparts records the extracted transparent counterparts for
// one flow. A nil slice is stored as an empty array so the row is never
// revisited.
func (r *Repository) UpdateFlowCounterparts(ctx context.Context, txid string, addresses []string, valueZat int64) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("update_flow_counterparts", err, start)
	}()

	if addresses == nil {
		addresses = []string{}
	}
	const query = `
UPDATE shielded_flows
SET counterpart_addresses = $2, counterpart_value_zat = $3
WHERE txid = $1`

	if _, err = r.db.ExecContext(ctx, query, txid, pq.Array(addresses), valueZat); err != nil {
		return fmt.Errorf("update flow counterparts %s: %w", txid, err)
	}
	return nil
}

// CountFlowsMissingCounterparts reports how many flows still await the
// counterpart pass.
func (r *Repository) CountFlowsMissingCounterparts(ctx context.Context) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("count_flows_missing_counterparts", err, start)
	}()

	var count uint64
	err = r.db.QueryRowContext(ctx, `SELECT count(*) FROM shielded_flows WHERE counterpart_addresses IS NULL`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count flows missing counterparts: %w", err)
	}
	return count, nil
}
