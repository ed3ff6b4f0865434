package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Kenbak/cipherscan-backend/internal/zcash/model"
)

// ApplyTransaction writes one transaction's complete write set in a single
// SQL transaction: the transaction row, its outputs and inputs, the ledger
// credits and debits, and the shielded flow row if any.
//
// The transaction row insert is the idempotency guard: a duplicate txid is a
// no-op and the rest of the write set is skipped entirely, so re-indexing a
// height can never drift ledger values. Returns whether the row was new.
func (r *Repository) ApplyTransaction(ctx context.Context, set model.IndexedTransaction) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("apply_transaction", err, start)
	}()

	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = dbTx.Rollback()
	}()

	inserted, err := insertTransactionRow(ctx, dbTx, set.Tx)
	if err != nil {
		return false, err
	}
	if !inserted {
		return false, nil
	}

	for _, out := range set.Outputs {
		if err = upsertOutput(ctx, dbTx, out); err != nil {
			return false, err
		}
	}
	// Credits run before debits so a replay of the ledger observes outputs
	// funded before they are spent.
	for _, entry := range set.Credits {
		if err = creditAddress(ctx, dbTx, entry); err != nil {
			return false, err
		}
	}
	for _, in := range set.Inputs {
		if err = upsertInput(ctx, dbTx, in); err != nil {
			return false, err
		}
	}
	for _, entry := range set.Debits {
		if err = debitAddress(ctx, dbTx, entry); err != nil {
			return false, err
		}
	}
	if set.Flow != nil {
		if err = upsertFlow(ctx, dbTx, *set.Flow); err != nil {
			return false, err
		}
	}

	if err = dbTx.Commit(); err != nil {
		return false, fmt.Errorf("commit transaction %s: %w", set.Tx.TxID, err)
	}
	return true, nil
}

func insertTransactionRow(ctx context.Context, dbTx *sql.Tx, tx model.Transaction) (bool, error) {
	const query = `
INSERT INTO transactions (
	txid, block_height, block_time, tx_index, size,
	input_count, output_count,
	shielded_spend_count, shielded_output_count, orchard_action_count,
	sapling_value_zat, orchard_value_zat
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (txid) DO NOTHING`

	res, err := dbTx.ExecContext(ctx, query,
		tx.TxID, tx.BlockHeight, tx.BlockTime, tx.TxIndex, tx.Size,
		tx.InputCount, tx.OutputCount,
		tx.ShieldedSpendCount, tx.ShieldedOutputCount, tx.OrchardActionCount,
		tx.SaplingValueZat, tx.OrchardValueZat,
	)
	if err != nil {
		return false, fmt.Errorf("insert transaction %s: %w", tx.TxID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("transaction %s rows affected: %w", tx.TxID, err)
	}
	return affected > 0, nil
}

func upsertOutput(ctx context.Context, dbTx *sql.Tx, out model.TransactionOutput) error {
	const query = `
INSERT INTO transaction_outputs (txid, idx, value_zat, script_hex, script_type, address)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (txid, idx) DO NOTHING`

	_, err := dbTx.ExecContext(ctx, query,
		out.TxID, out.Index, out.ValueZat, out.ScriptHex, out.ScriptType, nullString(out.Address),
	)
	if err != nil {
		return fmt.Errorf("insert output %s:%d: %w", out.TxID, out.Index, err)
	}
	return nil
}

func upsertInput(ctx context.Context, dbTx *sql.Tx, in model.TransactionInput) error {
	const query = `
INSERT INTO transaction_inputs (txid, idx, prev_txid, prev_idx, coinbase, address, value_zat)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (txid, idx) DO NOTHING`

	var address, value any
	if in.Resolved {
		value = in.ValueZat
		if in.Address != "" {
			address = in.Address
		}
	}
	_, err := dbTx.ExecContext(ctx, query,
		in.TxID, in.Index, nullString(in.PrevTxID), in.PrevIndex, in.Coinbase, address, value,
	)
	if err != nil {
		return fmt.Errorf("insert input %s:%d: %w", in.TxID, in.Index, err)
	}
	return nil
}

// Transaction returns one transaction row by txid.
func (r *Repository) Transaction(ctx context.Context, txid string) (model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_transaction", err, start)
	}()

	const query = `
SELECT txid, block_height, block_time, tx_index, size,
	input_count, output_count,
	shielded_spend_count, shielded_output_count, orchard_action_count,
	sapling_value_zat, orchard_value_zat
FROM transactions
WHERE txid = $1`

	var tx model.Transaction
	err = r.db.QueryRowContext(ctx, query, txid).Scan(
		&tx.TxID, &tx.BlockHeight, &tx.BlockTime, &tx.TxIndex, &tx.Size,
		&tx.InputCount, &tx.OutputCount,
		&tx.ShieldedSpendCount, &tx.ShieldedOutputCount, &tx.OrchardActionCount,
		&tx.SaplingValueZat, &tx.OrchardValueZat,
	)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("get transaction %s: %w", txid, err)
	}
	return tx, nil
}

// TxTypeCounts aggregates the all-time transaction classification tallies:
// shielded means any shielded component, fully shielded additionally means
// zero transparent inputs and outputs, mixed is shielded with at least one
// transparent side, transparent is everything else except coinbase.
func (r *Repository) TxTypeCounts(ctx context.Context) (model.TxTypeCounts, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("tx_type_counts", err, start)
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
) t`

	var counts model.TxTypeCounts
	err = r.db.QueryRowContext(ctx, query).Scan(
		&counts.Total, &counts.Coinbase, &counts.Transparent,
		&counts.Shielded, &counts.FullyShielded, &counts.Mixed,
	)
	if err != nil {
		return model.TxTypeCounts{}, fmt.Errorf("aggregate tx type counts: %w", err)
	}
	return counts, nil
}
