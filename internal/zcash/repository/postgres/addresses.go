package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Kenbak/cipherscan-backend/internal/zcash/model"
)

// creditAddress applies one output credit to the running ledger, creating
// the address row on first sight.
func creditAddress(ctx context.Context, dbTx *sql.Tx, entry model.LedgerEntry) error {
	const query = `
INSERT INTO addresses (address, balance_zat, total_received_zat, total_sent_zat, tx_count, first_seen, last_seen)
VALUES ($1, $2, $2, 0, 1, $3, $3)
ON CONFLICT (address) DO UPDATE SET
	balance_zat = addresses.balance_zat + EXCLUDED.balance_zat,
	total_received_zat = addresses.total_received_zat + EXCLUDED.total_received_zat,
	tx_count = addresses.tx_count + 1,
	first_seen = least(addresses.first_seen, EXCLUDED.first_seen),
	last_seen = greatest(addresses.last_seen, EXCLUDED.last_seen)`

	if _, err := dbTx.ExecContext(ctx, query, entry.Address, entry.AmountZat, entry.Timestamp); err != nil {
		return fmt.Errorf("credit address %s: %w", entry.Address, err)
	}
	return nil
}

// debitAddress applies one input debit. The address row normally exists from
// a prior credit; when historical backfill indexes a spend before its
// funding output the row is created with a transiently negative balance,
// which is not treated as corruption.
func debitAddress(ctx context.Context, dbTx *sql.Tx, entry model.LedgerEntry) error {
	const query = `
INSERT INTO addresses (address, balance_zat, total_received_zat, total_sent_zat, tx_count, first_seen, last_seen)
VALUES ($1, -$2, 0, $2, 1, $3, $3)
ON CONFLICT (address) DO UPDATE SET
	balance_zat = addresses.balance_zat - $2,
	total_sent_zat = addresses.total_sent_zat + $2,
	tx_count = addresses.tx_count + 1,
	first_seen = least(addresses.first_seen, $3),
	last_seen = greatest(addresses.last_seen, $3)`

	if _, err := dbTx.ExecContext(ctx, query, entry.Address, entry.AmountZat, entry.Timestamp); err != nil {
		return fmt.Errorf("debit address %s: %w", entry.Address, err)
	}
	return nil
}

// Address returns the ledger aggregate for one transparent address.
func (r *Repository) Address(ctx context.Context, address string) (model.Address, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_address", err, start)
	}()

	const query = `
SELECT address, balance_zat, total_received_zat, total_sent_zat, tx_count, first_seen, last_seen
FROM addresses
WHERE address = $1`

	var a model.Address
	err = r.db.QueryRowContext(ctx, query, address).Scan(
		&a.Address, &a.BalanceZat, &a.TotalReceivedZat, &a.TotalSentZat, &a.TxCount, &a.FirstSeen, &a.LastSeen,
	)
	if err != nil {
		return model.Address{}, fmt.Errorf("get address %s: %w", address, err)
	}
	return a, nil
}
