// Package backfill retrofits counterpart addresses onto historical
// shielded flow rows.
package backfill

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Kenbak/cipherscan-backend/internal/zcash/model"
	"github.com/Kenbak/cipherscan-backend/internal/zcash/rpc"
)

// Job is the durable checkpoint key for this backfill.
const Job = "counterpart_backfill"

const defaultPageSize = 200

type (
	// TxSource resolves transaction payloads, cache-first.
	TxSource interface {
		Transaction(ctx context.Context, txid string) (*rpc.RawTransaction, error)
	}

	// Deriver rebuilds a transaction's write set, including its flow row
	// with counterpart addresses.
	Deriver interface {
		IndexTransaction(ctx context.Context, raw *rpc.RawTransaction, height uint64, blockTime time.Time, txIndex uint32) (model.IndexedTransaction, error)
	}

	// Store pages unprocessed flows and persists results and checkpoints.
	Store interface {
		FlowsMissingCounterparts(ctx context.Context, afterTxID string, limit uint64) ([]model.ShieldedFlow, error)
		UpdateFlowCounterparts(ctx context.Context, txid string, addresses []string, valueZat int64) error
		CountFlowsMissingCounterparts(ctx context.Context) (uint64, error)
		Checkpoint(ctx context.Context, job string) (string, bool, error)
		SaveCheckpoint(ctx context.Context, job, cursor string) error
		ClearCheckpoint(ctx context.Context, job string) error
	}

	// Metrics records per-page outcomes.
	Metrics interface {
		ObservePage(err error, rows int, started time.Time)
	}
)

// Runner drains the null-counterpart flow rows page by page, checkpointing
// after every page so an interrupted run resumes where it stopped. Every
// visited row is written, at minimum with an empty address array, so no row
// is ever revisited.
type Runner struct {
	source   TxSource
	deriver  Deriver
	store    Store
	metrics  Metrics
	logger   *zap.Logger
	pageSize uint64
}

// NewRunner constructs a Runner. pageSize <= 0 selects the default.
func NewRunner(source TxSource, deriver Deriver, store Store, metrics Metrics, pageSize int, logger *zap.Logger) (*Runner, error) {
	if source == nil {
		return nil, errors.New("transaction source is required")
	}
	if deriver == nil {
		return nil, errors.New("deriver is required")
	}
	if store == nil {
		return nil, errors.New("store is required")
	}
	if metrics == nil {
		return nil, errors.New("backfill metrics is required")
	}
	size := uint64(defaultPageSize)
	if pageSize > 0 {
		size = uint64(pageSize)
	}
	return &Runner{
		source:   source,
		deriver:  deriver,
		store:    store,
		metrics:  metrics,
		logger:   logger.Named("backfill"),
		pageSize: size,
	}, nil
}

// Run processes pages until no unprocessed flow remains, then clears the
// checkpoint. Returning without error means full completion.
func (r *Runner) Run(ctx context.Context) error {
	cursor, resumed, err := r.store.Checkpoint(ctx, Job)
	if err != nil {
		return fmt.Errorf("load checkpoint: %w", err)
	}
	if resumed {
		r.logger.Info("resuming from checkpoint", zap.String("cursor", cursor))
	}

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		done, next, err := r.processPage(ctx, cursor)
		if err != nil {
			return err
		}
		if done {
			break
		}
		cursor = next

		if err := r.store.SaveCheckpoint(ctx, Job, cursor); err != nil {
			return fmt.Errorf("save checkpoint: %w", err)
		}
	}

	if err := r.store.ClearCheckpoint(ctx, Job); err != nil {
		return fmt.Errorf("clear checkpoint: %w", err)
	}
	remaining, err := r.store.CountFlowsMissingCounterparts(ctx)
	if err != nil {
		return fmt.Errorf("count remaining flows: %w", err)
	}
	r.logger.Info("backfill complete", zap.Uint64("remaining", remaining))
	return nil
}

// processPage handles one page. done is true when the page was empty.
func (r *Runner) processPage(ctx context.Context, cursor string) (bool, string, error) {
	started := time.Now()

	flows, err := r.store.FlowsMissingCounterparts(ctx, cursor, r.pageSize)
	if err != nil {
		r.metrics.ObservePage(err, 0, started)
		return false, "", fmt.Errorf("select page after %q: %w", cursor, err)
	}
	if len(flows) == 0 {
		return true, cursor, nil
	}

	var rows int
	for _, flow := range flows {
		addresses, valueZat := r.deriveCounterparts(ctx, flow)
		if err := r.store.UpdateFlowCounterparts(ctx, flow.TxID, addresses, valueZat); err != nil {
			r.metrics.ObservePage(err, rows, started)
			return false, "", fmt.Errorf("update flow %s: %w", flow.TxID, err)
		}
		rows++
	}
	r.metrics.ObservePage(nil, rows, started)

	last := flows[len(flows)-1].TxID
	r.logger.Info("page processed", zap.Int("rows", rows), zap.String("cursor", last))
	return false, last, nil
}

// deriveCounterparts re-runs the normalization pipeline for the flow's
// transaction and lifts the counterparts off the rebuilt flow row. Any
// failure degrades to an empty list so the row is still marked processed.
func (r *Runner) deriveCounterparts(ctx context.Context, flow model.ShieldedFlow) ([]string, int64) {
	raw, err := r.source.Transaction(ctx, flow.TxID)
	if err != nil {
		r.logger.Warn("transaction fetch failed, marking flow processed",
			zap.String("txid", flow.TxID),
			zap.Error(err),
		)
		return []string{}, 0
	}

	set, err := r.deriver.IndexTransaction(ctx, raw, flow.BlockHeight, flow.BlockTime, 1)
	if err != nil {
		r.logger.Warn("flow derivation failed, marking flow processed",
			zap.String("txid", flow.TxID),
			zap.Error(err),
		)
		return []string{}, 0
	}
	if set.Flow == nil {
		return []string{}, 0
	}
	return set.Flow.CounterpartAddresses, set.Flow.CounterpartValueZat
}
