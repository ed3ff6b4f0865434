package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Kenbak/cipherscan-backend/internal/zcash/model"
	"github.com/Kenbak/cipherscan-backend/pkg/safe"
	"github.com/Kenbak/cipherscan-backend/pkg/workerpool"
)

type blockIndexer struct {
	node        NodeSource
	seeder      TxSeeder
	txIndexer   TxIndexer
	store       Store
	metrics     Metrics
	logger      *zap.Logger
	workerCount int
}

type blockTx struct {
	txid    string
	index   uint32
	height  uint64
	blkTime time.Time
}

// IndexHeight resolves height to hash to full block payload, upserts the
// block row, and indexes the block's transactions with bounded concurrency.
// A transaction that cannot be fetched or parsed is logged and skipped; it
// does not abort the block.
func (b *blockIndexer) IndexHeight(ctx context.Context, height uint64, mode string) (err error) {
	started := time.Now()
	defer func() {
		b.metrics.ObserveHeight(mode, err, started)
	}()

	hash, err := b.node.BlockHash(ctx, height)
	if err != nil {
		return fmt.Errorf("resolve hash for height %d: %w", height, err)
	}
	raw, err := b.node.Block(ctx, hash)
	if err != nil {
		return fmt.Errorf("fetch block %s: %w", hash, err)
	}

	size, err := safe.Uint32(raw.Size)
	if err != nil {
		return fmt.Errorf("block %d size overflow: %w", height, err)
	}
	blockTime := time.Unix(raw.Time, 0).UTC()

	err = b.store.UpsertBlock(ctx, model.Block{
		Height:     raw.Height,
		Hash:       raw.Hash,
		PrevHash:   raw.PrevBlockHash,
		NextHash:   raw.NextBlockHash,
		Timestamp:  blockTime,
		Size:       size,
		Difficulty: raw.Difficulty,
		TxCount:    uint32(len(raw.TxIDs)),
	})
	if err != nil {
		return fmt.Errorf("upsert block %d: %w", height, err)
	}

	txs := make([]blockTx, 0, len(raw.TxIDs))
	for i, txid := range raw.TxIDs {
		txs = append(txs, blockTx{
			txid:    txid,
			index:   uint32(i),
			height:  raw.Height,
			blkTime: blockTime,
		})
	}
	// The pool bounds in-flight transaction fetches per block.
	if err = workerpool.Process(ctx, b.workerCount, txs, b.indexTx); err != nil {
		return fmt.Errorf("index block %d transactions: %w", height, err)
	}
	return nil
}

// indexTx fetches, normalizes, and stores one transaction. Failures other
// than context cancellation are swallowed after logging so the remaining
// transactions in the block still index; the idempotent upserts make a later
// re-index of the height safe.
func (b *blockIndexer) indexTx(ctx context.Context, tx blockTx) error {
	raw, err := b.node.RawTransactionVerbose(ctx, tx.txid)
	if err != nil {
		return b.skipTx(ctx, tx, "fetch transaction failed", err)
	}
	b.seeder.Seed(raw)

	set, err := b.txIndexer.IndexTransaction(ctx, raw, tx.height, tx.blkTime, tx.index)
	if err != nil {
		return b.skipTx(ctx, tx, "index transaction failed", err)
	}
	if _, err = b.store.ApplyTransaction(ctx, set); err != nil {
		return b.skipTx(ctx, tx, "store transaction failed", err)
	}
	return nil
}

func (b *blockIndexer) skipTx(ctx context.Context, tx blockTx, msg string, err error) error {
	if errors.Is(err, context.Canceled) || ctx.Err() != nil {
		return err
	}
	b.logger.Warn(msg,
		zap.String("txid", tx.txid),
		zap.Uint64("height", tx.height),
		zap.Error(err),
	)
	return nil
}
