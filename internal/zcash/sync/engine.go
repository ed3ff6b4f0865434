// Package sync keeps the local index in step with the node's chain tip.
package sync

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Kenbak/cipherscan-backend/internal/clock"
	"github.com/Kenbak/cipherscan-backend/pkg/workerpool"
)

// Config tunes the sync engine. Zero values fall back to defaults.
type Config struct {
	// StartHeight is the first height to index on an empty store.
	StartHeight uint64
	// BatchSize bounds catch-up RPC concurrency.
	BatchSize int
	// TxWorkerCount bounds per-block transaction fetch concurrency.
	TxWorkerCount int
	// PollInterval is the live tip polling cadence.
	PollInterval time.Duration
	// RefreshEveryBlocks triggers a privacy refresh after this many heights.
	RefreshEveryBlocks int
	// RefreshInterval triggers a privacy refresh during quiet periods.
	RefreshInterval time.Duration
}

func (c Config) withDefaults() Config {
	if c.BatchSize <= 0 {
		c.BatchSize = defaultBatchSize
	}
	if c.TxWorkerCount <= 0 {
		c.TxWorkerCount = defaultTxWorkerCount
	}
	if c.PollInterval <= 0 {
		c.PollInterval = defaultPollInterval
	}
	if c.RefreshEveryBlocks <= 0 {
		c.RefreshEveryBlocks = defaultRefreshEveryBlocks
	}
	if c.RefreshInterval <= 0 {
		c.RefreshInterval = defaultRefreshInterval
	}
	return c
}

// Engine drives two states: catch-up while the local height trails the node
// tip, and live polling once they match. Catch-up indexes height batches
// concurrently; live indexes new heights sequentially, which keeps "latest"
// reads simple for consumers.
type Engine struct {
	cfg       Config
	node      NodeSource
	store     Store
	refresher Refresher
	indexer   HeightIndexer
	metrics   Metrics
	logger    *zap.Logger
	sleep     func(context.Context, time.Duration) error

	blocksSinceRefresh int
	lastRefresh        time.Time
}

// NewEngine wires the sync engine from its dependencies.
func NewEngine(
	cfg Config,
	node NodeSource,
	seeder TxSeeder,
	txIndexer TxIndexer,
	store Store,
	refresher Refresher,
	metrics Metrics,
	logger *zap.Logger,
) (*Engine, error) {
	if node == nil {
		return nil, errors.New("node source is required")
	}
	if store == nil {
		return nil, errors.New("store is required")
	}
	if metrics == nil {
		return nil, errors.New("sync metrics is required")
	}
	cfg = cfg.withDefaults()
	logger = logger.Named("sync")

	return &Engine{
		cfg:       cfg,
		node:      node,
		store:     store,
		refresher: refresher,
		metrics:   metrics,
		logger:    logger,
		sleep:     clock.SleepWithContext,
		indexer: &blockIndexer{
			node:        node,
			seeder:      seeder,
			txIndexer:   txIndexer,
			store:       store,
			metrics:     metrics,
			logger:      logger.Named("blockIndexer"),
			workerCount: cfg.TxWorkerCount,
		},
	}, nil
}

// Run loops sync passes until the context is canceled.
func (e *Engine) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := e.pass(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			e.logger.Warn("sync pass failed, backing off", zap.Error(err), zap.Duration("sleep", errorBackoff))
			if sleepErr := e.sleep(ctx, errorBackoff); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (e *Engine) pass(ctx context.Context) error {
	tip, err := e.node.BlockCount(ctx)
	if err != nil {
		return err
	}

	// Resuming from the contiguous height keeps the indexed range gap-free:
	// a concurrent batch can commit heights past a failed one, and those
	// orphans sit above the contiguous height until the hole is re-indexed.
	// The overlap is harmless since every write is idempotent.
	next := e.cfg.StartHeight
	local, ok, err := e.store.MaxContiguousBlockHeight(ctx)
	if err != nil {
		return err
	}
	if ok && local+1 > next {
		next = local + 1
	}

	if next > tip {
		e.metrics.SetTipLag(0)
		if err := e.maybeRefresh(ctx, 0); err != nil {
			return err
		}
		return e.sleep(ctx, e.cfg.PollInterval)
	}

	e.metrics.SetTipLag(float64(tip - next + 1))
	if int(tip-next) >= e.cfg.BatchSize {
		return e.catchUp(ctx, next, tip)
	}
	return e.live(ctx, next, tip)
}

// catchUp drains [from, tip] in fixed-size concurrent batches, waiting for
// each batch before starting the next so RPC concurrency stays bounded. Any
// height failure aborts the pass; the next pass resumes from the stored
// contiguous maximum, so a hole left mid-batch is retried before anything
// past it counts as progress.
func (e *Engine) catchUp(ctx context.Context, from, tip uint64) error {
	e.logger.Info("catching up",
		zap.Uint64("from", from),
		zap.Uint64("tip", tip),
		zap.Uint64("behind", tip-from+1),
	)

	for batchStart := from; batchStart <= tip; {
		batchEnd := batchStart + uint64(e.cfg.BatchSize) - 1
		if batchEnd > tip {
			batchEnd = tip
		}
		heights := make([]uint64, 0, batchEnd-batchStart+1)
		for h := batchStart; h <= batchEnd; h++ {
			heights = append(heights, h)
		}

		started := time.Now()
		err := workerpool.Process(ctx, e.cfg.BatchSize, heights, func(ctx context.Context, height uint64) error {
			return e.indexer.IndexHeight(ctx, height, ModeCatchup)
		})
		e.metrics.ObserveBatch(err, started)
		if err != nil {
			return err
		}

		elapsed := time.Since(started)
		rate := float64(len(heights)) / elapsed.Seconds()
		remaining := tip - batchEnd
		var eta time.Duration
		if rate > 0 {
			eta = time.Duration(float64(remaining)/rate) * time.Second
		}
		e.logger.Info("batch indexed",
			zap.Uint64("from", batchStart),
			zap.Uint64("to", batchEnd),
			zap.Float64("heights_per_second", rate),
			zap.Uint64("remaining", remaining),
			zap.Duration("eta", eta),
		)
		e.metrics.SetTipLag(float64(remaining))

		if err := e.maybeRefresh(ctx, len(heights)); err != nil {
			return err
		}
		batchStart = batchEnd + 1
	}
	return nil
}

// live indexes the small tip advance sequentially, then refreshes the
// privacy read models on the block and wall-clock cadences.
func (e *Engine) live(ctx context.Context, from, tip uint64) error {
	for h := from; h <= tip; h++ {
		if err := e.indexer.IndexHeight(ctx, h, ModeLive); err != nil {
			return err
		}
		e.metrics.SetTipLag(float64(tip - h))
	}
	e.logger.Info("tip reached", zap.Uint64("height", tip))

	if err := e.maybeRefresh(ctx, int(tip-from+1)); err != nil {
		return err
	}
	return e.sleep(ctx, e.cfg.PollInterval)
}

// maybeRefresh runs the privacy refresh when enough blocks accumulated since
// the last run, or when the quiet-period interval elapsed.
func (e *Engine) maybeRefresh(ctx context.Context, newBlocks int) error {
	if e.refresher == nil {
		return nil
	}
	e.blocksSinceRefresh += newBlocks
	if e.lastRefresh.IsZero() {
		e.lastRefresh = time.Now()
	}
	if e.blocksSinceRefresh < e.cfg.RefreshEveryBlocks && time.Since(e.lastRefresh) < e.cfg.RefreshInterval {
		return nil
	}

	if err := e.refresher.RefreshStats(ctx); err != nil {
		e.logger.Error("privacy stats refresh failed", zap.Error(err))
		return err
	}
	if err := e.refresher.RefreshTrend(ctx); err != nil {
		e.logger.Error("privacy trend refresh failed", zap.Error(err))
		return err
	}
	e.blocksSinceRefresh = 0
	e.lastRefresh = time.Now()
	return nil
}
