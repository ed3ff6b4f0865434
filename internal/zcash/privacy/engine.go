// Package privacy derives the privacy-adoption read models.
package privacy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Kenbak/cipherscan-backend/internal/zcash/model"
	"github.com/Kenbak/cipherscan-backend/internal/zcash/rpc"
)

// trendWindowBlocks approximates one day of blocks at the 75 second target
// interval.
const trendWindowBlocks = 1152

type (
	// NodeInfo reads aggregate chain state from the node.
	NodeInfo interface {
		BlockchainInfo(ctx context.Context) (*rpc.BlockchainInfo, error)
	}

	// Store is the repository surface the engine reads from and writes to.
	Store interface {
		TxTypeCounts(ctx context.Context) (model.TxTypeCounts, error)
		TxTypeCountsForHeights(ctx context.Context, fromHeight, toHeight uint64) (model.TxTypeCounts, error)
		TxTypeCountsForDay(ctx context.Context, day time.Time) (model.TxTypeCounts, error)
		MaxBlockHeight(ctx context.Context) (uint64, bool, error)
		UpsertPrivacyStats(ctx context.Context, stats model.PrivacyStats) error
		UpsertTrendDay(ctx context.Context, day model.TrendDay) error
		MissingTrendDays(ctx context.Context) ([]time.Time, error)
	}
)

// Engine refreshes the privacy stats snapshot and the daily trend series.
// Pool sizes and chain supply always come fresh from the node; the ledger
// only covers the transparent side.
type Engine struct {
	node   NodeInfo
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

// NewEngine constructs an Engine.
func NewEngine(node NodeInfo, store Store, logger *zap.Logger) (*Engine, error) {
	if node == nil {
		return nil, errors.New("node info source is required")
	}
	if store == nil {
		return nil, errors.New("store is required")
	}
	return &Engine{
		node:   node,
		store:  store,
		logger: logger.Named("privacy"),
		now:    time.Now,
	}, nil
}

// RefreshStats recomputes and stores the latest privacy snapshot.
func (e *Engine) RefreshStats(ctx context.Context) error {
	info, err := e.node.BlockchainInfo(ctx)
	if err != nil {
		return fmt.Errorf("fetch blockchain info: %w", err)
	}
	counts, err := e.store.TxTypeCounts(ctx)
	if err != nil {
		return fmt.Errorf("aggregate tx type counts: %w", err)
	}

	stats := model.PrivacyStats{
		SproutPoolZat:  info.PoolValueZat("sprout"),
		SaplingPoolZat: info.PoolValueZat("sapling"),
		OrchardPoolZat: info.PoolValueZat("orchard"),
		TxCounts:       counts,
		ShieldedPct:    ShieldedPct(counts.Shielded, counts.Transparent),
		UpdatedAt:      e.now().UTC(),
	}
	if info.ChainSupply != nil {
		stats.ChainSupplyZat = info.ChainSupply.ChainValueZat
	}
	stats.PrivacyScore = Score(stats.ShieldedPoolZat(), stats.ChainSupplyZat, counts.FullyShielded, counts.Shielded, stats.ShieldedPct)

	if err := e.store.UpsertPrivacyStats(ctx, stats); err != nil {
		return fmt.Errorf("store privacy stats: %w", err)
	}

	e.logger.Info("privacy stats refreshed",
		zap.Int64("shielded_pool_zat", stats.ShieldedPoolZat()),
		zap.Float64("shielded_pct", stats.ShieldedPct),
		zap.Uint32("privacy_score", stats.PrivacyScore),
	)
	return nil
}

// RefreshTrend recomputes today's trend row from the trailing one-day block
// window. Intra-day refreshes overwrite the same row.
func (e *Engine) RefreshTrend(ctx context.Context) error {
	tip, ok, err := e.store.MaxBlockHeight(ctx)
	if err != nil {
		return fmt.Errorf("read max block height: %w", err)
	}
	if !ok {
		e.logger.Debug("no blocks indexed yet, skipping trend refresh")
		return nil
	}

	from := uint64(0)
	if tip >= trendWindowBlocks {
		from = tip - trendWindowBlocks + 1
	}
	counts, err := e.store.TxTypeCountsForHeights(ctx, from, tip)
	if err != nil {
		return fmt.Errorf("aggregate trend window counts: %w", err)
	}

	day := e.now().UTC().Truncate(24 * time.Hour)
	trend, err := e.buildTrendDay(ctx, day, counts)
	if err != nil {
		return err
	}
	if err := e.store.UpsertTrendDay(ctx, trend); err != nil {
		return fmt.Errorf("store trend day: %w", err)
	}
	return nil
}

// BackfillTrends writes one trend row for every day that has indexed
// transactions but no trend entry, oldest first.
func (e *Engine) BackfillTrends(ctx context.Context) error {
	days, err := e.store.MissingTrendDays(ctx)
	if err != nil {
		return fmt.Errorf("list missing trend days: %w", err)
	}
	if len(days) == 0 {
		return nil
	}

	e.logger.Info("backfilling trend days", zap.Int("days", len(days)))
	for _, day := range days {
		counts, err := e.store.TxTypeCountsForDay(ctx, day)
		if err != nil {
			return fmt.Errorf("aggregate counts for %s: %w", day.Format("2006-01-02"), err)
		}
		trend, err := e.buildTrendDay(ctx, day, counts)
		if err != nil {
			return err
		}
		if err := e.store.UpsertTrendDay(ctx, trend); err != nil {
			return fmt.Errorf("store trend day %s: %w", day.Format("2006-01-02"), err)
		}
	}
	return nil
}

// buildTrendDay scores one day's counts. The day's own shielded percentage
// feeds the adoption part; pool size and the fully-shielded ratio stay
// chain-wide since they are not meaningful per day.
func (e *Engine) buildTrendDay(ctx context.Context, day time.Time, counts model.TxTypeCounts) (model.TrendDay, error) {
	info, err := e.node.BlockchainInfo(ctx)
	if err != nil {
		return model.TrendDay{}, fmt.Errorf("fetch blockchain info: %w", err)
	}
	allTime, err := e.store.TxTypeCounts(ctx)
	if err != nil {
		return model.TrendDay{}, fmt.Errorf("aggregate tx type counts: %w", err)
	}

	poolZat := info.PoolValueZat("sprout") + info.PoolValueZat("sapling") + info.PoolValueZat("orchard")
	var supplyZat int64
	if info.ChainSupply != nil {
		supplyZat = info.ChainSupply.ChainValueZat
	}

	pct := ShieldedPct(counts.Shielded, counts.Transparent)
	return model.TrendDay{
		Day:              day,
		ShieldedCount:    counts.Shielded,
		TransparentCount: counts.Transparent,
		ShieldedPct:      pct,
		PoolZat:          poolZat,
		PrivacyScore:     Score(poolZat, supplyZat, allTime.FullyShielded, allTime.Shielded, pct),
	}, nil
}
