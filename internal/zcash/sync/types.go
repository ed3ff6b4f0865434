package sync

import (
	"context"
	"time"

	"github.com/Kenbak/cipherscan-backend/internal/zcash/model"
	"github.com/Kenbak/cipherscan-backend/internal/zcash/rpc"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// NodeSource is the node RPC surface the engine reads from.
	NodeSource interface {
		BlockCount(ctx context.Context) (uint64, error)
		BlockHash(ctx context.Context, height uint64) (string, error)
		Block(ctx context.Context, hash string) (*rpc.RawBlock, error)
		RawTransactionVerbose(ctx context.Context, txid string) (*rpc.RawTransaction, error)
	}

	// TxSeeder pre-populates the transaction fetch cache.
	TxSeeder interface {
		Seed(tx *rpc.RawTransaction)
	}

	// TxIndexer builds the write set for one transaction payload.
	TxIndexer interface {
		IndexTransaction(ctx context.Context, raw *rpc.RawTransaction, height uint64, blockTime time.Time, txIndex uint32) (model.IndexedTransaction, error)
	}

	// Store is the repository surface the engine writes to.
	Store interface {
		MaxContiguousBlockHeight(ctx context.Context) (uint64, bool, error)
		UpsertBlock(ctx context.Context, block model.Block) error
		ApplyTransaction(ctx context.Context, set model.IndexedTransaction) (bool, error)
	}

	// Refresher recomputes the privacy read models.
	Refresher interface {
		RefreshStats(ctx context.Context) error
		RefreshTrend(ctx context.Context) error
	}

	// HeightIndexer indexes one block height end to end.
	HeightIndexer interface {
		IndexHeight(ctx context.Context, height uint64, mode string) error
	}

	// Metrics records sync engine metrics.
	Metrics interface {
		ObserveHeight(mode string, err error, started time.Time)
		ObserveBatch(err error, started time.Time)
		SetTipLag(lag float64)
	}
)
