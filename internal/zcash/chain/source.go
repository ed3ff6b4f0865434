// Package chain provides cache-backed access to node transaction payloads.
package chain

import (
	"context"
	"sync"

	"github.com/Kenbak/cipherscan-backend/internal/zcash/rpc"
	"github.com/Kenbak/cipherscan-backend/pkg/fifocache"
)

type (
	// TxFetcher fetches one verbose transaction payload from the node.
	TxFetcher interface {
		RawTransactionVerbose(ctx context.Context, txid string) (*rpc.RawTransaction, error)
	}
)

// TxSource resolves transaction payloads cache-first, falling back to the
// node. Within a sync batch many inputs reference the same small set of
// recent transactions, so the cache converts O(inputs) RPC calls into close
// to O(unique prior transactions). The cache is best-effort only and never
// authoritative. Safe for concurrent use.
type TxSource struct {
	fetcher TxFetcher

	mu    sync.Mutex
	cache *fifocache.Cache[string, *rpc.RawTransaction]
}

// NewTxSource constructs a TxSource with a bounded payload cache.
func NewTxSource(fetcher TxFetcher, cacheSize int) *TxSource {
	return &TxSource{
		fetcher: fetcher,
		cache:   fifocache.New[string, *rpc.RawTransaction](cacheSize),
	}
}

// Transaction returns the payload for txid, from cache when possible.
func (s *TxSource) Transaction(ctx context.Context, txid string) (*rpc.RawTransaction, error) {
	s.mu.Lock()
	tx, ok := s.cache.Get(txid)
	s.mu.Unlock()
	if ok {
		return tx, nil
	}

	tx, err := s.fetcher.RawTransactionVerbose(ctx, txid)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache.Put(txid, tx)
	s.mu.Unlock()
	return tx, nil
}

// Seed pre-populates the cache with a freshly fetched payload.
func (s *TxSource) Seed(tx *rpc.RawTransaction) {
	if tx == nil || tx.TxID == "" {
		return
	}
	s.mu.Lock()
	s.cache.Put(tx.TxID, tx)
	s.mu.Unlock()
}
