package indexer

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/Kenbak/cipherscan-backend/internal/zcash/model"
	"github.com/Kenbak/cipherscan-backend/internal/zcash/rpc"
)

// zatFromCoins converts a whole-coin float amount to zatoshi. Zatoshi and
// satoshi share the 1e8 scale, so the btcutil rounding rules apply directly.
func zatFromCoins(coins float64) (int64, error) {
	amount, err := btcutil.NewAmount(coins)
	if err != nil {
		return 0, fmt.Errorf("convert %f to zatoshi: %w", coins, err)
	}
	return int64(amount), nil
}

// saplingValueZat extracts the Sapling value balance, preferring the exact
// zatoshi field over the lossy float. Positive means net value leaving the
// pool.
func saplingValueZat(tx *rpc.RawTransaction) (int64, error) {
	if tx.ValueBalanceZat != nil {
		return *tx.ValueBalanceZat, nil
	}
	if tx.ValueBalance == 0 {
		return 0, nil
	}
	return zatFromCoins(tx.ValueBalance)
}

// orchardValueZat extracts the Orchard value balance with the same
// preference order as saplingValueZat.
func orchardValueZat(tx *rpc.RawTransaction) (int64, error) {
	if tx.Orchard == nil {
		return 0, nil
	}
	if tx.Orchard.ValueBalanceZat != nil {
		return *tx.Orchard.ValueBalanceZat, nil
	}
	if tx.Orchard.ValueBalance == 0 {
		return 0, nil
	}
	return zatFromCoins(tx.Orchard.ValueBalance)
}

// outputValueZat extracts one transparent output's value, preferring the
// exact zatoshi field.
func outputValueZat(out rpc.RawVout) (int64, error) {
	if out.ValueZat != nil {
		return *out.ValueZat, nil
	}
	return zatFromCoins(out.Value)
}

// classifyFlow derives the boundary-crossing row for a transaction, or nil
// when the combined value balance is exactly zero. The transparent
// counterpart side is taken from the already-built output and input rows:
// outputs for a deshield, resolved inputs for a shield. Addresses are
// de-duplicated; the list is never nil so the row is marked processed.
func classifyFlow(tx model.Transaction, inputs []model.TransactionInput, outputs []model.TransactionOutput) *model.ShieldedFlow {
	total := tx.ShieldedValueZat()
	if total == 0 {
		return nil
	}

	flow := &model.ShieldedFlow{
		TxID:        tx.TxID,
		BlockHeight: tx.BlockHeight,
		BlockTime:   tx.BlockTime,
		Pool:        attributePool(tx),
	}
	if total > 0 {
		flow.Direction = model.FlowDeshield
		flow.AmountZat = total
		flow.CounterpartAddresses, flow.CounterpartValueZat = outputCounterparts(outputs)
	} else {
		flow.Direction = model.FlowShield
		flow.AmountZat = -total
		flow.CounterpartAddresses, flow.CounterpartValueZat = inputCounterparts(inputs)
	}
	return flow
}

func attributePool(tx model.Transaction) model.FlowPool {
	switch {
	case tx.SaplingValueZat != 0 && tx.OrchardValueZat != 0:
		return model.PoolMixed
	case tx.OrchardValueZat != 0:
		return model.PoolOrchard
	default:
		return model.PoolSapling
	}
}

func outputCounterparts(outputs []model.TransactionOutput) ([]string, int64) {
	addresses := make([]string, 0, len(outputs))
	seen := make(map[string]struct{}, len(outputs))
	var total int64
	for _, out := range outputs {
		total += out.ValueZat
		if out.Address == "" {
			continue
		}
		if _, ok := seen[out.Address]; ok {
			continue
		}
		seen[out.Address] = struct{}{}
		addresses = append(addresses, out.Address)
	}
	return addresses, total
}

func inputCounterparts(inputs []model.TransactionInput) ([]string, int64) {
	addresses := make([]string, 0, len(inputs))
	seen := make(map[string]struct{}, len(inputs))
	var total int64
	for _, in := range inputs {
		if !in.Resolved {
			continue
		}
		total += in.ValueZat
		if in.Address == "" {
			continue
		}
		if _, ok := seen[in.Address]; ok {
			continue
		}
		seen[in.Address] = struct{}{}
		addresses = append(addresses, in.Address)
	}
	return addresses, total
}
