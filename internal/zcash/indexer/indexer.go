// Package indexer turns raw node payloads into normalized write sets.
package indexer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Kenbak/cipherscan-backend/internal/zcash/model"
	"github.com/Kenbak/cipherscan-backend/internal/zcash/rpc"
	"github.com/Kenbak/cipherscan-backend/pkg/safe"
)

type (
	// TxResolver resolves a previous transaction payload, cache-first.
	TxResolver interface {
		Transaction(ctx context.Context, txid string) (*rpc.RawTransaction, error)
	}
)

// Indexer builds the complete write set for one transaction payload. It is
// stateless apart from its resolver and safe for concurrent use.
type Indexer struct {
	resolver TxResolver
	logger   *zap.Logger
}

// New constructs an Indexer.
func New(resolver TxResolver, logger *zap.Logger) (*Indexer, error) {
	if resolver == nil {
		return nil, errors.New("transaction resolver is required")
	}
	return &Indexer{
		resolver: resolver,
		logger:   logger.Named("indexer"),
	}, nil
}

// IndexTransaction normalizes one raw transaction into its write set:
// header row, outputs, inputs, ledger credits and debits, and the shielded
// flow row when the value balance is non-zero.
//
// Previous-output resolution failures are tolerated: the input row is still
// written with a null address and value, so indexing never stalls on pruned
// ancestors.
func (ix *Indexer) IndexTransaction(ctx context.Context, raw *rpc.RawTransaction, height uint64, blockTime time.Time, txIndex uint32) (model.IndexedTransaction, error) {
	tx, err := buildHeader(raw, height, blockTime, txIndex)
	if err != nil {
		return model.IndexedTransaction{}, err
	}

	outputs, credits, err := ix.buildOutputs(raw, blockTime)
	if err != nil {
		return model.IndexedTransaction{}, err
	}
	inputs, debits := ix.buildInputs(ctx, raw, blockTime)

	set := model.IndexedTransaction{
		Tx:      tx,
		Outputs: outputs,
		Inputs:  inputs,
		Credits: credits,
		Debits:  debits,
		Flow:    classifyFlow(tx, inputs, outputs),
	}
	return set, nil
}

func buildHeader(raw *rpc.RawTransaction, height uint64, blockTime time.Time, txIndex uint32) (model.Transaction, error) {
	saplingZat, err := saplingValueZat(raw)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("tx %s sapling value balance: %w", raw.TxID, err)
	}
	orchardZat, err := orchardValueZat(raw)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("tx %s orchard value balance: %w", raw.TxID, err)
	}
	size, err := safe.Uint32(raw.Size)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("tx %s size overflow: %w", raw.TxID, err)
	}

	// Array lengths from a decoded payload cannot overflow uint32.
	return model.Transaction{
		TxID:                raw.TxID,
		BlockHeight:         height,
		BlockTime:           blockTime,
		TxIndex:             txIndex,
		Size:                size,
		InputCount:          uint32(len(raw.Vin)),
		OutputCount:         uint32(len(raw.Vout)),
		ShieldedSpendCount:  uint32(len(raw.ShieldedSpends)),
		ShieldedOutputCount: uint32(len(raw.ShieldedOutputs)),
		OrchardActionCount:  uint32(raw.OrchardActionCount()),
		SaplingValueZat:     saplingZat,
		OrchardValueZat:     orchardZat,
	}, nil
}

func (ix *Indexer) buildOutputs(raw *rpc.RawTransaction, blockTime time.Time) ([]model.TransactionOutput, []model.LedgerEntry, error) {
	outputs := make([]model.TransactionOutput, 0, len(raw.Vout))
	credits := make([]model.LedgerEntry, 0, len(raw.Vout))
	for _, vout := range raw.Vout {
		valueZat, err := outputValueZat(vout)
		if err != nil {
			return nil, nil, err
		}

		out := model.TransactionOutput{
			TxID:       raw.TxID,
			Index:      vout.N,
			ValueZat:   valueZat,
			ScriptHex:  vout.ScriptPubKey.Hex,
			ScriptType: vout.ScriptPubKey.Type,
		}
		if len(vout.ScriptPubKey.Addresses) > 0 {
			out.Address = vout.ScriptPubKey.Addresses[0]
			credits = append(credits, model.LedgerEntry{
				Address:   out.Address,
				AmountZat: valueZat,
				Timestamp: blockTime,
			})
		}
		outputs = append(outputs, out)
	}
	return outputs, credits, nil
}

func (ix *Indexer) buildInputs(ctx context.Context, raw *rpc.RawTransaction, blockTime time.Time) ([]model.TransactionInput, []model.LedgerEntry) {
	inputs := make([]model.TransactionInput, 0, len(raw.Vin))
	debits := make([]model.LedgerEntry, 0, len(raw.Vin))
	for i, vin := range raw.Vin {
		in := model.TransactionInput{
			TxID:  raw.TxID,
			Index: uint32(i),
		}
		if vin.Coinbase != "" {
			in.Coinbase = true
			inputs = append(inputs, in)
			continue
		}

		in.PrevTxID = vin.TxID
		in.PrevIndex = vin.Vout
		ix.resolveInput(ctx, &in)
		if in.Resolved && in.Address != "" {
			debits = append(debits, model.LedgerEntry{
				Address:   in.Address,
				AmountZat: in.ValueZat,
				Timestamp: blockTime,
			})
		}
		inputs = append(inputs, in)
	}
	return inputs, debits
}

// resolveInput fills in the previous output's address and value. Failures
// leave Resolved false and are only logged.
func (ix *Indexer) resolveInput(ctx context.Context, in *model.TransactionInput) {
	prev, err := ix.resolver.Transaction(ctx, in.PrevTxID)
	if err != nil {
		ix.logger.Warn("previous transaction resolution failed",
			zap.String("txid", in.TxID),
			zap.String("prev_txid", in.PrevTxID),
			zap.Error(err),
		)
		return
	}
	if int(in.PrevIndex) >= len(prev.Vout) {
		ix.logger.Warn("previous output index out of range",
			zap.String("prev_txid", in.PrevTxID),
			zap.Uint32("prev_idx", in.PrevIndex),
			zap.Int("outputs", len(prev.Vout)),
		)
		return
	}

	vout := prev.Vout[in.PrevIndex]
	valueZat, err := outputValueZat(vout)
	if err != nil {
		ix.logger.Warn("previous output value conversion failed",
			zap.String("prev_txid", in.PrevTxID),
			zap.Uint32("prev_idx", in.PrevIndex),
			zap.Error(err),
		)
		return
	}

	in.Resolved = true
	in.ValueZat = valueZat
	if len(vout.ScriptPubKey.Addresses) > 0 {
		in.Address = vout.ScriptPubKey.Addresses[0]
	}
}
