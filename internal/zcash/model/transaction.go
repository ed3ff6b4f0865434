package model

import "time"

// Transaction represents an indexed transaction with its shielded composition.
// Per-pool value balances are signed: positive means net value leaving the
// shielded pool toward transparent form.
type Transaction struct {
	TxID        string
	BlockHeight uint64
	BlockTime   time.Time
	// TxIndex is the position within the block; index 0 is the coinbase slot.
	TxIndex     uint32
	Size        uint32
	InputCount  uint32
	OutputCount uint32

	ShieldedSpendCount  uint32
	ShieldedOutputCount uint32
	OrchardActionCount  uint32
	SaplingValueZat     int64
	OrchardValueZat     int64
}

// IsCoinbase reports whether this is the block-reward transaction.
func (t Transaction) IsCoinbase() bool {
	return t.TxIndex == 0
}

// ShieldedValueZat returns the combined signed value balance across pools.
func (t Transaction) ShieldedValueZat() int64 {
	return t.SaplingValueZat + t.OrchardValueZat
}

// TransactionInput is one spend of a previous output. Coinbase inputs carry
// no previous reference; a previous output that could not be resolved leaves
// Resolved false and the address/value columns NULL.
type TransactionInput struct {
	TxID      string
	Index     uint32
	PrevTxID  string
	PrevIndex uint32
	Coinbase  bool
	Resolved  bool
	Address   string
	ValueZat  int64
}

// TransactionOutput is one output of a transaction. Address is empty when
// the locking script does not resolve to a standard address.
type TransactionOutput struct {
	TxID       string
	Index      uint32
	ValueZat   int64
	ScriptHex  string
	ScriptType string
	Address    string
}

// TxTypeCounts holds all-time transaction classification tallies.
type TxTypeCounts struct {
	Total         uint64
	Coinbase      uint64
	Transparent   uint64
	Shielded      uint64
	FullyShielded uint64
	Mixed         uint64
}
