package model

import "time"

// LedgerEntry is one pending credit or debit against the address ledger.
type LedgerEntry struct {
	Address   string
	AmountZat int64
	Timestamp time.Time
}

// IndexedTransaction is the complete write set produced by indexing one
// transaction payload. It is applied to storage as a single atomic unit,
// with credits applied before debits.
type IndexedTransaction struct {
	Tx      Transaction
	Outputs []TransactionOutput
	Inputs  []TransactionInput
	Credits []LedgerEntry
	Debits  []LedgerEntry
	Flow    *ShieldedFlow
}
