// Package model defines domain models for Zcash indexing.
package model

import "time"

// Network identifies the Zcash network a row belongs to.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

// Block represents an indexed block header row.
// Rows are created on first index of a height and updated in place when the
// node reorganizes; they are never deleted.
type Block struct {
	Height     uint64
	Hash       string
	PrevHash   string
	NextHash   string
	Timestamp  time.Time
	Size       uint32
	Difficulty float64
	TxCount    uint32
}
