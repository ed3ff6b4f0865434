package model

import "time"

// Address is the running ledger aggregate for one transparent address.
// It is derived state, recomputable by replaying inputs and outputs; the
// balance can be transiently negative when inputs are indexed before the
// outputs that funded them.
type Address struct {
	Address          string
	BalanceZat       int64
	TotalReceivedZat int64
	TotalSentZat     int64
	TxCount          uint64
	FirstSeen        time.Time
	LastSeen         time.Time
}
