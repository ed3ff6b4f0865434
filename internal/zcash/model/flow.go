package model

import "time"

// FlowDirection describes which side of the transparent/shielded boundary
// value crossed to.
type FlowDirection string

var (
	// FlowShield marks value entering a shielded pool from transparent form.
	FlowShield FlowDirection = "shield"
	// FlowDeshield marks value leaving a shielded pool to transparent form.
	FlowDeshield FlowDirection = "deshield"
)

// FlowPool attributes a flow to the shielded pool(s) involved.
type FlowPool string

var (
	PoolSapling FlowPool = "sapling"
	PoolOrchard FlowPool = "orchard"
	PoolMixed   FlowPool = "mixed"
)

// ShieldedFlow records one value crossing of the transparent/shielded
// boundary, together with the transparent counterpart addresses.
//
// CounterpartAddresses nil means the row has not been processed for
// counterparts yet; an empty slice means processed with none found.
type ShieldedFlow struct {
	TxID                 string
	Direction            FlowDirection
	AmountZat            int64
	Pool                 FlowPool
	BlockHeight          uint64
	BlockTime            time.Time
	CounterpartAddresses []string
	CounterpartValueZat  int64
}
