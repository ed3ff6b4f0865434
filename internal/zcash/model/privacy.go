package model

import "time"

// PrivacyStats is the single "latest" privacy read model row, refreshed
// periodically from the node and the transaction table.
type PrivacyStats struct {
	SproutPoolZat  int64
	SaplingPoolZat int64
	OrchardPoolZat int64
	ChainSupplyZat int64

	TxCounts TxTypeCounts

	ShieldedPct  float64
	PrivacyScore uint32
	UpdatedAt    time.Time
}

// ShieldedPoolZat returns the combined size of all shielded pools.
func (s PrivacyStats) ShieldedPoolZat() int64 {
	return s.SproutPoolZat + s.SaplingPoolZat + s.OrchardPoolZat
}

// TrendDay is one calendar day of the privacy trend time series.
type TrendDay struct {
	Day              time.Time
	ShieldedCount    uint64
	TransparentCount uint64
	ShieldedPct      float64
	PoolZat          int64
	PrivacyScore     uint32
}
