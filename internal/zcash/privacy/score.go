package privacy

import "math"

// Score composes the 0-100 privacy adoption score from three capped parts:
// shielded supply share (up to 40), fully-shielded share of shielded
// transactions (up to 30), and all-time shielded adoption (up to 30).
func Score(shieldedPoolZat, chainSupplyZat int64, fullyShieldedTx, shieldedTx uint64, shieldedPct float64) uint32 {
	var supply float64
	if chainSupplyZat > 0 {
		supply = math.Min(float64(shieldedPoolZat)/float64(chainSupplyZat)*100*0.4, 40)
	}

	var fullyShielded float64
	if shieldedTx > 0 {
		fullyShielded = math.Min(float64(fullyShieldedTx)/float64(shieldedTx)*100*0.3, 30)
	}

	adoption := math.Min(shieldedPct*0.3, 30)

	total := supply + fullyShielded + adoption
	if total < 0 {
		return 0
	}
	if total > 100 {
		return 100
	}
	return uint32(math.Round(total))
}

// ShieldedPct returns the shielded share of non-coinbase transactions as a
// percentage, zero when there is nothing to measure.
func ShieldedPct(shielded, transparent uint64) float64 {
	total := shielded + transparent
	if total == 0 {
		return 0
	}
	return float64(shielded) / float64(total) * 100
}
