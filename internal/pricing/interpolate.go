package pricing

import "github.com/healthcareamerican/lifequote/internal/product"

// Interpolate evaluates the coverage multiplier for an amount against a set
// of tiers via piecewise-linear interpolation. Amounts at or below the first
// tier clamp to its multiplier, amounts at or above the last tier clamp to
// the last; there is no extrapolation beyond the configured range. An exact
// hit on a tabulated amount returns the tabulated multiplier with no
// floating-point drift.
func Interpolate(amount float64, tiers []product.CoverageTier) float64 {
	if len(tiers) == 0 {
		return 1.0
	}
	if amount <= tiers[0].Amount {
		return tiers[0].Multiplier
	}
	if amount >= tiers[len(tiers)-1].Amount {
		return tiers[len(tiers)-1].Multiplier
	}

	for i := 0; i < len(tiers)-1; i++ {
		lower := tiers[i]
		upper := tiers[i+1]
		if amount < lower.Amount || amount > upper.Amount {
			continue
		}
		if amount == lower.Amount {
			return lower.Multiplier
		}
		if amount == upper.Amount {
			return upper.Multiplier
		}
		ratio := (amount - lower.Amount) / (upper.Amount - lower.Amount)
		return lower.Multiplier + (upper.Multiplier-lower.Multiplier)*ratio
	}

	return 1.0
}
