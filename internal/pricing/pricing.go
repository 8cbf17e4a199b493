// Package pricing implements the premium calculation engine. Quote is a pure
// function over the compiled-in product tables: it never returns an error and
// never mutates shared state, so it is safe under any concurrency.
package pricing

import (
	"math"

	"github.com/healthcareamerican/lifequote/internal/product"
	"github.com/healthcareamerican/lifequote/pkg/mathutil"
)

// Applicant carries the attributes a quote is computed from. It is a
// transient value; nothing about an applicant is persisted.
type Applicant struct {
	Product  product.Product
	Age      int
	Coverage float64
	// Years is the requested policy term; only the term product prices it.
	Years   int
	Health  product.HealthClass
	Tobacco product.TobaccoStatus
}

// QuoteResult is the outcome of a premium calculation. An ineligible
// applicant yields Eligible=false and a zero premium; the calculator never
// fails any other way.
type QuoteResult struct {
	Premium  float64
	Eligible bool
}

// Ineligible is the sentinel result for applicants outside a product's
// eligibility window or with missing required attributes.
var Ineligible = QuoteResult{}

// Quote computes the monthly premium for an applicant.
//
// The premium is baseRate × termMultiplier × normalizedCoverageMultiplier ×
// healthMultiplier × tobaccoMultiplier, rounded to two decimals. The
// coverage multiplier is normalized by the multiplier at the product's base
// amount so all products price on a common per-dollar-of-coverage basis.
func Quote(app Applicant) QuoteResult {
	cfg, ok := product.Lookup(app.Product)
	if !ok {
		return Ineligible
	}

	// Hard eligibility cutoff, not a multiplier.
	if app.Age < cfg.MinAge || app.Age > cfg.MaxAge {
		return Ineligible
	}

	if app.Coverage <= 0 {
		return Ineligible
	}

	baseRate := baseRateForAge(cfg, app.Age)

	termMult := 1.0
	if app.Product == product.TermLife {
		termMult = product.TermLengthMultiplier(app.Years)
	}

	tiers := product.CoverageTiers()
	targetCoverageMult := Interpolate(app.Coverage, tiers)
	baseCoverageMult := Interpolate(cfg.BaseAmount, tiers)
	normalizedCoverageMult := targetCoverageMult / baseCoverageMult

	healthMult := product.HealthMultiplier(app.Health)
	tobaccoMult := product.TobaccoMultiplier(app.Tobacco)

	total := baseRate * termMult * normalizedCoverageMult * healthMult * tobaccoMult

	return QuoteResult{Premium: mathutil.Round(total), Eligible: true}
}

// baseRateForAge selects the rate whose tabulated age is closest to the
// applicant's age. Ties break toward the earlier entry in ascending order,
// which is the official deterministic tie-break.
func baseRateForAge(cfg product.Config, age int) float64 {
	best := cfg.BaseRates[0]
	for _, entry := range cfg.BaseRates[1:] {
		if math.Abs(float64(entry.Age-age)) < math.Abs(float64(best.Age-age)) {
			best = entry
		}
	}
	return best.Rate
}
