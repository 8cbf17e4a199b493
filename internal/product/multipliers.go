package product

import "fmt"

// HealthClass is the applicant's health classification.
type HealthClass int

// The recognized health classes.
const (
	HealthUnknown HealthClass = iota
	HealthExcellent
	HealthGood
	HealthAverage
	HealthBelowAverage
)

// String returns the label used on leads and in the multiplier table.
func (h HealthClass) String() string {
	switch h {
	case HealthExcellent:
		return "Excellent"
	case HealthGood:
		return "Good"
	case HealthAverage:
		return "Average"
	case HealthBelowAverage:
		return "Below Average"
	default:
		return "Unknown"
	}
}

// ParseHealthClass maps a classification label onto a HealthClass.
// Unrecognized labels map to HealthUnknown, which prices at the neutral
// multiplier rather than failing.
func ParseHealthClass(s string) HealthClass {
	switch s {
	case "Excellent":
		return HealthExcellent
	case "Good":
		return HealthGood
	case "Average":
		return HealthAverage
	case "Below Average":
		return HealthBelowAverage
	default:
		return HealthUnknown
	}
}

// TobaccoStatus is the applicant's tobacco classification.
type TobaccoStatus int

// The recognized tobacco statuses.
const (
	TobaccoUnknown TobaccoStatus = iota
	NonSmoker
	Smoker
)

// String returns the label used in the multiplier table.
func (t TobaccoStatus) String() string {
	switch t {
	case NonSmoker:
		return "Non-smoker"
	case Smoker:
		return "Smoker"
	default:
		return "Unknown"
	}
}

// ParseTobaccoStatus maps a status label onto a TobaccoStatus. The quote
// form reports "Smoker"/"Non-smoker" while leads carry "Yes"/"No"; both
// spellings are accepted. Unrecognized labels map to TobaccoUnknown, which
// prices at the neutral multiplier.
func ParseTobaccoStatus(s string) TobaccoStatus {
	switch s {
	case "Smoker", "Yes":
		return Smoker
	case "Non-smoker", "No":
		return NonSmoker
	default:
		return TobaccoUnknown
	}
}

// Multiplier tables shared by every product.
var (
	termLengthMultipliers = map[int]float64{
		10: 1.0,
		20: 1.6,
		30: 2.2,
	}

	healthMultipliers = map[HealthClass]float64{
		HealthExcellent:    0.85,
		HealthGood:         1.0,
		HealthAverage:      1.3,
		HealthBelowAverage: 1.7,
	}

	tobaccoMultipliers = map[TobaccoStatus]float64{
		NonSmoker: 1.0,
		Smoker:    2.3,
	}

	// coverageTiers are the interpolation anchors, strictly increasing in
	// amount. The 10k anchor is extrapolated for Final Expense coverage.
	coverageTiers = []CoverageTier{
		{Amount: 10000, Multiplier: 0.28},
		{Amount: 50000, Multiplier: 0.60},
		{Amount: 100000, Multiplier: 1.00},
		{Amount: 250000, Multiplier: 2.20},
		{Amount: 500000, Multiplier: 4.10},
	}
)

// TermLengthMultiplier returns the multiplier for a tabulated term length,
// or the neutral 1.0 for terms that are not tabulated.
func TermLengthMultiplier(years int) float64 {
	if m, ok := termLengthMultipliers[years]; ok {
		return m
	}
	return 1.0
}

// HealthMultiplier returns the multiplier for a health class, defaulting to
// the neutral 1.0 for unrecognized classes.
func HealthMultiplier(h HealthClass) float64 {
	if m, ok := healthMultipliers[h]; ok {
		return m
	}
	return 1.0
}

// TobaccoMultiplier returns the multiplier for a tobacco status, defaulting
// to the neutral 1.0 for unrecognized statuses.
func TobaccoMultiplier(t TobaccoStatus) float64 {
	if m, ok := tobaccoMultipliers[t]; ok {
		return m
	}
	return 1.0
}

// CoverageTiers returns the shared interpolation anchors.
func CoverageTiers() []CoverageTier {
	return coverageTiers
}

// ValidateTiers checks that the coverage tiers are strictly increasing in
// amount, the invariant interpolation depends on.
func ValidateTiers(tiers []CoverageTier) error {
	if len(tiers) == 0 {
		return fmt.Errorf("coverage tier table is empty")
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i].Amount <= tiers[i-1].Amount {
			return fmt.Errorf("coverage tier amounts not strictly increasing at index %d", i)
		}
	}
	return nil
}
