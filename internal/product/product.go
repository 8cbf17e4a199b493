// Package product defines the insurable products and the rate and multiplier
// tables used for pricing. All tables are compiled-in configuration sourced
// from the Maryland life insurance quoting workbook; they are immutable and
// shared process-wide.
package product

import "fmt"

// Product identifies an insurable product.
type Product int

// The supported products.
const (
	Unknown Product = iota
	TermLife
	WholeLife
	FinalExpense
)

// String returns the wire form of the product selector.
func (p Product) String() string {
	switch p {
	case TermLife:
		return "TERM_LIFE"
	case WholeLife:
		return "WHOLE_LIFE"
	case FinalExpense:
		return "FINAL_EXPENSE"
	default:
		return "UNKNOWN"
	}
}

// Parse maps a wire-form selector onto a Product. Unrecognized selectors map
// to Unknown so callers can fail closed.
func Parse(s string) Product {
	switch s {
	case "TERM_LIFE":
		return TermLife
	case "WHOLE_LIFE":
		return WholeLife
	case "FINAL_EXPENSE":
		return FinalExpense
	default:
		return Unknown
	}
}

// AgeRate is one entry in a product's sparse age-to-rate table.
type AgeRate struct {
	Age  int
	Rate float64
}

// CoverageTier is one interpolation anchor: coverage amounts between
// neighboring tiers take a linearly interpolated multiplier.
type CoverageTier struct {
	Amount     float64
	Multiplier float64
}

// Config holds the pricing configuration for one product.
type Config struct {
	// BaseAmount is the reference coverage the base rates are quoted at;
	// the coverage multiplier is normalized against it.
	BaseAmount float64

	// MinAge and MaxAge bound eligibility, inclusive on both ends.
	MinAge int
	MaxAge int

	// BaseRates is a sparse table in ascending age order. Quoting selects
	// the entry closest to the applicant's age.
	BaseRates []AgeRate
}

// Lookup returns the pricing configuration for a product, failing closed for
// Unknown.
func Lookup(p Product) (Config, bool) {
	cfg, ok := configs[p]
	return cfg, ok
}

var configs = map[Product]Config{
	TermLife: {
		BaseAmount: 100000,
		MinAge:     5,
		MaxAge:     70,
		BaseRates: []AgeRate{
			{5, 8}, {10, 9}, {15, 10}, {18, 12}, {25, 14}, {30, 16}, {35, 18},
			{40, 22}, {45, 30}, {50, 42}, {55, 60}, {59, 75}, {65, 115}, {68, 130}, {70, 175},
		},
	},
	WholeLife: {
		BaseAmount: 50000,
		MinAge:     1,
		MaxAge:     65,
		BaseRates: []AgeRate{
			{1, 25}, {5, 28}, {10, 30}, {15, 35}, {18, 40}, {25, 65}, {35, 100}, {45, 160}, {55, 250}, {65, 360},
		},
	},
	FinalExpense: {
		BaseAmount: 10000,
		MinAge:     60,
		MaxAge:     80,
		BaseRates: []AgeRate{
			{60, 45}, {65, 60}, {70, 85}, {75, 120}, {80, 165},
		},
	},
}

// Products lists every supported product in a fixed order, for exhaustive
// iteration in validation and tests.
func Products() []Product {
	return []Product{TermLife, WholeLife, FinalExpense}
}

// Validate checks the structural invariants of a product configuration:
// a sane eligibility window and a non-empty, strictly ascending rate table.
func (c Config) Validate() error {
	if c.MinAge > c.MaxAge {
		return fmt.Errorf("minAge %d exceeds maxAge %d", c.MinAge, c.MaxAge)
	}
	if len(c.BaseRates) == 0 {
		return fmt.Errorf("base rate table is empty")
	}
	for i := 1; i < len(c.BaseRates); i++ {
		if c.BaseRates[i].Age <= c.BaseRates[i-1].Age {
			return fmt.Errorf("base rate ages not ascending at index %d", i)
		}
	}
	return nil
}
