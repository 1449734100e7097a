package calc

import (
	"math"

	"github.com/shopspring/decimal"
)

// All rounding happens at the boundaries defined here: labor hours to the
// quarter hour when a fact is emitted, material volumes to one decimal when a
// fact is emitted, currency to two decimals when a line total or totals field
// is produced. Nothing downstream re-rounds.

// RondKwartier rounds billable hours to the nearest quarter hour.
func RondKwartier(uren float64) float64 {
	return math.Round(uren*4) / 4
}

// RondVolume rounds a material or volume quantity to one decimal.
func RondVolume(aantal float64) float64 {
	return decimal.NewFromFloat(aantal).Round(1).InexactFloat64()
}

// RondBedrag rounds a currency amount to two decimals, half away from zero.
func RondBedrag(bedrag float64) float64 {
	return decimal.NewFromFloat(bedrag).Round(2).InexactFloat64()
}
