package calc

import "github.com/shopspring/decimal"

// Totalen is the derived cost/margin/VAT summary of a quote. It is recomputed
// wholesale on every recalculation, never patched incrementally.
type Totalen struct {
	Materiaalkosten float64 `json:"materiaalkosten"`
	Arbeidskosten   float64 `json:"arbeidskosten"`
	TotaalUren      float64 `json:"totaalUren"`
	Subtotaal       float64 `json:"subtotaal"`
	MargePercentage float64 `json:"margePercentage"`
	Marge           float64 `json:"marge"`
	TotaalExBtw     float64 `json:"totaalExBtw"`
	BtwPercentage   float64 `json:"btwPercentage"`
	Btw             float64 `json:"btw"`
	TotaalInclBtw   float64 `json:"totaalInclBtw"`
}

// MachineBucket designates which cost bucket machine-kind lines land in.
type MachineBucket string

const (
	MachineInArbeid    MachineBucket = "arbeid"
	MachineInMateriaal MachineBucket = "materiaal"
)

// MachinePolicy answers the two questions the line-item kinds leave open:
// where machine cost counts, and whether machine hours are billable hours.
type MachinePolicy struct {
	KostenBucket MachineBucket
	UrenTellen   bool
}

// Aggregate sums line items into document totals. Each currency field is
// rounded to two decimals exactly once, at the point the field is produced;
// intermediate additions stay exact (decimal) to avoid cumulative drift.
// Calling Aggregate twice on the same inputs yields identical Totalen.
func Aggregate(regels []Regel, margePercentage, btwPercentage float64, policy MachinePolicy) Totalen {
	materiaal := decimal.Zero
	arbeid := decimal.Zero
	uren := decimal.Zero

	for _, r := range regels {
		totaal := decimal.NewFromFloat(r.Totaal)
		switch r.Soort {
		case SoortMateriaal:
			materiaal = materiaal.Add(totaal)
		case SoortArbeid:
			arbeid = arbeid.Add(totaal)
			uren = uren.Add(decimal.NewFromFloat(r.Aantal))
		case SoortMachine:
			if policy.KostenBucket == MachineInMateriaal {
				materiaal = materiaal.Add(totaal)
			} else {
				arbeid = arbeid.Add(totaal)
			}
			if policy.UrenTellen {
				uren = uren.Add(decimal.NewFromFloat(r.Aantal))
			}
		}
	}

	subtotaal := materiaal.Add(arbeid).Round(2)
	marge := subtotaal.Mul(decimal.NewFromFloat(margePercentage)).Div(decimal.NewFromInt(100)).Round(2)
	exBtw := subtotaal.Add(marge).Round(2)
	btw := exBtw.Mul(decimal.NewFromFloat(btwPercentage)).Div(decimal.NewFromInt(100)).Round(2)
	incl := exBtw.Add(btw).Round(2)

	return Totalen{
		Materiaalkosten: materiaal.Round(2).InexactFloat64(),
		Arbeidskosten:   arbeid.Round(2).InexactFloat64(),
		TotaalUren:      uren.InexactFloat64(),
		Subtotaal:       subtotaal.InexactFloat64(),
		MargePercentage: margePercentage,
		Marge:           marge.InexactFloat64(),
		TotaalExBtw:     exBtw.InexactFloat64(),
		BtwPercentage:   btwPercentage,
		Btw:             btw.InexactFloat64(),
		TotaalInclBtw:   incl.InexactFloat64(),
	}
}
