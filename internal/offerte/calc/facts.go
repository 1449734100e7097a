// Package calc houses the quote pricing engine: per-scope calculators that
// turn typed scope input into quantity facts, the synthesizer that prices
// facts into line items, and the totals aggregator. Everything in this package
// is a pure transform over an already-loaded rate context; repositories and
// HTTP live elsewhere.
package calc

// FactSoort classifies a quantity fact and the line item derived from it.
type FactSoort string

const (
	SoortArbeid    FactSoort = "arbeid"
	SoortMateriaal FactSoort = "materiaal"
	SoortMachine   FactSoort = "machine"
)

// QuantityFact is one abstract quantity produced by a scope calculator:
// billable hours, a material amount, or machine hours. Material facts name
// the catalog product that prices them.
type QuantityFact struct {
	Soort        FactSoort
	Omschrijving string
	Eenheid      string
	Aantal       float64
	Product      string
}

// ScopeFacts groups the facts one scope emitted, in emission order.
type ScopeFacts struct {
	Scope string
	Facts []QuantityFact
}

func arbeidsFact(omschrijving string, uren float64) QuantityFact {
	return QuantityFact{Soort: SoortArbeid, Omschrijving: omschrijving, Eenheid: "uur", Aantal: RondKwartier(uren)}
}

func machineFact(omschrijving string, uren float64) QuantityFact {
	return QuantityFact{Soort: SoortMachine, Omschrijving: omschrijving, Eenheid: "uur", Aantal: RondKwartier(uren)}
}

func materiaalFact(omschrijving, product, eenheid string, aantal float64) QuantityFact {
	return QuantityFact{Soort: SoortMateriaal, Omschrijving: omschrijving, Eenheid: eenheid, Aantal: aantal, Product: product}
}
