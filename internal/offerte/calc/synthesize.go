package calc

import (
	"fmt"

	"github.com/google/uuid"
)

// Oorsprong tags whether a line item was derived by the engine or edited by
// hand. Recompute replaces derived lines and leaves manual ones alone.
type Oorsprong string

const (
	OorsprongAfgeleid  Oorsprong = "afgeleid"
	OorsprongHandmatig Oorsprong = "handmatig"
)

// Regel is one priced row in the quote.
type Regel struct {
	ID              string    `json:"id"`
	Scope           string    `json:"scope"`
	Omschrijving    string    `json:"omschrijving"`
	Eenheid         string    `json:"eenheid"`
	Aantal          float64   `json:"aantal"`
	PrijsPerEenheid float64   `json:"prijsPerEenheid"`
	Totaal          float64   `json:"totaal"`
	Soort           FactSoort `json:"soort"`
	Oorsprong       Oorsprong `json:"oorsprong"`
}

// PrijsContext supplies the rates the synthesizer prices facts with.
type PrijsContext struct {
	Uurtarief     float64
	Machinetarief float64
	Producten     map[string]ProductPrijs
}

// regelNamespace makes line-item IDs a pure function of their position and
// content, so recomputing an unchanged quote yields identical lines.
var regelNamespace = uuid.MustParse("8f3c1a52-6fdb-4a4e-9a35-0d6cf1f0a9d1")

// Synthesize converts quantity facts into a flat ordered list of priced line
// items: scope-selection order first, fact emission order within a scope.
// A fact referencing an unknown product fails the whole computation rather
// than pricing at zero.
func Synthesize(perScope []ScopeFacts, prijzen PrijsContext) ([]Regel, error) {
	var regels []Regel
	for _, sf := range perScope {
		for i, fact := range sf.Facts {
			var prijs float64
			switch fact.Soort {
			case SoortArbeid:
				prijs = prijzen.Uurtarief
			case SoortMachine:
				prijs = prijzen.Machinetarief
			case SoortMateriaal:
				product, ok := prijzen.Producten[fact.Product]
				if !ok {
					return nil, &ConfigurationError{Scope: sf.Scope, Soort: "product", Sleutel: fact.Product}
				}
				prijs = product.PrijsPerBruikbareEenheid()
			default:
				return nil, fmt.Errorf("calc: onbekende factsoort %q", fact.Soort)
			}

			prijs = RondBedrag(prijs)
			regels = append(regels, Regel{
				ID:              regelID(sf.Scope, i, fact),
				Scope:           sf.Scope,
				Omschrijving:    fact.Omschrijving,
				Eenheid:         fact.Eenheid,
				Aantal:          fact.Aantal,
				PrijsPerEenheid: prijs,
				Totaal:          RondBedrag(fact.Aantal * prijs),
				Soort:           fact.Soort,
				Oorsprong:       OorsprongAfgeleid,
			})
		}
	}
	return regels, nil
}

func regelID(scope string, index int, fact QuantityFact) string {
	seed := fmt.Sprintf("%s|%d|%s|%s", scope, index, fact.Soort, fact.Omschrijving)
	return uuid.NewSHA1(regelNamespace, []byte(seed)).String()
}
