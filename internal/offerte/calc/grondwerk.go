package calc

import "strconv"

// GrondwerkInput describes an excavation scope: strip an area to a depth
// class, optionally hauling the freed soil away.
type GrondwerkInput struct {
	OppervlakteM2 float64 `json:"oppervlakteM2"`
	DiepteKlasse  string  `json:"diepteKlasse"`
	AfvoerGrond   bool    `json:"afvoerGrond"`
}

// Physical coefficients, not business correction factors: estimated haul
// volume per m2 for each depth class, and machine time per m3 hauled.
var diepteVolumeFactoren = map[string]float64{
	"ondiep":    0.15,
	"standaard": 0.25,
	"diep":      0.40,
}

const graafMachineUurPerM3 = 0.2

const ActiviteitOntgraven = "ontgraven"

// BerekenGrondwerk computes excavation hours scaled by the depth-class
// correction factor and site accessibility, plus haul-away volume when
// requested.
func BerekenGrondwerk(in GrondwerkInput, site SiteConditions, sc *ScopeContext) ([]QuantityFact, error) {
	if in.OppervlakteM2 < 0 {
		return nil, negatiefVeld(sc.Scope(), "oppervlakteM2")
	}
	if in.OppervlakteM2 == 0 {
		return nil, nil
	}

	volumeFactor, ok := diepteVolumeFactoren[in.DiepteKlasse]
	if !ok {
		return nil, &ValidationError{Scope: sc.Scope(), Veld: "diepteKlasse", Reden: "onbekende diepteklasse " + strconv.Quote(in.DiepteKlasse)}
	}

	norm, err := sc.NormUren(ActiviteitOntgraven)
	if err != nil {
		return nil, err
	}
	diepte, err := sc.Factor(ConditieDiepte, in.DiepteKlasse)
	if err != nil {
		return nil, err
	}

	uren := in.OppervlakteM2 * norm * diepte * site.Bereikbaarheid
	facts := []QuantityFact{arbeidsFact("Ontgraven ("+in.DiepteKlasse+")", uren)}

	if in.AfvoerGrond {
		volume := RondVolume(in.OppervlakteM2 * volumeFactor)
		if volume > 0 {
			facts = append(facts,
				materiaalFact("Afvoer grond", ProductGrondafvoer, "m³", volume),
				machineFact("Laden en afvoeren grond", volume*graafMachineUurPerM3),
			)
		}
	}

	return facts, nil
}
