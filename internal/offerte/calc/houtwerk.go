package calc

import "strconv"

// HoutwerkInput describes a woodwork scope. Fencing and pergolas are measured
// by length, decking by area; the norm-hour activity equals the element name.
// The optional complexity class covers sloped or heavily detailed builds.
type HoutwerkInput struct {
	Onderdeel         string  `json:"onderdeel"` // "schutting", "vlonder" of "pergola"
	LengteM           float64 `json:"lengteM"`
	OppervlakteM2     float64 `json:"oppervlakteM2"`
	ComplexiteitKlasse string `json:"complexiteitKlasse,omitempty"`
}

const (
	OnderdeelSchutting = "schutting"
	OnderdeelVlonder   = "vlonder"
	OnderdeelPergola   = "pergola"
)

// BerekenHoutwerk computes construction hours and the corresponding material,
// scaled by site accessibility and, when a class is given, the complexity
// correction factor.
func BerekenHoutwerk(in HoutwerkInput, site SiteConditions, sc *ScopeContext) ([]QuantityFact, error) {
	if in.LengteM < 0 {
		return nil, negatiefVeld(sc.Scope(), "lengteM")
	}
	if in.OppervlakteM2 < 0 {
		return nil, negatiefVeld(sc.Scope(), "oppervlakteM2")
	}

	var basis float64
	var eenheid string
	switch in.Onderdeel {
	case OnderdeelSchutting, OnderdeelPergola:
		basis, eenheid = in.LengteM, "m"
	case OnderdeelVlonder:
		basis, eenheid = in.OppervlakteM2, "m²"
	default:
		return nil, &ValidationError{Scope: sc.Scope(), Veld: "onderdeel", Reden: "onbekend onderdeel " + strconv.Quote(in.Onderdeel)}
	}
	if basis == 0 {
		return nil, nil
	}

	norm, err := sc.NormUren(in.Onderdeel)
	if err != nil {
		return nil, err
	}

	complexiteit := 1.0
	if in.ComplexiteitKlasse != "" {
		complexiteit, err = sc.Factor(ConditieComplexiteit, in.ComplexiteitKlasse)
		if err != nil {
			return nil, err
		}
	}

	uren := basis * norm * complexiteit * site.Bereikbaarheid
	return []QuantityFact{
		arbeidsFact("Houtwerk: "+in.Onderdeel, uren),
		materiaalFact("Materiaal "+in.Onderdeel, in.Onderdeel, eenheid, RondVolume(basis)),
	}, nil
}
