package calc

import "strconv"

// GazonInput describes a lawn scope: establish turf by seeding or sodding.
type GazonInput struct {
	OppervlakteM2 float64 `json:"oppervlakteM2"`
	Aanlegwijze   string  `json:"aanlegwijze"` // "zaaien" or "graszoden"
}

const (
	AanlegZaaien    = "zaaien"
	AanlegGraszoden = "graszoden"
)

// Seeding density in kg per m2. Physical coefficient.
const graszaadKgPerM2 = 0.035

// BerekenGazon computes lawn-establishment hours and the seed or sod material.
// The norm-hour activity follows the chosen method, so each is configured
// separately.
func BerekenGazon(in GazonInput, site SiteConditions, sc *ScopeContext) ([]QuantityFact, error) {
	if in.OppervlakteM2 < 0 {
		return nil, negatiefVeld(sc.Scope(), "oppervlakteM2")
	}
	if in.OppervlakteM2 == 0 {
		return nil, nil
	}

	var materiaal QuantityFact
	switch in.Aanlegwijze {
	case AanlegZaaien:
		materiaal = materiaalFact("Graszaad", ProductGraszaad, "kg", RondVolume(in.OppervlakteM2*graszaadKgPerM2))
	case AanlegGraszoden:
		materiaal = materiaalFact("Graszoden", ProductGraszoden, "m²", RondVolume(in.OppervlakteM2))
	default:
		return nil, &ValidationError{Scope: sc.Scope(), Veld: "aanlegwijze", Reden: "onbekende aanlegwijze " + strconv.Quote(in.Aanlegwijze)}
	}

	norm, err := sc.NormUren(in.Aanlegwijze)
	if err != nil {
		return nil, err
	}

	uren := in.OppervlakteM2 * norm * site.Bereikbaarheid
	return []QuantityFact{arbeidsFact("Gazon aanleggen ("+in.Aanlegwijze+")", uren), materiaal}, nil
}
