package calc

import "strconv"

// Maintenance-cycle scopes. These additionally weigh the site's maintenance
// backlog: a neglected garden takes disproportionately longer per visit.

// GazonOnderhoudInput describes recurring lawn mowing/edging work.
type GazonOnderhoudInput struct {
	OppervlakteM2 float64 `json:"oppervlakteM2"`
	Beurten       int     `json:"beurten"`
}

// HaagOnderhoudInput describes hedge trimming, optionally hauling clippings.
type HaagOnderhoudInput struct {
	LengteM        float64 `json:"lengteM"`
	HoogteM        float64 `json:"hoogteM"`
	AfvoerSnoeisel bool    `json:"afvoerSnoeisel"`
}

// BoomOnderhoudInput describes tree maintenance: pruning or felling.
type BoomOnderhoudInput struct {
	Aantal  int    `json:"aantal"`
	Ingreep string `json:"ingreep"` // "snoeien" of "rooien"
}

const (
	ActiviteitMaaien  = "maaien"
	ActiviteitSnoeien = "snoeien"
	ActiviteitRooien  = "rooien"
)

// Physical coefficients for maintenance work.
const (
	snoeiselM3PerM2Haagvlak = 0.06 // clippings volume per m2 of hedge face
	stobbenfreesUurPerBoom  = 0.75 // stump grinding per felled tree
	rooiAfvalM3PerBoom      = 0.4
)

// hedge height scaling: tall hedges need ladders or a platform.
func haagHoogteFactor(hoogteM float64) float64 {
	switch {
	case hoogteM <= 1.0:
		return 0.8
	case hoogteM <= 1.8:
		return 1.0
	default:
		return 1.3
	}
}

// BerekenGazonOnderhoud computes mowing hours across the contracted visits,
// scaled by maintenance backlog and accessibility.
func BerekenGazonOnderhoud(in GazonOnderhoudInput, site SiteConditions, sc *ScopeContext) ([]QuantityFact, error) {
	if in.OppervlakteM2 < 0 {
		return nil, negatiefVeld(sc.Scope(), "oppervlakteM2")
	}
	if in.Beurten < 0 {
		return nil, negatiefVeld(sc.Scope(), "beurten")
	}
	if in.OppervlakteM2 == 0 {
		return nil, nil
	}

	beurten := in.Beurten
	if beurten == 0 {
		beurten = 1
	}

	norm, err := sc.NormUren(ActiviteitMaaien)
	if err != nil {
		return nil, err
	}

	uren := in.OppervlakteM2 * norm * site.Achterstalligheid * site.Bereikbaarheid * float64(beurten)
	return []QuantityFact{arbeidsFact("Gazononderhoud ("+strconv.Itoa(beurten)+" beurten)", uren)}, nil
}

// BerekenHaagOnderhoud computes trimming hours scaled by hedge height,
// backlog and accessibility, plus clippings haul-away when requested.
func BerekenHaagOnderhoud(in HaagOnderhoudInput, site SiteConditions, sc *ScopeContext) ([]QuantityFact, error) {
	if in.LengteM < 0 {
		return nil, negatiefVeld(sc.Scope(), "lengteM")
	}
	if in.HoogteM < 0 {
		return nil, negatiefVeld(sc.Scope(), "hoogteM")
	}
	if in.LengteM == 0 {
		return nil, nil
	}

	hoogte := in.HoogteM
	if hoogte == 0 {
		hoogte = 1.5
	}

	norm, err := sc.NormUren(ActiviteitSnoeien)
	if err != nil {
		return nil, err
	}

	uren := in.LengteM * haagHoogteFactor(hoogte) * norm * site.Achterstalligheid * site.Bereikbaarheid
	facts := []QuantityFact{arbeidsFact("Haag snoeien", uren)}

	if in.AfvoerSnoeisel {
		volume := RondVolume(in.LengteM * hoogte * snoeiselM3PerM2Haagvlak)
		if volume > 0 {
			facts = append(facts, materiaalFact("Afvoer snoeisel", ProductGroenafval, "m³", volume))
		}
	}

	return facts, nil
}

// BerekenBoomOnderhoud computes pruning or felling hours; felling adds stump
// grinding machine time and green-waste disposal.
func BerekenBoomOnderhoud(in BoomOnderhoudInput, site SiteConditions, sc *ScopeContext) ([]QuantityFact, error) {
	if in.Aantal < 0 {
		return nil, negatiefVeld(sc.Scope(), "aantal")
	}
	if in.Aantal == 0 {
		return nil, nil
	}
	if in.Ingreep != ActiviteitSnoeien && in.Ingreep != ActiviteitRooien {
		return nil, &ValidationError{Scope: sc.Scope(), Veld: "ingreep", Reden: "onbekende ingreep " + strconv.Quote(in.Ingreep)}
	}

	norm, err := sc.NormUren(in.Ingreep)
	if err != nil {
		return nil, err
	}

	uren := float64(in.Aantal) * norm * site.Achterstalligheid * site.Bereikbaarheid
	facts := []QuantityFact{arbeidsFact("Bomen "+in.Ingreep, uren)}

	if in.Ingreep == ActiviteitRooien {
		facts = append(facts,
			machineFact("Stobben frezen", float64(in.Aantal)*stobbenfreesUurPerBoom),
			materiaalFact("Afvoer groenafval", ProductGroenafval, "m³", RondVolume(float64(in.Aantal)*rooiAfvalM3PerBoom)),
		)
	}

	return facts, nil
}
