package calc

// KantopsluitingInput describes a border scope: set edge restraints along a
// run of the chosen band type.
type KantopsluitingInput struct {
	LengteM  float64 `json:"lengteM"`
	BandType string  `json:"bandType"`
}

const ActiviteitPlaatsen = "plaatsen"

// BerekenKantopsluiting computes edge-restraint hours and the band material.
func BerekenKantopsluiting(in KantopsluitingInput, site SiteConditions, sc *ScopeContext) ([]QuantityFact, error) {
	if in.LengteM < 0 {
		return nil, negatiefVeld(sc.Scope(), "lengteM")
	}
	if in.LengteM == 0 {
		return nil, nil
	}
	if in.BandType == "" {
		return nil, &ValidationError{Scope: sc.Scope(), Veld: "bandType", Reden: "bandType is verplicht"}
	}

	norm, err := sc.NormUren(ActiviteitPlaatsen)
	if err != nil {
		return nil, err
	}

	uren := in.LengteM * norm * site.Bereikbaarheid
	return []QuantityFact{
		arbeidsFact("Kantopsluiting plaatsen", uren),
		materiaalFact("Opsluitband "+in.BandType, in.BandType, "m", RondVolume(in.LengteM)),
	}, nil
}
