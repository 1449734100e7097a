package calc

// VerlichtingInput describes a garden lighting scope: mount fixtures and lay
// low-voltage ground cable.
type VerlichtingInput struct {
	AantalArmaturen int     `json:"aantalArmaturen"`
	Armatuur        string  `json:"armatuur"`
	KabelLengteM    float64 `json:"kabelLengteM"`
}

const (
	ActiviteitArmatuurMonteren = "armatuur monteren"
	ActiviteitKabelLeggen      = "kabel leggen"
)

// BerekenVerlichting emits separate labor facts for fixture mounting and
// cable laying; each is quarter-rounded independently at emission.
func BerekenVerlichting(in VerlichtingInput, site SiteConditions, sc *ScopeContext) ([]QuantityFact, error) {
	if in.AantalArmaturen < 0 {
		return nil, negatiefVeld(sc.Scope(), "aantalArmaturen")
	}
	if in.KabelLengteM < 0 {
		return nil, negatiefVeld(sc.Scope(), "kabelLengteM")
	}
	if in.AantalArmaturen == 0 && in.KabelLengteM == 0 {
		return nil, nil
	}

	var facts []QuantityFact

	if in.AantalArmaturen > 0 {
		if in.Armatuur == "" {
			return nil, &ValidationError{Scope: sc.Scope(), Veld: "armatuur", Reden: "armatuur is verplicht"}
		}
		norm, err := sc.NormUren(ActiviteitArmatuurMonteren)
		if err != nil {
			return nil, err
		}
		facts = append(facts,
			arbeidsFact("Armaturen monteren", float64(in.AantalArmaturen)*norm*site.Bereikbaarheid),
			materiaalFact("Armatuur "+in.Armatuur, in.Armatuur, "st", float64(in.AantalArmaturen)),
		)
	}

	if in.KabelLengteM > 0 {
		norm, err := sc.NormUren(ActiviteitKabelLeggen)
		if err != nil {
			return nil, err
		}
		facts = append(facts,
			arbeidsFact("Grondkabel leggen", in.KabelLengteM*norm*site.Bereikbaarheid),
			materiaalFact("Grondkabel", ProductGrondkabel, "m", RondVolume(in.KabelLengteM)),
		)
	}

	return facts, nil
}
