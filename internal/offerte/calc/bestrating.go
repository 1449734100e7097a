package calc

// BestratingInput describes a paving scope: lay a surface of the chosen
// material over a sand bed, on a given subsoil class.
type BestratingInput struct {
	OppervlakteM2    float64 `json:"oppervlakteM2"`
	Materiaal        string  `json:"materiaal"`
	OndergrondKlasse string  `json:"ondergrondKlasse"`
	ZandbedDikteCm   float64 `json:"zandbedDikteCm"`
}

// Compaction coverage: machine hours per m2 paved. Physical coefficient.
const trilplaatUurPerM2 = 0.015

const ActiviteitLeggen = "leggen"

// BerekenBestrating computes paving hours scaled by the subsoil correction
// factor and site accessibility, the paving material itself, the sand bed
// volume, and plate-compactor machine time.
func BerekenBestrating(in BestratingInput, site SiteConditions, sc *ScopeContext) ([]QuantityFact, error) {
	if in.OppervlakteM2 < 0 {
		return nil, negatiefVeld(sc.Scope(), "oppervlakteM2")
	}
	if in.ZandbedDikteCm < 0 {
		return nil, negatiefVeld(sc.Scope(), "zandbedDikteCm")
	}
	if in.OppervlakteM2 == 0 {
		return nil, nil
	}
	if in.Materiaal == "" {
		return nil, &ValidationError{Scope: sc.Scope(), Veld: "materiaal", Reden: "materiaal is verplicht"}
	}

	norm, err := sc.NormUren(ActiviteitLeggen)
	if err != nil {
		return nil, err
	}
	ondergrond, err := sc.Factor(ConditieOndergrond, in.OndergrondKlasse)
	if err != nil {
		return nil, err
	}

	uren := in.OppervlakteM2 * norm * ondergrond * site.Bereikbaarheid
	facts := []QuantityFact{
		arbeidsFact("Bestrating leggen", uren),
		materiaalFact("Bestratingsmateriaal "+in.Materiaal, in.Materiaal, "m²", RondVolume(in.OppervlakteM2)),
	}

	if in.ZandbedDikteCm > 0 {
		zand := RondVolume(in.OppervlakteM2 * in.ZandbedDikteCm / 100)
		if zand > 0 {
			facts = append(facts, materiaalFact("Zandbed", ProductStraatzand, "m³", zand))
		}
	}

	facts = append(facts, machineFact("Trillen en afwerken", in.OppervlakteM2*trilplaatUurPerM2))

	return facts, nil
}
