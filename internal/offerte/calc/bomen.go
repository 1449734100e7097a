package calc

import "strconv"

// BomenInput describes a tree planting scope. The plant-size class is a
// physical scaling (bigger root balls take longer and need a ground drill),
// distinct from the business correction factors.
type BomenInput struct {
	Aantal         int    `json:"aantal"`
	Soort          string `json:"soort"`
	PlantmaatKlasse string `json:"plantmaatKlasse"`
}

var plantmaatFactoren = map[string]float64{
	"licht":  0.8,
	"middel": 1.0,
	"zwaar":  1.5,
}

// Ground drill time per tree for the heavy class.
const grondboorUurPerBoom = 0.5

// BerekenBomen computes planting hours per tree, scaled by the plant-size
// class and site accessibility.
func BerekenBomen(in BomenInput, site SiteConditions, sc *ScopeContext) ([]QuantityFact, error) {
	if in.Aantal < 0 {
		return nil, negatiefVeld(sc.Scope(), "aantal")
	}
	if in.Aantal == 0 {
		return nil, nil
	}
	if in.Soort == "" {
		return nil, &ValidationError{Scope: sc.Scope(), Veld: "soort", Reden: "soort is verplicht"}
	}

	maat, ok := plantmaatFactoren[in.PlantmaatKlasse]
	if !ok {
		return nil, &ValidationError{Scope: sc.Scope(), Veld: "plantmaatKlasse", Reden: "onbekende plantmaatklasse " + strconv.Quote(in.PlantmaatKlasse)}
	}

	norm, err := sc.NormUren(ActiviteitPlanten)
	if err != nil {
		return nil, err
	}

	uren := float64(in.Aantal) * norm * maat * site.Bereikbaarheid
	facts := []QuantityFact{
		arbeidsFact("Bomen planten", uren),
		materiaalFact("Boom "+in.Soort, in.Soort, "st", float64(in.Aantal)),
	}

	if in.PlantmaatKlasse == "zwaar" {
		facts = append(facts, machineFact("Grondboor inzet", float64(in.Aantal)*grondboorUurPerBoom))
	}

	return facts, nil
}
