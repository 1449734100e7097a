package calc

import "math"

// HaagInput describes a hedge planting scope.
type HaagInput struct {
	LengteM         float64 `json:"lengteM"`
	PlantenPerMeter float64 `json:"plantenPerMeter"`
	HaagType        string  `json:"haagType"`
}

// Default planting density when none is given.
const standaardPlantenPerMeter = 4.0

const ActiviteitPlanten = "planten"

// BerekenHaag computes planting hours and the hedge plants, counted up to
// whole pieces.
func BerekenHaag(in HaagInput, site SiteConditions, sc *ScopeContext) ([]QuantityFact, error) {
	if in.LengteM < 0 {
		return nil, negatiefVeld(sc.Scope(), "lengteM")
	}
	if in.PlantenPerMeter < 0 {
		return nil, negatiefVeld(sc.Scope(), "plantenPerMeter")
	}
	if in.LengteM == 0 {
		return nil, nil
	}
	if in.HaagType == "" {
		return nil, &ValidationError{Scope: sc.Scope(), Veld: "haagType", Reden: "haagType is verplicht"}
	}

	dichtheid := in.PlantenPerMeter
	if dichtheid == 0 {
		dichtheid = standaardPlantenPerMeter
	}

	norm, err := sc.NormUren(ActiviteitPlanten)
	if err != nil {
		return nil, err
	}

	uren := in.LengteM * norm * site.Bereikbaarheid
	planten := math.Ceil(in.LengteM * dichtheid)
	return []QuantityFact{
		arbeidsFact("Haag planten", uren),
		materiaalFact("Haagplanten "+in.HaagType, in.HaagType, "st", planten),
	}, nil
}
