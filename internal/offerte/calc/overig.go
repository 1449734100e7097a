package calc

// OverigInput covers work that fits no other scope: directly entered hours,
// optionally with a catalog product.
type OverigInput struct {
	Omschrijving  string  `json:"omschrijving"`
	Uren          float64 `json:"uren"`
	Product       string  `json:"product,omitempty"`
	ProductAantal float64 `json:"productAantal,omitempty"`
}

// BerekenOverig passes the entered hours through the quarter-hour rounding
// boundary; no correction factors apply to free-form work.
func BerekenOverig(in OverigInput, _ SiteConditions, sc *ScopeContext) ([]QuantityFact, error) {
	if in.Uren < 0 {
		return nil, negatiefVeld(sc.Scope(), "uren")
	}
	if in.ProductAantal < 0 {
		return nil, negatiefVeld(sc.Scope(), "productAantal")
	}

	var facts []QuantityFact
	if in.Uren > 0 {
		if in.Omschrijving == "" {
			return nil, &ValidationError{Scope: sc.Scope(), Veld: "omschrijving", Reden: "omschrijving is verplicht"}
		}
		facts = append(facts, arbeidsFact(in.Omschrijving, in.Uren))
	}
	if in.Product != "" && in.ProductAantal > 0 {
		facts = append(facts, materiaalFact("Materiaal "+in.Product, in.Product, "st", RondVolume(in.ProductAantal)))
	}
	return facts, nil
}
