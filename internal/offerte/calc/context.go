package calc

import "strconv"

// Condition types consulted by the calculators. The business multipliers for
// these live in the correction-factor table; the seed catalog is owned by the
// rates layer.
const (
	ConditieBereikbaarheid    = "bereikbaarheid"
	ConditieAchterstalligheid = "achterstalligheid"
	ConditieDiepte            = "diepte"
	ConditieComplexiteit      = "complexiteit"
	ConditieOndergrond        = "ondergrond"
)

// SiteConditions carries the two site-wide multipliers, already resolved
// against the correction-factor table for the acting user.
type SiteConditions struct {
	Bereikbaarheid    float64
	Achterstalligheid float64
}

// NormUur is a configured hours-per-unit rate for an activity within a scope.
type NormUur struct {
	Scope          string
	Activiteit     string
	UrenPerEenheid float64
	Eenheid        string
}

// ProductPrijs is the slice of the product catalog the engine needs.
type ProductPrijs struct {
	Naam              string
	Verkoopprijs      float64
	VerliesPercentage float64 // fraction in [0,1)
	Eenheid           string
}

// PrijsPerBruikbareEenheid compensates the sale price for cutting and
// breakage loss.
func (p ProductPrijs) PrijsPerBruikbareEenheid() float64 {
	if p.VerliesPercentage <= 0 || p.VerliesPercentage >= 1 {
		return p.Verkoopprijs
	}
	return p.Verkoopprijs / (1 - p.VerliesPercentage)
}

// RateContext bundles the rate tables for one recompute run. The assembler
// loads everything in one batch up front; calculators only do map lookups.
type RateContext struct {
	factoren  map[string]map[string]float64 // conditie type -> waarde -> factor
	normUren  map[string]NormUur            // scope + "/" + activiteit
	producten map[string]ProductPrijs       // naam
}

// NewRateContext builds a rate context from pre-fetched tables.
func NewRateContext(factoren map[string]map[string]float64, normUren []NormUur, producten []ProductPrijs) *RateContext {
	rc := &RateContext{
		factoren:  factoren,
		normUren:  make(map[string]NormUur, len(normUren)),
		producten: make(map[string]ProductPrijs, len(producten)),
	}
	if rc.factoren == nil {
		rc.factoren = map[string]map[string]float64{}
	}
	for _, n := range normUren {
		rc.normUren[n.Scope+"/"+n.Activiteit] = n
	}
	for _, p := range producten {
		rc.producten[p.Naam] = p
	}
	return rc
}

// Product looks a catalog entry up by name.
func (rc *RateContext) Product(naam string) (ProductPrijs, bool) {
	p, ok := rc.producten[naam]
	return p, ok
}

// VoorScope binds the context to one scope so lookups fail with errors that
// name the scope.
func (rc *RateContext) VoorScope(scope string) *ScopeContext {
	return &ScopeContext{scope: scope, rc: rc}
}

// ScopeContext is the scope-bound resolver handed to a calculator.
type ScopeContext struct {
	scope string
	rc    *RateContext
}

// Scope returns the bound scope identifier.
func (sc *ScopeContext) Scope() string {
	return sc.scope
}

// Factor resolves a correction factor. A value missing at both tiers is a
// configuration typo the user must see, never a silent 1.0.
func (sc *ScopeContext) Factor(conditieType, waarde string) (float64, error) {
	if waarden, ok := sc.rc.factoren[conditieType]; ok {
		if f, ok := waarden[waarde]; ok {
			return f, nil
		}
	}
	return 0, &ValidationError{
		Scope: sc.scope,
		Veld:  conditieType,
		Reden: "geen correctiefactor voor waarde " + strconv.Quote(waarde),
	}
}

// NormUren resolves the hours-per-unit norm for an activity in this scope.
func (sc *ScopeContext) NormUren(activiteit string) (float64, error) {
	n, ok := sc.rc.normUren[sc.scope+"/"+activiteit]
	if !ok {
		return 0, &ConfigurationError{Scope: sc.scope, Soort: "normuur", Sleutel: sc.scope + "/" + activiteit}
	}
	return n.UrenPerEenheid, nil
}
