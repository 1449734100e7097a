package offerte

import (
	"time"

	"github.com/groenwerk/groenwerk/internal/offerte/calc"
)

// Status is the quote's lifecycle state.
type Status string

const (
	StatusConcept      Status = "concept"
	StatusDefinitief   Status = "definitief"
	StatusVerzonden    Status = "verzonden"
	StatusGeaccepteerd Status = "geaccepteerd"
	StatusAfgewezen    Status = "afgewezen"
)

// statusOvergangen lists the allowed lifecycle transitions.
var statusOvergangen = map[Status][]Status{
	StatusConcept:    {StatusDefinitief},
	StatusDefinitief: {StatusConcept, StatusVerzonden},
	StatusVerzonden:  {StatusGeaccepteerd, StatusAfgewezen},
}

// KanNaar reports whether the transition from s to doel is allowed.
func (s Status) KanNaar(doel Status) bool {
	for _, t := range statusOvergangen[s] {
		if t == doel {
			return true
		}
	}
	return false
}

// Geldig reports whether s is a known status.
func (s Status) Geldig() bool {
	switch s {
	case StatusConcept, StatusDefinitief, StatusVerzonden, StatusGeaccepteerd, StatusAfgewezen:
		return true
	}
	return false
}

// Klant is the customer block on a quote.
type Klant struct {
	Naam   string `json:"naam"`
	Adres  string `json:"adres,omitempty"`
	Plaats string `json:"plaats,omitempty"`
	Email  string `json:"email,omitempty"`
}

// AlgemeneParams are the site-wide inputs every scope shares.
type AlgemeneParams struct {
	Bereikbaarheid    string `json:"bereikbaarheid"`
	Achterstalligheid string `json:"achterstalligheid"`
}

// ScopeData is the closed set of per-scope inputs: one optional field per
// scope, filled only for selected scopes. The assembler picks the field
// matching each selected scope id.
type ScopeData struct {
	Grondwerk      *calc.GrondwerkInput      `json:"grondwerk,omitempty"`
	Bestrating     *calc.BestratingInput     `json:"bestrating,omitempty"`
	Kantopsluiting *calc.KantopsluitingInput `json:"kantopsluiting,omitempty"`
	Gazon          *calc.GazonInput          `json:"gazon,omitempty"`
	Houtwerk       *calc.HoutwerkInput       `json:"houtwerk,omitempty"`
	Verlichting    *calc.VerlichtingInput    `json:"verlichting,omitempty"`
	Haag           *calc.HaagInput           `json:"haag,omitempty"`
	Bomen          *calc.BomenInput          `json:"bomen,omitempty"`
	Overig         *calc.OverigInput         `json:"overig,omitempty"`
	GazonOnderhoud *calc.GazonOnderhoudInput `json:"gazononderhoud,omitempty"`
	HaagOnderhoud  *calc.HaagOnderhoudInput  `json:"haagonderhoud,omitempty"`
	BoomOnderhoud  *calc.BoomOnderhoudInput  `json:"boomonderhoud,omitempty"`
}

// Offerte is the quote document. Regels and Totalen are derived: recompute
// replaces them wholesale from the inputs, keeping only manual lines.
type Offerte struct {
	ID             int64          `json:"id"`
	Nummer         string         `json:"nummer"`
	EigenaarID     int64          `json:"eigenaarId"`
	Status         Status         `json:"status"`
	Klant          Klant          `json:"klant"`
	AlgemeneParams AlgemeneParams `json:"algemeneParams"`
	Scopes         []string       `json:"scopes"`
	ScopeData      ScopeData      `json:"scopeData"`
	Regels         []calc.Regel   `json:"regels"`
	Totalen        calc.Totalen   `json:"totalen"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// ListFilter narrows and pages List results. A zero Limit falls back to the
// default page size.
type ListFilter struct {
	Status Status
	Limit  int
	Offset int
}

// Versie is a frozen snapshot of a sent quote's lines and totals.
type Versie struct {
	ID        int64        `json:"id"`
	OfferteID int64        `json:"offerteId"`
	Versie    int          `json:"versie"`
	Regels    []calc.Regel `json:"regels"`
	Totalen   calc.Totalen `json:"totalen"`
	CreatedAt time.Time    `json:"createdAt"`
}
