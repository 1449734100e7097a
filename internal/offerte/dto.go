package offerte

// Request shapes for the HTTP layer. The scope-data payload reuses the
// document's closed ScopeData type so unknown scopes cannot smuggle data in.

type createRequest struct {
	Klant          Klant          `json:"klant" validate:"required"`
	AlgemeneParams AlgemeneParams `json:"algemeneParams" validate:"required"`
	Scopes         []string       `json:"scopes" validate:"required,min=1,dive,required"`
	ScopeData      ScopeData      `json:"scopeData"`
}

type updateRequest struct {
	Klant          Klant          `json:"klant" validate:"required"`
	AlgemeneParams AlgemeneParams `json:"algemeneParams" validate:"required"`
	Scopes         []string       `json:"scopes" validate:"required,min=1,dive,required"`
	ScopeData      ScopeData      `json:"scopeData"`
}

type regelRequest struct {
	ID              string  `json:"id"`
	Scope           string  `json:"scope"`
	Omschrijving    string  `json:"omschrijving" validate:"required"`
	Eenheid         string  `json:"eenheid" validate:"required"`
	Aantal          float64 `json:"aantal" validate:"gt=0"`
	PrijsPerEenheid float64 `json:"prijsPerEenheid" validate:"gte=0"`
	Soort           string  `json:"soort" validate:"required,oneof=arbeid materiaal machine"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=concept definitief verzonden geaccepteerd afgewezen"`
}
