package catalog

import "time"

// Product is a user-owned catalog entry. The loss percentage is a fraction
// in [0,1) covering cutting waste and breakage; pricing always uses the
// loss-adjusted price per usable unit.
type Product struct {
	ID                int64     `json:"id"`
	EigenaarID        int64     `json:"eigenaarId"`
	Naam              string    `json:"naam"`
	Categorie         string    `json:"categorie"`
	Inkoopprijs       float64   `json:"inkoopprijs"`
	Verkoopprijs      float64   `json:"verkoopprijs"`
	Eenheid           string    `json:"eenheid"`
	VerliesPercentage float64   `json:"verliesPercentage"`
	Actief            bool      `json:"actief"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
