package normhours

import "time"

// NormUur is a user-owned production norm: hours of labor per unit of work
// for one activity within one scope. There is no system-default tier here;
// every contractor maintains their own norms.
type NormUur struct {
	ID             int64     `json:"id"`
	EigenaarID     int64     `json:"eigenaarId"`
	Scope          string    `json:"scope"`
	Activiteit     string    `json:"activiteit"`
	UrenPerEenheid float64   `json:"urenPerEenheid"`
	Eenheid        string    `json:"eenheid"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
