package settings

import (
	"time"

	"github.com/groenwerk/groenwerk/internal/offerte/calc"
)

// Instellingen holds a contractor's pricing parameters. One row per owner;
// every recompute reads these.
type Instellingen struct {
	EigenaarID          int64              `json:"eigenaarId"`
	Uurtarief           float64            `json:"uurtarief"`
	Machinetarief       float64            `json:"machinetarief"`
	MargePercentage     float64            `json:"margePercentage"`
	BtwPercentage       float64            `json:"btwPercentage"`
	MachineKostenBucket calc.MachineBucket `json:"machineKostenBucket"`
	MachineUrenTellen   bool               `json:"machineUrenTellen"`
	OfferteVolgnummer   int64              `json:"offerteVolgnummer"`
	UpdatedAt           time.Time          `json:"updatedAt"`
}

// MachinePolicy returns the aggregation policy for machine-kind lines.
func (i Instellingen) MachinePolicy() calc.MachinePolicy {
	return calc.MachinePolicy{
		KostenBucket: i.MachineKostenBucket,
		UrenTellen:   i.MachineUrenTellen,
	}
}

// Standaard are the settings a new account starts with: Dutch standard VAT,
// a common landscaping margin, machine cost counted as labor.
func Standaard(eigenaarID int64) Instellingen {
	return Instellingen{
		EigenaarID:          eigenaarID,
		Uurtarief:           55,
		Machinetarief:       85,
		MargePercentage:     20,
		BtwPercentage:       21,
		MachineKostenBucket: calc.MachineInArbeid,
		MachineUrenTellen:   false,
	}
}
