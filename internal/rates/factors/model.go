package factors

import "time"

// CorrectieFactor is a business multiplier keyed by condition type and value.
// The table is two-tier: a record without owner is a system default, a record
// with an owner is that user's override for the same (type, value) pair. Only
// the resolver in this package is allowed to conflate the two tiers; every
// repository query names the tier it wants.
type CorrectieFactor struct {
	ID             int64     `json:"id"`
	EigenaarID     *int64    `json:"eigenaarId,omitempty"`
	ConditieType   string    `json:"conditieType"`
	ConditieWaarde string    `json:"conditieWaarde"`
	Factor         float64   `json:"factor"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// IsSysteemStandaard reports whether the record belongs to the default tier.
func (f CorrectieFactor) IsSysteemStandaard() bool {
	return f.EigenaarID == nil
}
