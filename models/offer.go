package models

// Mode identifies which travel vertical an offer or search belongs to.
type Mode string

const (
	ModeFlights Mode = "flights"
	ModeHotels  Mode = "hotels"
	ModeCars    Mode = "cars"
)

// PolicyStatus marks an offer as compliant or not with the org's travel policy.
type PolicyStatus string

const (
	PolicyIn  PolicyStatus = "in"
	PolicyOut PolicyStatus = "out"
)

// Offer is a bookable travel option returned by search. Offers are immutable
// after creation; selecting one copies it into the cart.
type Offer struct {
	ID           string                 `json:"id"`
	Mode         Mode                   `json:"mode"`
	Name         string                 `json:"name"`
	Description  string                 `json:"description,omitempty"`
	Price        float64                `json:"price"`
	Currency     string                 `json:"currency"`
	PolicyStatus PolicyStatus           `json:"policyStatus"`
	Details      map[string]interface{} `json:"details,omitempty"`
}
