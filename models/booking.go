package models

// BookingItem references a cart offer in a booking request.
type BookingItem struct {
	ID       string  `json:"id"`
	Mode     Mode    `json:"mode"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
}

// BookingRequest is the payload submitted to the booking endpoint.
// TravelerEmail books on behalf of that traveler; empty means the caller
// books for themselves.
type BookingRequest struct {
	Items         []BookingItem `json:"items"`
	TravelerEmail string        `json:"travelerEmail,omitempty"`
}

// BookingResponse carries the confirmation identifier for a successful booking.
type BookingResponse struct {
	ID string `json:"id"`
}
