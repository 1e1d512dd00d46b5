package models

// Trip status values are server-driven; the client fetches them and never
// computes transitions locally.
const (
	TripUpcoming  = "upcoming"
	TripCompleted = "completed"
	TripCanceled  = "canceled"
)

// Trip is a booked journey made of ordered segments.
type Trip struct {
	ID        string   `json:"id"`
	Traveler  string   `json:"traveler"`
	Segments  []string `json:"segments"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Status    string   `json:"status"`
}
