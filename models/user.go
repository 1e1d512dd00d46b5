package models

// Role determines which operations a signed-in user may perform.
type Role string

const (
	RoleOrgAdmin      Role = "OrgAdmin"
	RoleTraveler      Role = "Traveler"
	RoleArranger      Role = "Arranger"
	RoleTravelManager Role = "TravelManager"
)

// User is the authenticated session identity: email, role and an opaque
// bearer token. Created on login, destroyed on logout.
type User struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Token string `json:"token"`
}

// Traveler is a bookable person in the org directory, as returned by the
// travelers endpoint.
type Traveler struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Email   string            `json:"email"`
	Loyalty map[string]string `json:"loyalty,omitempty"`
}
