package models

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned by both login and register.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Role        Role   `json:"role"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type InitiateRegistrationRequest struct {
	Email string `json:"email"`
}

// InitiateRegistrationResponse reports whether the email already has an account.
type InitiateRegistrationResponse struct {
	Existing bool `json:"existing"`
}

// TokenRequest exchanges API credentials for a bearer token.
type TokenRequest struct {
	APIKey    string `json:"api_key"`
	APISecret string `json:"api_secret"`
}
