package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/asimmohammad/corptravel/models"
)

// Login exchanges credentials for a bearer token and installs it on the
// client for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) (models.LoginResponse, error) {
	var resp models.LoginResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &resp); err != nil {
		return models.LoginResponse{}, err
	}
	c.SetToken(resp.AccessToken)
	return resp, nil
}

// Register creates an account and installs the returned token.
func (c *Client) Register(ctx context.Context, email, password string) (models.LoginResponse, error) {
	var resp models.LoginResponse
	req := models.RegisterRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &resp); err != nil {
		return models.LoginResponse{}, err
	}
	c.SetToken(resp.AccessToken)
	return resp, nil
}

// InitiateRegistration reports whether the email already has an account.
func (c *Client) InitiateRegistration(ctx context.Context, email string) (bool, error) {
	var resp models.InitiateRegistrationResponse
	req := models.InitiateRegistrationRequest{Email: email}
	if err := c.do(ctx, http.MethodPost, "/auth/initiate-registration", nil, req, &resp); err != nil {
		return false, err
	}
	return resp.Existing, nil
}

// APIToken exchanges API credentials for a bearer token and installs it.
func (c *Client) APIToken(ctx context.Context, apiKey, apiSecret string) (models.LoginResponse, error) {
	var resp models.LoginResponse
	req := models.TokenRequest{APIKey: apiKey, APISecret: apiSecret}
	if err := c.do(ctx, http.MethodPost, "/auth/token", nil, req, &resp); err != nil {
		return models.LoginResponse{}, err
	}
	c.SetToken(resp.AccessToken)
	return resp, nil
}

// Search fetches offers for a mode using an already-built query. Query
// construction and validation live in the search service.
func (c *Client) Search(ctx context.Context, mode models.Mode, query url.Values) ([]models.Offer, error) {
	var offers []models.Offer
	if err := c.do(ctx, http.MethodGet, "/search/"+string(mode), query, nil, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// CreateBooking submits a booking request and returns the confirmation.
func (c *Client) CreateBooking(ctx context.Context, req models.BookingRequest) (models.BookingResponse, error) {
	var resp models.BookingResponse
	if err := c.do(ctx, http.MethodPost, "/booking", nil, req, &resp); err != nil {
		return models.BookingResponse{}, err
	}
	return resp, nil
}

// ListTrips returns the caller's trips.
func (c *Client) ListTrips(ctx context.Context) ([]models.Trip, error) {
	var trips []models.Trip
	if err := c.do(ctx, http.MethodGet, "/trips", nil, nil, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// ListTravelers returns the org traveler directory.
func (c *Client) ListTravelers(ctx context.Context) ([]models.Traveler, error) {
	var travelers []models.Traveler
	if err := c.do(ctx, http.MethodGet, "/travelers", nil, nil, &travelers); err != nil {
		return nil, err
	}
	return travelers, nil
}

// GetTraveler returns a single traveler by id.
func (c *Client) GetTraveler(ctx context.Context, id string) (models.Traveler, error) {
	var traveler models.Traveler
	if err := c.do(ctx, http.MethodGet, "/travelers/"+id, nil, nil, &traveler); err != nil {
		return models.Traveler{}, err
	}
	return traveler, nil
}

// ListPolicies returns the org's policies.
func (c *Client) ListPolicies(ctx context.Context) ([]models.Policy, error) {
	var policies []models.Policy
	if err := c.do(ctx, http.MethodGet, "/policies", nil, nil, &policies); err != nil {
		return nil, err
	}
	return policies, nil
}

// CreatePolicy creates a draft policy.
func (c *Client) CreatePolicy(ctx context.Context, req models.PolicyCreate) (models.Policy, error) {
	var p models.Policy
	if err := c.do(ctx, http.MethodPost, "/policies", nil, req, &p); err != nil {
		return models.Policy{}, err
	}
	return p, nil
}

// PublishPolicy publishes a draft policy. The transition is one-way.
func (c *Client) PublishPolicy(ctx context.Context, id int) (models.Policy, error) {
	var p models.Policy
	path := fmt.Sprintf("/policies/%d/publish", id)
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &p); err != nil {
		return models.Policy{}, err
	}
	return p, nil
}

// SpendReport fetches the monthly spend summary.
func (c *Client) SpendReport(ctx context.Context) (models.SpendReport, error) {
	var r models.SpendReport
	if err := c.do(ctx, http.MethodGet, "/reports/spend", nil, nil, &r); err != nil {
		return models.SpendReport{}, err
	}
	return r, nil
}

// ComplianceReport fetches the policy-compliance summary.
func (c *Client) ComplianceReport(ctx context.Context) (models.ComplianceReport, error) {
	var r models.ComplianceReport
	if err := c.do(ctx, http.MethodGet, "/reports/compliance", nil, nil, &r); err != nil {
		return models.ComplianceReport{}, err
	}
	return r, nil
}
