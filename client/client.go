// Package client wraps the corporate-travel REST API: auth, per-mode search,
// booking, trips, travelers, policies and reports. Authenticated calls carry
// the bearer token and the org-scoping header.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/asimmohammad/corptravel/config"
)

// APIError is a non-2xx response from the travel API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// IsAuthError reports whether the failure came from an auth rejection.
func (e *APIError) IsAuthError() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// Client talks to the travel API. Retries and request sequencing are caller
// concerns; the client performs exactly one attempt per call.
type Client struct {
	baseURL       string
	orgExternalID string
	httpClient    *http.Client
	token         string
}

// New builds a client for the given API base URL, scoped to an org.
func New(baseURL, orgExternalID string, timeout time.Duration) *Client {
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		orgExternalID: orgExternalID,
		httpClient:    &http.Client{Timeout: timeout},
	}
}

// FromConfig builds a client from the loaded application config: base URL,
// org scope, and request timeout.
func FromConfig() *Client {
	return New(
		config.AppConfig.APIBaseURL,
		config.AppConfig.OrgExternalID,
		time.Duration(config.AppConfig.HTTPTimeoutSeconds)*time.Second,
	)
}

// SetToken installs the bearer token used on authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the installed bearer token.
func (c *Client) Token() string {
	return c.token
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.orgExternalID != "" {
		req.Header.Set("X-Org-External-Id", c.orgExternalID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}
	return nil
}

// errorMessage pulls a human-readable message out of an error payload,
// whatever shape the server used.
func errorMessage(data []byte) string {
	var payload map[string]interface{}
	if err := json.Unmarshal(data, &payload); err == nil {
		for _, key := range []string{"message", "error", "detail"} {
			if v, ok := payload[key].(string); ok && v != "" {
				return v
			}
		}
	}
	msg := strings.TrimSpace(string(data))
	if msg == "" {
		msg = "request failed"
	}
	return msg
}
