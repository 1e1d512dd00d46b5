// Package search turns user-entered criteria into normalized queries for the
// travel API and commits results to the store through the sequence guard.
package search

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/asimmohammad/corptravel/models"
	"github.com/asimmohammad/corptravel/services/store"
)

// API is the slice of the travel client the query builder needs.
type API interface {
	Search(ctx context.Context, mode models.Mode, query url.Values) ([]models.Offer, error)
}

// ValidationError reports a missing required field, caught before any network
// call is made.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// BuildQuery validates the params for their mode and produces the query
// string for the search endpoint. Fields irrelevant to the mode are never
// sent as constraints.
func BuildQuery(p models.SearchParams) (url.Values, error) {
	q := url.Values{}
	switch p.Mode {
	case models.ModeFlights:
		for _, f := range []struct{ name, value string }{
			{"origin", p.Origin},
			{"destination", p.Destination},
			{"departDate", p.DepartDate},
		} {
			if strings.TrimSpace(f.value) == "" {
				return nil, &ValidationError{Field: f.name}
			}
			q.Set(f.name, strings.TrimSpace(f.value))
		}
		if p.ReturnDate != "" {
			q.Set("returnDate", p.ReturnDate)
		}
		if p.Travelers > 0 {
			q.Set("travelers", strconv.Itoa(p.Travelers))
		}
	case models.ModeHotels:
		for _, f := range []struct{ name, value string }{
			{"city", p.City},
			{"checkIn", p.CheckIn},
			{"checkOut", p.CheckOut},
		} {
			if strings.TrimSpace(f.value) == "" {
				return nil, &ValidationError{Field: f.name}
			}
			q.Set(f.name, strings.TrimSpace(f.value))
		}
	case models.ModeCars:
		if strings.TrimSpace(p.City) == "" {
			return nil, &ValidationError{Field: "city"}
		}
		if strings.TrimSpace(p.CheckIn) == "" {
			return nil, &ValidationError{Field: "checkIn"}
		}
		if strings.TrimSpace(p.CheckOut) == "" {
			return nil, &ValidationError{Field: "checkOut"}
		}
		q.Set("city", strings.TrimSpace(p.City))
		q.Set("pickup", strings.TrimSpace(p.CheckIn))
		q.Set("dropoff", strings.TrimSpace(p.CheckOut))
	default:
		return nil, &ValidationError{Field: "mode"}
	}
	return q, nil
}

// Run validates, dispatches the search, and on success commits the results
// and their params to the store in one step. Nothing in shared state is
// touched until results return; a response superseded by a later request is
// dropped whole by the sequence guard, params included. The caller decides
// whether to retry on failure.
func Run(ctx context.Context, api API, st *store.Store, p models.SearchParams) ([]models.Offer, error) {
	q, err := BuildQuery(p)
	if err != nil {
		return nil, err
	}

	seq := st.NextSearchSeq()
	offers, err := api.Search(ctx, p.Mode, q)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	st.ApplyResults(seq, p, offers)
	return offers, nil
}
