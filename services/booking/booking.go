// Package booking submits the cart to the travel API and keeps the cart
// consistent with the outcome: cleared only after a confirmed success,
// untouched on failure so the user can retry.
package booking

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/asimmohammad/corptravel/models"
	"github.com/asimmohammad/corptravel/services/store"
)

// API is the slice of the travel client the submission flow needs.
type API interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (models.BookingResponse, error)
}

// SubmitError reports a failed booking submission.
type SubmitError struct {
	Code    string
	Message string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrEmptyCart is returned when Submit is called with nothing selected. The
// booking endpoint is never contacted in that case.
var ErrEmptyCart = &SubmitError{
	Code:    "emptyCart",
	Message: "cannot submit a booking with an empty cart",
}

// Flow drives a booking submission against the store's cart. TravelerEmail,
// when set, books on behalf of that traveler; the API rejects it unless the
// caller's role grants booking for others.
type Flow struct {
	API           API
	Store         *store.Store
	TravelerEmail string
	Logger        *zap.Logger
}

// Submit builds a booking request from the cart and submits it. On success it
// returns the confirmation id and clears the cart; on failure the cart is
// preserved unchanged and the error is surfaced to the caller.
func (f *Flow) Submit(ctx context.Context) (string, error) {
	cart := f.Store.Cart()
	if len(cart) == 0 {
		return "", ErrEmptyCart
	}

	req := models.BookingRequest{
		Items:         make([]models.BookingItem, 0, len(cart)),
		TravelerEmail: f.TravelerEmail,
	}
	for _, o := range cart {
		req.Items = append(req.Items, models.BookingItem{
			ID:       o.ID,
			Mode:     o.Mode,
			Name:     o.Name,
			Price:    o.Price,
			Currency: o.Currency,
		})
	}

	resp, err := f.API.CreateBooking(ctx, req)
	if err != nil {
		if f.Logger != nil {
			f.Logger.Warn("booking submission failed", zap.Int("items", len(req.Items)), zap.Error(err))
		}
		return "", fmt.Errorf("booking failed: %w", err)
	}

	f.Store.SetCart(nil)
	if f.Logger != nil {
		f.Logger.Info("booking confirmed", zap.String("confirmation", resp.ID))
	}
	return resp.ID, nil
}
