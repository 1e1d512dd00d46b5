package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/asimmohammad/corptravel/middleware"
	"github.com/asimmohammad/corptravel/models"
	"github.com/asimmohammad/corptravel/services/capability"
	"github.com/asimmohammad/corptravel/utils"
)

// CreateBooking confirms a booking for the submitted items and records the
// resulting trip. Booking on behalf of another traveler requires the
// book-for-other capability; the trip then lands on that traveler's itinerary.
func (o *Org) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if len(req.Items) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "empty booking", "at least one item is required")
		return
	}

	traveler := c.GetString(middleware.ContextEmail)
	if req.TravelerEmail != "" && !strings.EqualFold(req.TravelerEmail, traveler) {
		role := models.Role(c.GetString(middleware.ContextRole))
		if err := capability.Require(role, capability.OpBookForOther); err != nil {
			utils.JSONError(c, http.StatusForbidden, "booking on behalf not permitted", err.Error())
			return
		}
		traveler = req.TravelerEmail
	}

	confirmation := confirmationID()

	segments := make([]string, 0, len(req.Items))
	for _, item := range req.Items {
		segments = append(segments, item.Name)
	}
	start := time.Now()
	trip := models.Trip{
		ID:        uuid.New().String(),
		Traveler:  traveler,
		Segments:  segments,
		StartDate: start.Format("2006-01-02"),
		EndDate:   start.AddDate(0, 0, 3).Format("2006-01-02"),
		Status:    models.TripUpcoming,
	}

	o.mu.Lock()
	o.trips[traveler] = append(o.trips[traveler], trip)
	o.mu.Unlock()

	c.JSON(http.StatusOK, models.BookingResponse{ID: confirmation})
}

// confirmationID mints identifiers like CONF3F2A9C01D4E5B687.
func confirmationID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "CONF" + strings.ToUpper(uuid.New().String()[:16])
	}
	return "CONF" + strings.ToUpper(hex.EncodeToString(buf))
}
