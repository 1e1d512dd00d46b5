package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/asimmohammad/corptravel/middleware"
	"github.com/asimmohammad/corptravel/models"
	"github.com/asimmohammad/corptravel/utils"
)

// ListTrips returns the caller's trips in booking order.
func (o *Org) ListTrips(c *gin.Context) {
	traveler := c.GetString(middleware.ContextEmail)
	o.mu.Lock()
	trips := append([]models.Trip(nil), o.trips[traveler]...)
	o.mu.Unlock()
	if trips == nil {
		trips = []models.Trip{}
	}
	c.JSON(http.StatusOK, trips)
}

// ListTravelers returns the org directory.
func (o *Org) ListTravelers(c *gin.Context) {
	o.mu.Lock()
	travelers := make([]models.Traveler, 0, len(o.users))
	for email := range o.users {
		travelers = append(travelers, travelerFromEmail(email))
	}
	o.mu.Unlock()
	c.JSON(http.StatusOK, travelers)
}

// GetTraveler returns a single directory entry; travelers are keyed by email.
func (o *Org) GetTraveler(c *gin.Context) {
	id := c.Param("id")
	o.mu.Lock()
	_, ok := o.users[id]
	o.mu.Unlock()
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "traveler not found", "")
		return
	}
	c.JSON(http.StatusOK, travelerFromEmail(id))
}

func travelerFromEmail(email string) models.Traveler {
	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return models.Traveler{
		ID:      email,
		Name:    name,
		Email:   email,
		Loyalty: map[string]string{"air": "", "hotel": "", "car": ""},
	}
}
