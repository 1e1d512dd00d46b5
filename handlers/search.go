package handlers

import (
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asimmohammad/corptravel/models"
	"github.com/asimmohammad/corptravel/services/policy"
)

// generateOffers produces the sandbox's canned result set: ten offers per
// mode, prices stepping up from 120, every fourth offer out of policy.
func generateOffers(mode models.Mode) []models.Offer {
	var label string
	switch mode {
	case models.ModeFlights:
		label = "Flight"
	case models.ModeHotels:
		label = "Hotel"
	default:
		label = "Car"
	}

	offers := make([]models.Offer, 0, 10)
	for i := 0; i < 10; i++ {
		status := models.PolicyIn
		if i%4 == 0 {
			status = models.PolicyOut
		}
		o := models.Offer{
			ID:           fmt.Sprintf("%s-%d", mode, i),
			Mode:         mode,
			Name:         fmt.Sprintf("%s %d", label, i+1),
			Price:        math.Round((120+float64(i)*12.5)*100) / 100,
			Currency:     "USD",
			PolicyStatus: status,
			Details:      map[string]interface{}{"rating": float64(3 + i%3)},
		}
		if mode == models.ModeFlights {
			o.Description = "NONSTOP • 2h 10m"
		}
		offers = append(offers, o)
	}
	return offers
}

// activeRuleSet compiles the most recently published policy, if any.
func (o *Org) activeRuleSet() (policy.RuleSet, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i := len(o.policies) - 1; i >= 0; i-- {
		if o.policies[i].Status == models.PolicyPublished {
			return policy.Compile(o.policies[i].Rules), true
		}
	}
	return policy.RuleSet{}, false
}

func (o *Org) search(c *gin.Context, mode models.Mode) {
	offers := generateOffers(mode)
	// When the org has a published policy, classification comes from its
	// rules instead of the canned pattern.
	if rs, ok := o.activeRuleSet(); ok {
		for i := range offers {
			offers[i].PolicyStatus = policy.ClassifyOffer(offers[i], rs)
		}
	}
	c.JSON(http.StatusOK, offers)
}

// SearchFlights handles GET /search/flights.
func (o *Org) SearchFlights(c *gin.Context) { o.search(c, models.ModeFlights) }

// SearchHotels handles GET /search/hotels.
func (o *Org) SearchHotels(c *gin.Context) { o.search(c, models.ModeHotels) }

// SearchCars handles GET /search/cars.
func (o *Org) SearchCars(c *gin.Context) { o.search(c, models.ModeCars) }
