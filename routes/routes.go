package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/asimmohammad/corptravel/handlers"
	"github.com/asimmohammad/corptravel/middleware"
	"github.com/asimmohammad/corptravel/services/capability"
)

// RegisterRoutes centralizes registration of all sandbox endpoints and their
// middleware.
func RegisterRoutes(r *gin.Engine, org *handlers.Org) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Org-External-Id"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/login", org.Login)
		auth.POST("/register", org.Register)
		auth.POST("/initiate-registration", org.InitiateRegistration)
		auth.POST("/token", org.Token)
	}

	// Everything below requires a bearer token and the org-scoping header.
	api := r.Group("")
	api.Use(middleware.JWTAuth(), middleware.OrgHeader())
	{
		search := api.Group("/search")
		search.Use(middleware.RequireCapability(capability.OpSearch))
		{
			search.GET("/flights", org.SearchFlights)
			search.GET("/hotels", org.SearchHotels)
			search.GET("/cars", org.SearchCars)
		}

		api.POST("/booking", middleware.RequireCapability(capability.OpBookSelf), org.CreateBooking)
		api.GET("/trips", org.ListTrips)
		api.GET("/policies", org.ListPolicies)

		travelers := api.Group("/travelers")
		travelers.Use(middleware.RequireCapability(capability.OpManageTravelers))
		{
			travelers.GET("", org.ListTravelers)
			travelers.GET("/:id", org.GetTraveler)
		}

		policies := api.Group("/policies")
		policies.Use(middleware.RequireCapability(capability.OpManagePolicies))
		{
			policies.POST("", org.CreatePolicy)
			policies.PUT("/:id/rules", org.UpdatePolicyRules)
			policies.POST("/:id/publish", org.PublishPolicy)
		}

		reports := api.Group("/reports")
		reports.Use(middleware.RequireCapability(capability.OpViewReports))
		{
			reports.GET("/spend", org.SpendReport)
			reports.GET("/compliance", org.ComplianceReport)
		}
	}
}
