package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asimmohammad/corptravel/models"
)

// SpendReport returns the sandbox's canned monthly spend summary.
func (o *Org) SpendReport(c *gin.Context) {
	c.JSON(http.StatusOK, models.SpendReport{
		Total:    125432.55,
		Currency: "USD",
		Month:    "2025-10",
	})
}

// ComplianceReport returns the sandbox's canned compliance split.
func (o *Org) ComplianceReport(c *gin.Context) {
	c.JSON(http.StatusOK, models.ComplianceReport{
		InPolicyRate: 0.78,
		OOPRate:      0.22,
	})
}
