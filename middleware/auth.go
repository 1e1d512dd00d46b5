package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/asimmohammad/corptravel/utils"
)

// Context keys populated by JWTAuth.
const (
	ContextEmail = "email"
	ContextRole  = "role"
)

// JWTAuth validates the bearer token and stores the caller's identity on the
// request context.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		email, role, err := utils.IdentityFromToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set(ContextEmail, email)
		c.Set(ContextRole, role)
		c.Next()
	}
}

// OrgHeader requires the org-scoping header on authenticated calls.
func OrgHeader() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.TrimSpace(c.GetHeader("X-Org-External-Id")) == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing X-Org-External-Id header"})
			return
		}
		c.Next()
	}
}
