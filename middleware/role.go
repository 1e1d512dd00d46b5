package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asimmohammad/corptravel/models"
	"github.com/asimmohammad/corptravel/services/capability"
)

// RequireCapability rejects callers whose role is not granted the operation.
// Must run after JWTAuth.
func RequireCapability(op capability.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := models.Role(c.GetString(ContextRole))
		if err := capability.Require(role, op); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.Next()
	}
}
