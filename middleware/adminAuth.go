package middleware

import (
	"net/http"

	"lumiere/utils"

	"github.com/gin-gonic/gin"
)

// AdminOnly gates a route group on the isAdmin flag of the authenticated
// user's document. It must run after AuthMiddleware, which resolves the
// session; a request that never went through authentication is rejected as
// unauthorized rather than silently classified as non-admin.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		flag, exists := c.Get("isAdmin")
		if !exists {
			// Classification unknown: the session was never resolved.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		isAdmin, ok := flag.(bool)
		if !ok || !isAdmin {
			utils.AuditDenied(c, "admin access", nil)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
