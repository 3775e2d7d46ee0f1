package middleware

import (
	"net/http"
	"strings"

	userRepo "lumiere/database/repository/user"
	"lumiere/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and resolves the session to a
// user document. The token's hash must still match the one stored on the
// document, so revocation takes effect immediately.
func AuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		tokenHash := utils.HashToken(tokenString)
		if sess, ok := utils.GetCachedAuthSession(tokenHash); ok {
			c.Set("userID", sess.UserID)
			c.Set("isAdmin", sess.IsAdmin)
			c.Next()
			return
		}

		usr, err := users.GetByTokenHash(tokenHash)
		if err != nil {
			// Lookup failure is not "not signed in"; do not let a transient
			// error classify the caller as anonymous.
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Could not verify session"})
			return
		}
		if usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session revoked or expired"})
			return
		}

		utils.CacheAuthSession(tokenHash, &utils.AuthSession{UserID: usr.ID, IsAdmin: usr.IsAdmin})

		c.Set("userID", usr.ID)
		c.Set("isAdmin", usr.IsAdmin)
		c.Next()
	}
}
