package middleware

import (
	"net/http"
	"strings"

	"onboardify/utils"

	"github.com/gin-gonic/gin"
)

// StaffAuthMiddleware protects portal endpoints used by internal staff.
// Tokens are HS256 JWTs issued by the identity collaborator.
func StaffAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		staffID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("staffID", staffID)
		c.Next()
	}
}
