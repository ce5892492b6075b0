package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// validates JWT if present but doesn't require it; the public clients
// also send identity in request bodies, so anonymous passes through
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")

		if len(parts) == 2 && parts[0] == "Bearer" {
			token := parts[1]
			claims, err := ValidateJWT(token)

			if err == nil {
				c.Set("user_id", claims.UserID)
				c.Set("user_email", claims.Email)
			}
		}

		c.Next()
	}
}

// resolves the requester's identity: a validated token wins over
// body-supplied fields
func Identity(c *gin.Context, bodyUserID, bodyEmail string) (string, string) {
	if userID := c.GetString("user_id"); userID != "" {
		return userID, c.GetString("user_email")
	}

	return bodyUserID, bodyEmail
}
