package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/auth"
)

// ValidateToken checks the session JWT and stores the identity in the gin
// context for downstream handlers.
func ValidateToken(c *gin.Context) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	identity, err := auth.ParseJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	c.Set("user_id", identity.UserID)
	c.Set("role", identity.Role)
	c.Set("email", identity.Email)
	c.Next()
}

// RequireAdmin gates a route group to administrators.
func RequireAdmin(c *gin.Context) {
	identity := auth.Identity{UserID: c.GetString("user_id"), Role: c.GetString("role")}
	if !identity.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Administrator access required"})
		c.Abort()
		return
	}
	c.Next()
}

// RequireModerator gates a route group to moderators; admins pass too.
func RequireModerator(c *gin.Context) {
	identity := auth.Identity{UserID: c.GetString("user_id"), Role: c.GetString("role")}
	if !identity.IsModerator() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Moderator access required"})
		c.Abort()
		return
	}
	c.Next()
}
