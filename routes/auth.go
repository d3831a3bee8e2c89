package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, authSvc *auth.Service) {
	authGroup := r.Group("/auth")
	{
		// Provider ID-token login; merges any guest cart into the account.
		authGroup.POST("/login", authSvc.LoginHandler())

		// Anonymous browsing identity with its own session namespace.
		authGroup.POST("/guest", authSvc.CreateGuestHandler())

		authGroup.POST("/logout", authSvc.LogoutHandler())
	}
}
