package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/auth"
	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/session"
)

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, sessions *session.Manager, authSvc *auth.Service) {
	// 1️⃣ Public routes (no middleware)
	SetupAuthRoutes(r, authSvc)
	SetupPublicRoutes(r, db)

	// 2️⃣ User routes (JWT protected)
	SetupUserRoutes(r, db, sessions)

	// 3️⃣ Order routes (JWT protected)
	SetupOrderRoutes(r, db, sessions)

	// 4️⃣ Back office (API key + role middleware)
	SetupAdminRoutes(r, db, sessions)
	SetupModerationRoutes(r, db)

	// 5️⃣ Function-style endpoints (chat, emails)
	SetupFunctionRoutes(r, db)
}
