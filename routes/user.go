package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/jayastibts-sketch/smart-furniture-shop-sub001/controllers/cart"
	reviewControllers "github.com/jayastibts-sketch/smart-furniture-shop-sub001/controllers/review"
	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/middleware"
	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/session"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, sessions *session.Manager) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(sessions))
			cartGroup.POST("", cartControllers.AddToCart(db, sessions))
			cartGroup.PUT("/:product_id", cartControllers.UpdateQuantity(sessions))
			cartGroup.DELETE("/:product_id", cartControllers.RemoveFromCart(sessions))
			cartGroup.DELETE("", cartControllers.ClearCart(sessions))
		}

		// ──────────────── Wishlist ────────────────
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("", cartControllers.GetWishlist(sessions))
			wishlistGroup.POST("", cartControllers.AddToWishlist(db, sessions))
			wishlistGroup.DELETE("/:product_id", cartControllers.RemoveFromWishlist(sessions))
			wishlistGroup.POST("/:product_id/move-to-cart", cartControllers.MoveToCart(sessions))
		}

		// ──────────────── Recently Viewed ────────────────
		userGroup.GET("/recently-viewed", cartControllers.GetRecentlyViewed(sessions))
		userGroup.POST("/recently-viewed", cartControllers.AddRecentlyViewed(db, sessions))

		// ──────────────── View State (ephemeral) ────────────────
		userGroup.GET("/view-state", cartControllers.GetViewState(sessions))
		userGroup.PUT("/view-state", cartControllers.UpdateViewState(sessions))

		// ──────────────── Reviews ────────────────
		userGroup.POST("/reviews", reviewControllers.SubmitReview(db))
	}
}
