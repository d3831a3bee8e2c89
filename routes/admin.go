package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminControllers "github.com/jayastibts-sketch/smart-furniture-shop-sub001/controllers/admin"
	cartControllers "github.com/jayastibts-sketch/smart-furniture-shop-sub001/controllers/cart"
	orderControllers "github.com/jayastibts-sketch/smart-furniture-shop-sub001/controllers/order"
	productcontroller "github.com/jayastibts-sketch/smart-furniture-shop-sub001/controllers/product"
	reviewControllers "github.com/jayastibts-sketch/smart-furniture-shop-sub001/controllers/review"
	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/middleware"
	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/session"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the back
// office API key plus an admin-role JWT.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, sessions *session.Manager) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey, middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", adminControllers.GetAllUsers(db))
		adminGroup.GET("/users/:userID", adminControllers.GetUserByID(db))

		// ─────────── Roles ───────────
		roleMgmt := adminGroup.Group("/roles")
		{
			roleMgmt.GET("", adminControllers.ListRoles(db))
			roleMgmt.POST("", adminControllers.GrantRole(db))
			roleMgmt.DELETE("", adminControllers.RevokeRole(db))
		}

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		// ─────────── Orders ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.PUT("/:orderID/payment-status", orderControllers.UpdatePaymentStatusHandler(db))
			orderAdmin.PUT("/:orderID/refund-complete", orderControllers.CompleteRefundHandler(db))
		}

		// ─────────── Banners ───────────
		bannerMgmt := adminGroup.Group("/banners")
		{
			bannerMgmt.GET("", adminControllers.GetAllBanners(db))
			bannerMgmt.POST("", adminControllers.CreateBanner(db))
			bannerMgmt.PUT("/:bannerID", adminControllers.UpdateBanner(db))
			bannerMgmt.DELETE("/:bannerID", adminControllers.DeleteBanner(db))
		}

		// ─────────── Session inspection ───────────
		cartMgmt := adminGroup.Group("/user-cart")
		{
			cartMgmt.GET("/:user_id", cartControllers.GetAdminUserCart(sessions))
		}

		// ─────────── Audit trail ───────────
		adminGroup.GET("/activity", adminControllers.GetActivityLog(db))
	}
}

// SetupModerationRoutes registers the review moderation endpoints. Moderators
// and admins both pass; the API key is still required.
func SetupModerationRoutes(r *gin.Engine, db *gorm.DB) {
	modGroup := r.Group("/moderation")
	modGroup.Use(middleware.ValidateAPIKey, middleware.ValidateToken, middleware.RequireModerator)
	{
		modGroup.GET("/reviews", reviewControllers.GetModerationQueue(db))
		modGroup.PUT("/reviews/:reviewID/approve", reviewControllers.ApproveReview(db))
		modGroup.PUT("/reviews/:reviewID/reject", reviewControllers.RejectReview(db))
	}
}
