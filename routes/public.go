package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminControllers "github.com/jayastibts-sketch/smart-furniture-shop-sub001/controllers/admin"
	productcontroller "github.com/jayastibts-sketch/smart-furniture-shop-sub001/controllers/product"
	reviewControllers "github.com/jayastibts-sketch/smart-furniture-shop-sub001/controllers/review"
)

// SetupPublicRoutes registers the unauthenticated storefront endpoints:
// catalog browsing with facets, categories, approved reviews and banners.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Catalog ────────────────
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.GET("/categories", productcontroller.GetAllCategories(db))

	// ──────────────── Reviews (approved only) ────────────────
	r.GET("/products/:id/reviews", reviewControllers.ListProductReviews(db))

	// ──────────────── Hero banners ────────────────
	r.GET("/banners", adminControllers.GetActiveBanners(db))
}
