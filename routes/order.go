package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/jayastibts-sketch/smart-furniture-shop-sub001/controllers/order"
	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/middleware"
	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/session"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, sessions *session.Manager) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Place a new order from the session cart
		orders.POST("/place", orderControllers.PlaceOrderHandler(db, sessions))

		// Fetch the caller's orders
		orders.GET("/mine", orderControllers.GetUserOrdersHandler(db))

		// Fetch a single order by id or reference
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))

		// Cancel with a reason; paid orders get a refund request
		orders.POST("/:orderID/cancel", orderControllers.CancelOrderHandler(db))
	}

	// websocket endpoint for real-time order updates (back office dashboard)
	r.GET("/ws/orders", orderControllers.OrderFeedHandler)
}
