package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	chatControllers "github.com/jayastibts-sketch/smart-furniture-shop-sub001/controllers/chat"
	mailerControllers "github.com/jayastibts-sketch/smart-furniture-shop-sub001/controllers/mailer"
)

// SetupFunctionRoutes registers the function-style endpoints: the streaming
// chat proxy and the two transactional emails. Authorization is handled per
// handler (chat and newsletter are public, the status email checks its own
// bearer token).
func SetupFunctionRoutes(r *gin.Engine, db *gorm.DB) {
	functions := r.Group("/functions")
	{
		functions.POST("/chat", chatControllers.StreamChat(db))
		functions.POST("/newsletter", mailerControllers.SubscribeNewsletter())
		functions.POST("/order-status-email", mailerControllers.SendOrderStatusEmail(db))
	}
}
