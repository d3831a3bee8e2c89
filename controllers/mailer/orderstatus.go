package mailerControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/auth"
	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/models"
)

type OrderStatusEmailRequest struct {
	OrderNumber string             `json:"order_number" binding:"required"`
	NewStatus   models.OrderStatus `json:"new_status" binding:"required"`
}

type statusEmailCopy struct {
	Subject string
	Body    string
}

// statusCopy maps an order status to the customer-facing subject and body.
var statusCopy = map[models.OrderStatus]statusEmailCopy{
	models.OrderStatusPending:    {"We received your order", "Your order %s has been received and is awaiting processing."},
	models.OrderStatusProcessing: {"Your order is being prepared", "Good news! Your order %s is being prepared for dispatch."},
	models.OrderStatusShipped:    {"Your order is on its way", "Your order %s has shipped. Keep an eye out for the delivery crew."},
	models.OrderStatusDelivered:  {"Your order has been delivered", "Your order %s was delivered. We hope you love your new furniture!"},
	models.OrderStatusCancelled:  {"Your order was cancelled", "Your order %s has been cancelled. If a payment was captured, a refund is on its way."},
}

// copyForStatus falls back to a generic update for statuses without a
// dedicated template.
func copyForStatus(status models.OrderStatus) statusEmailCopy {
	if copyFor, ok := statusCopy[status]; ok {
		return copyFor
	}
	return statusEmailCopy{
		Subject: "Update on your order",
		Body:    "There is an update on your order %s. Visit your account for the latest details.",
	}
}

// POST /functions/order-status-email: the back office triggers a status
// notification. The bearer token must belong to an admin; role membership is
// re-checked against the database, not just the token claim.
func SendOrderStatusEmail(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or malformed"})
			return
		}

		identity, err := auth.ParseJWT(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		var roles []models.UserRole
		if err := db.Where("user_id = ?", identity.UserID).Find(&roles).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check permissions"})
			return
		}
		if !models.HasAdmin(roles) {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			return
		}

		var req OrderStatusEmailRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order_number and new_status are required"})
			return
		}

		copyFor := copyForStatus(req.NewStatus)

		var order models.Order
		if err := db.Preload("User").
			Where(models.OrderLookupClause(req.OrderNumber)).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if order.User.Email == "" {
			c.JSON(http.StatusNotFound, gin.H{"error": "order has no customer email"})
			return
		}

		html := fmt.Sprintf(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #333;">
    <h1>%s</h1>
    <p>Hi %s,</p>
    <p>%s</p>
  </body>
</html>`, copyFor.Subject, order.User.Name, fmt.Sprintf(copyFor.Body, order.OrderRef))

		id, err := sendEmail(order.User.Email, copyFor.Subject, html)
		if err != nil {
			fmt.Println("❌ Order status email failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send status email"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "id": id, "to": order.User.Email})
	}
}
