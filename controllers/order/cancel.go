package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/models"
)

type CancelOrderRequest struct {
	Reason models.CancellationReason `json:"reason" binding:"required"`
	Note   string                    `json:"note"`
}

// CancelOrder marks the order cancelled and, when the payment had already
// been captured, opens a refund request on the same row. Both writes land in
// one transaction; the response reflects the committed row, nothing is
// updated speculatively.
func CancelOrder(db *gorm.DB, userID, orderID string, req CancelOrderRequest) (*models.Order, error) {
	if !req.Reason.Valid() {
		return nil, errors.New("invalid cancellation reason")
	}
	note := ""
	if req.Reason == models.CancelReasonOther {
		note = req.Note
	}

	lookup, arg := models.OrderLookupClause(orderID)

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where(lookup, arg).
			Where("user_id = ?", userID).
			First(&order).Error; err != nil {
			return err
		}

		if err := order.Cancel(req.Reason, note, time.Now()); err != nil {
			return err
		}

		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// POST /orders/:orderID/cancel
func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req CancelOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := CancelOrder(db, userIDVal.(string), c.Param("orderID"), req)
		if err != nil {
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			case errors.Is(err, models.ErrOrderNotCancellable):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled", "order": order})
	}
}

// PUT /admin/orders/:orderID/refund-complete: back office marks a pending
// refund as settled.
func CompleteRefundHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var order models.Order
		if err := db.Where(models.OrderLookupClause(orderID)).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if order.RefundStatus != models.RefundStatusPending {
			c.JSON(http.StatusConflict, gin.H{"error": "order has no pending refund"})
			return
		}

		order.RefundStatus = models.RefundStatusCompleted
		order.PaymentStatus = models.PaymentStatusRefunded
		if err := db.Save(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete refund"})
			return
		}

		recordActivity(db, c.GetString("user_id"), "order.refund_complete", orderID, "")
		c.JSON(http.StatusOK, gin.H{"message": "Refund marked as completed", "order": order})
	}
}
