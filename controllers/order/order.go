package orderControllers

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/checkout"
	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/models"
	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/session"
)

// -------- Request Structs --------

type PlaceOrderRequest struct {
	DeliveryDate  string               `json:"delivery_date" binding:"required"` // YYYY-MM-DD
	DeliverySlot  string               `json:"delivery_slot" binding:"required"`
	PaymentMethod models.PaymentMethod `json:"payment_method" binding:"required"`
	CardNumber    string               `json:"card_number"` // formatted client side, classified here
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus models.PaymentStatus `json:"payment_status" binding:"required"`
}

// -------- Helpers --------

func validOrderStatus(s models.OrderStatus) bool {
	switch s {
	case models.OrderStatusPending, models.OrderStatusProcessing, models.OrderStatusShipped,
		models.OrderStatusDelivered, models.OrderStatusCancelled:
		return true
	}
	return false
}

func validPaymentStatus(s models.PaymentStatus) bool {
	switch s {
	case models.PaymentStatusPending, models.PaymentStatusPaid,
		models.PaymentStatusFailed, models.PaymentStatusRefunded:
		return true
	}
	return false
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// shippingCost derives from the order's total weight; heavy furniture ships
// in 30kg freight bands.
func shippingCost(totalWeight float64) float64 {
	if totalWeight <= 0 {
		return 0
	}
	return float64(int(math.Ceil((totalWeight-1)/30.0))) * 30.0
}

// -------- Core Logic --------

// PlaceOrder turns the identity's session cart into an order: the checkout
// wizard validates the delivery and payment selections, then a single
// transaction locks stock, writes the order and clears the cart namespace.
func PlaceOrder(db *gorm.DB, store *session.Store, userID string, req PlaceOrderRequest) (*models.Order, error) {
	items := store.Cart()
	if len(items) == 0 {
		return nil, errors.New("cart is empty")
	}

	deliveryDate, err := time.Parse("2006-01-02", req.DeliveryDate)
	if err != nil {
		return nil, errors.New("invalid delivery_date, want YYYY-MM-DD")
	}

	wizard := checkout.NewWizard()
	if err := wizard.CommitDelivery(checkout.DeliverySelection{Date: deliveryDate, Slot: req.DeliverySlot}); err != nil {
		return nil, err
	}

	payment := checkout.PaymentSelection{Method: req.PaymentMethod}
	if req.PaymentMethod == models.PaymentMethodCard {
		card, err := checkout.DeriveCard(req.CardNumber)
		if err != nil {
			return nil, err
		}
		payment.Card = &card
	}
	if err := wizard.CommitPayment(payment); err != nil {
		return nil, err
	}
	if err := wizard.Confirm(); err != nil {
		return nil, err
	}

	var order models.Order
	err = db.Transaction(func(tx *gorm.DB) error {
		var total, totalWeight float64
		var orderItems []models.OrderItem

		for _, item := range items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, item.Product.ID).Error; err != nil {
				return err
			}

			if product.Stock < item.Quantity {
				return errors.New("insufficient stock for product: " + product.Name)
			}

			product.Stock -= item.Quantity
			product.InStock = product.Stock > 0
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			total += product.Price * float64(item.Quantity)
			totalWeight += product.Weight * float64(item.Quantity)

			orderItems = append(orderItems, models.OrderItem{
				ProductID:    product.ID,
				ProductName:  product.Name,
				ProductImage: product.Image,
				UnitPrice:    product.Price,
				Weight:       product.Weight,
				Quantity:     item.Quantity,
			})
		}

		shipping := shippingCost(totalWeight)

		order = models.Order{
			OrderRef:      generateOrderRef(),
			UserID:        userID,
			Items:         orderItems,
			TotalAmount:   total + shipping,
			ShippingCost:  shipping,
			Status:        models.OrderStatusPending,
			PaymentStatus: models.PaymentStatusPending,
			PaymentMethod: req.PaymentMethod,
			DeliveryDate:  &deliveryDate,
			DeliverySlot:  req.DeliverySlot,
			CreatedAt:     time.Now(),
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}

	// The cart namespace is cleared only after the transaction committed.
	store.ClearCart()
	return &order, nil
}

// -------- Handlers --------

// POST /orders/place
func PlaceOrderHandler(db *gorm.DB, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := PlaceOrder(db, sessions.For(userID), userID, req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		broadcastNewOrder(*order)
		c.JSON(http.StatusOK, gin.H{"message": "Order placed successfully", "order": order})
	}
}

// GET /orders (admin)
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/mine
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var orders []models.Order
		if err := db.
			Where("user_id = ?", userIDVal.(string)).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderID: accepts numeric id or order ref. Customers only see
// their own orders; the admin role sees any.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		query := db.
			Preload("User").
			Preload("Items").
			Where(models.OrderLookupClause(id))
		if c.GetString("role") != string(models.RoleAdmin) {
			query = query.Where("user_id = ?", c.GetString("user_id"))
		}

		var order models.Order
		if err := query.First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !validOrderStatus(req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order status"})
			return
		}
		if err := db.Model(&models.Order{}).Where("id = ?", orderID).
			Update("status", req.Status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		recordActivity(db, c.GetString("user_id"), "order.status", orderID, string(req.Status))
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// PUT /admin/orders/:orderID/payment-status
func UpdatePaymentStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !validPaymentStatus(req.PaymentStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment status"})
			return
		}
		if err := db.Model(&models.Order{}).Where("id = ?", orderID).
			Update("payment_status", req.PaymentStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update payment status"})
			return
		}
		recordActivity(db, c.GetString("user_id"), "order.payment_status", orderID, string(req.PaymentStatus))
		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated successfully"})
	}
}

func recordActivity(db *gorm.DB, actorID, action, entityID, detail string) {
	entry := models.ActivityLog{
		ActorID:   actorID,
		Action:    action,
		Entity:    "order",
		EntityID:  entityID,
		Detail:    detail,
		CreatedAt: time.Now(),
	}
	if err := db.Create(&entry).Error; err != nil {
		// Audit failures never block the mutation itself.
		return
	}
}
