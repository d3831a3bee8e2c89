package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/format"
	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/models"
	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/session"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type QuantityInput struct {
	Quantity int `json:"quantity"`
}

// storeFor resolves the caller's session store from the JWT identity set by
// the auth middleware.
func storeFor(c *gin.Context, sessions *session.Manager) (*session.Store, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return sessions.For(userIDVal.(string)), true
}

// GET /user/cart
func GetCart(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeFor(c, sessions)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"items":           store.Cart(),
			"total":           store.CartTotal(),
			"total_formatted": format.Price(store.CartTotal()),
			"count":           store.CartCount(),
		})
	}
}

// POST /user/cart
func AddToCart(db *gorm.DB, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeFor(c, sessions)
		if !ok {
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.Preload("Category").First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		store.AddToCart(product, input.Quantity)
		c.JSON(http.StatusOK, gin.H{"items": store.Cart(), "count": store.CartCount()})
	}
}

// PUT /user/cart/:product_id: quantity 0 or below removes the entry.
func UpdateQuantity(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeFor(c, sessions)
		if !ok {
			return
		}

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		store.UpdateQuantity(uint(productID), input.Quantity)
		c.JSON(http.StatusOK, gin.H{"items": store.Cart(), "count": store.CartCount()})
	}
}

// DELETE /user/cart/:product_id
func RemoveFromCart(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeFor(c, sessions)
		if !ok {
			return
		}

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		store.RemoveFromCart(uint(productID))
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed", "count": store.CartCount()})
	}
}

// DELETE /user/cart
func ClearCart(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeFor(c, sessions)
		if !ok {
			return
		}
		store.ClearCart()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /admin/user-cart/:user_id
func GetAdminUserCart(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}
		store := sessions.For(userID)
		c.JSON(http.StatusOK, gin.H{
			"items": store.Cart(),
			"total": store.CartTotal(),
		})
	}
}
