package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/models"
	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/session"
)

type WishlistInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GET /user/wishlist
func GetWishlist(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeFor(c, sessions)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, store.Wishlist())
	}
}

// POST /user/wishlist: idempotent; adding twice keeps one entry.
func AddToWishlist(db *gorm.DB, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeFor(c, sessions)
		if !ok {
			return
		}

		var input WishlistInput
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

		store.AddToWishlist(product)
		c.JSON(http.StatusOK, store.Wishlist())
	}
}

// DELETE /user/wishlist/:product_id
func RemoveFromWishlist(sessions *session.Manager) gin.HandlerFunc {
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

		store.RemoveFromWishlist(uint(productID))
		c.JSON(http.StatusOK, gin.H{"message": "Wishlist item removed"})
	}
}

// POST /user/wishlist/:product_id/move-to-cart
func MoveToCart(sessions *session.Manager) gin.HandlerFunc {
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

		if !store.MoveToCart(uint(productID)) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not in wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"items": store.Cart(),
			"count": store.CartCount(),
		})
	}
}
