package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/models"
	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/session"
)

// GET /user/recently-viewed: most recent first, capped at 10.
func GetRecentlyViewed(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeFor(c, sessions)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, store.RecentlyViewed())
	}
}

// POST /user/recently-viewed: the storefront calls this when a product page
// is opened.
func AddRecentlyViewed(db *gorm.DB, sessions *session.Manager) gin.HandlerFunc {
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

		store.AddToRecentlyViewed(product)
		c.JSON(http.StatusOK, store.RecentlyViewed())
	}
}

// GET /user/view-state, PUT /user/view-state: ephemeral search/filter/sort
// state; reset when the process restarts, never written to durable storage.

type ViewStateInput struct {
	SearchQuery *string          `json:"search_query"`
	Filters     *session.Filters `json:"filters"`
	SortOrder   *string          `json:"sort_order"`
	ViewMode    *string          `json:"view_mode"`
}

func GetViewState(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeFor(c, sessions)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"search_query": store.SearchQuery(),
			"filters":      store.FiltersState(),
			"sort_order":   store.SortState(),
			"view_mode":    store.ViewModeState(),
		})
	}
}

func UpdateViewState(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storeFor(c, sessions)
		if !ok {
			return
		}

		var input ViewStateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.SearchQuery != nil {
			store.SetSearchQuery(*input.SearchQuery)
		}
		if input.Filters != nil {
			f := *input.Filters
			if f.PriceMax > 0 && f.PriceMin > f.PriceMax {
				c.JSON(http.StatusBadRequest, gin.H{"error": "price_min must not exceed price_max"})
				return
			}
			store.SetFilters(f)
		}
		if input.SortOrder != nil {
			store.SetSortOrder(session.SortOrder(*input.SortOrder))
		}
		if input.ViewMode != nil {
			store.SetViewMode(session.ViewMode(*input.ViewMode))
		}

		c.JSON(http.StatusOK, gin.H{"message": "View state updated"})
	}
}
