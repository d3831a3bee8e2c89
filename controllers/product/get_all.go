package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/models"
)

// GetProducts lists the catalog with the storefront's facets: search, category,
// price range, material, color, brand and badge, plus sorting.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		categorySlug := c.Query("category")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}

		query := db.Model(&models.Product{}).Preload("Category")

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("name ILIKE ? OR description ILIKE ? OR brand ILIKE ?",
				likePattern, likePattern, likePattern)
		}

		if minPriceStr != "" {
			if mp, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
				query = query.Where("price >= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		if maxPriceStr != "" {
			if mp, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
				query = query.Where("price <= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}

		if categorySlug != "" {
			query = query.
				Joins("JOIN categories ON categories.id = products.category_id").
				Where("categories.slug = ?", categorySlug)
		}

		// Multi-select facets arrive comma separated.
		if materials := splitFacet(c.Query("materials")); len(materials) > 0 {
			query = query.Where("material IN ?", materials)
		}
		if colors := splitFacet(c.Query("colors")); len(colors) > 0 {
			query = query.Where("color IN ?", colors)
		}
		if brands := splitFacet(c.Query("brands")); len(brands) > 0 {
			query = query.Where("brand IN ?", brands)
		}
		if badge := c.Query("badge"); badge != "" {
			if !models.Badge(badge).Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid badge"})
				return
			}
			query = query.Where("badge = ?", badge)
		}
		if c.Query("in_stock") == "true" {
			query = query.Where("in_stock = ?", true)
		}

		allowedSorts := map[string]bool{"created_at": true, "price": true, "rating": true, "name": true}
		if !allowedSorts[sortBy] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort_by"})
			return
		}

		var products []models.Product
		if err := query.Order(sortBy + " " + sortOrder).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func splitFacet(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
