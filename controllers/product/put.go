package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/models"
)

// UpdateProduct updates an existing product by ID. Accepts the same fields as
// CreateProduct and an optional replacement "image" file.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Category").First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		parseFloat := func(val string) *float64 {
			if val == "" {
				return nil
			}
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				return &f
			}
			return nil
		}
		parseInt := func(val string) *int {
			if val == "" {
				return nil
			}
			if i, err := strconv.Atoi(val); err == nil {
				return &i
			}
			return nil
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := parseFloat(c.PostForm("price")); v != nil {
			product.Price = *v
		}
		if v := parseFloat(c.PostForm("original_price")); v != nil {
			product.OriginalPrice = *v
		}
		if v := parseFloat(c.PostForm("weight")); v != nil {
			product.Weight = *v
		}
		if v := parseInt(c.PostForm("stock")); v != nil {
			product.Stock = *v
			product.InStock = *v > 0
		}
		if v := c.PostForm("material"); v != "" {
			product.Material = v
		}
		if v := c.PostForm("color"); v != "" {
			product.Color = v
		}
		if v := c.PostForm("brand"); v != "" {
			product.Brand = v
		}
		if v := c.PostForm("badge"); v != "" {
			badge := models.Badge(v)
			if !badge.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid badge"})
				return
			}
			product.Badge = badge
		}
		if v := parseFloat(c.PostForm("width")); v != nil {
			product.Dimensions.Width = *v
		}
		if v := parseFloat(c.PostForm("depth")); v != nil {
			product.Dimensions.Depth = *v
		}
		if v := parseFloat(c.PostForm("height")); v != nil {
			product.Dimensions.Height = *v
		}
		if v := c.PostForm("features"); v != "" {
			var features []string
			for _, part := range strings.Split(v, ";") {
				if part = strings.TrimSpace(part); part != "" {
					features = append(features, part)
				}
			}
			product.Features = features
		}

		if v := c.PostForm("category_id"); v != "" {
			id64, parseErr := strconv.ParseUint(v, 10, 64)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			var category models.Category
			if err := db.First(&category, id64).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			product.CategoryID = category.ID
			product.Category = category
		}

		// Handle optional image replacement
		if file, err := c.FormFile("image"); err == nil {
			saveDir := filepath.Join(UploadsDir(), "products")
			if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
				return
			}

			ext := filepath.Ext(file.Filename)
			base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
			base = strings.ReplaceAll(base, " ", "_")
			filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

			if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			product.Image = fmt.Sprintf("/uploads/products/%s", filename)
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
