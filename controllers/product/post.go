package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/models"
)

// UploadsDir is where product and banner images land; served under /uploads.
func UploadsDir() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// CreateProduct creates a new product with image upload.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Required fields
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		weightStr := c.PostForm("weight")
		if name == "" || priceStr == "" || weightStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, price, and weight are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		weight, err := strconv.ParseFloat(weightStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid weight"})
			return
		}

		var originalPrice float64
		if v := c.PostForm("original_price"); v != "" {
			if op, parseErr := strconv.ParseFloat(v, 64); parseErr == nil {
				originalPrice = op
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid original_price"})
				return
			}
		}

		var stock int
		if v := c.PostForm("stock"); v != "" {
			if n, parseErr := strconv.Atoi(v); parseErr == nil {
				stock = n
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
		}

		badge := models.Badge(c.PostForm("badge"))
		if badge != "" && !badge.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid badge"})
			return
		}

		var categoryID uint
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
			categoryID = category.ID
		}

		dims := models.Dimensions{}
		dims.Width, _ = strconv.ParseFloat(c.PostForm("width"), 64)
		dims.Depth, _ = strconv.ParseFloat(c.PostForm("depth"), 64)
		dims.Height, _ = strconv.ParseFloat(c.PostForm("height"), 64)

		var features []string
		for _, part := range strings.Split(c.PostForm("features"), ";") {
			if part = strings.TrimSpace(part); part != "" {
				features = append(features, part)
			}
		}

		// Image upload
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}
		filename := strings.ReplaceAll(file.Filename, " ", "_")

		saveDir := filepath.Join(UploadsDir(), "products")
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to create upload folder: %v", err)})
			return
		}
		if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save image: %v", err)})
			return
		}

		newProduct := models.Product{
			Name:          name,
			Description:   c.PostForm("description"),
			Price:         price,
			OriginalPrice: originalPrice,
			Image:         fmt.Sprintf("/uploads/products/%s", filename),
			CategoryID:    categoryID,
			Material:      c.PostForm("material"),
			Color:         c.PostForm("color"),
			Dimensions:    dims,
			Weight:        weight,
			InStock:       stock > 0,
			Stock:         stock,
			Badge:         badge,
			Brand:         c.PostForm("brand"),
			Features:      features,
		}

		if err := db.Create(&newProduct).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, newProduct)
	}
}
