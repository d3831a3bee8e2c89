package adminControllers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/jayastibts-sketch/smart-furniture-shop-sub001/controllers/product"
	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/models"
)

// GET /banners: storefront endpoint, active banners only.
func GetActiveBanners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.Banner
		if err := db.Where("active = ?", true).Order("created_at DESC").Find(&banners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch banners"})
			return
		}
		c.JSON(http.StatusOK, banners)
	}
}

// GET /admin/banners: all banners including inactive.
func GetAllBanners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.Banner
		if err := db.Order("created_at DESC").Find(&banners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch banners"})
			return
		}
		c.JSON(http.StatusOK, banners)
	}
}

// POST /admin/banners: multipart: image file plus headline/link fields.
func CreateBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Banner image is required"})
			return
		}

		filename := fmt.Sprintf("banner_%d%s", time.Now().UnixNano(), filepath.Ext(file.Filename))
		savePath := filepath.Join(productcontroller.UploadsDir(), filename)
		if err := c.SaveUploadedFile(file, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save banner image"})
			return
		}

		banner := models.Banner{
			ImageURL: "/uploads/" + filename,
			Headline: c.PostForm("headline"),
			LinkURL:  c.PostForm("link_url"),
			Active:   true,
		}
		if err := db.Create(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create banner"})
			return
		}

		recordAdminActivity(db, c.GetString("user_id"), "banner.create", fmt.Sprint(banner.ID), banner.Headline)
		c.JSON(http.StatusCreated, banner)
	}
}

// PUT /admin/banners/:bannerID: toggles active state and text fields.
func UpdateBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banner models.Banner
		if err := db.First(&banner, c.Param("bannerID")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "banner not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch banner"})
			return
		}

		var input struct {
			Headline *string `json:"headline"`
			LinkURL  *string `json:"link_url"`
			Active   *bool   `json:"active"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.Headline != nil {
			banner.Headline = *input.Headline
		}
		if input.LinkURL != nil {
			banner.LinkURL = *input.LinkURL
		}
		if input.Active != nil {
			banner.Active = *input.Active
		}

		if err := db.Save(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update banner"})
			return
		}

		recordAdminActivity(db, c.GetString("user_id"), "banner.update", fmt.Sprint(banner.ID), banner.Headline)
		c.JSON(http.StatusOK, banner)
	}
}

// DELETE /admin/banners/:bannerID
func DeleteBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Banner{}, c.Param("bannerID"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete banner"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "banner not found"})
			return
		}
		recordAdminActivity(db, c.GetString("user_id"), "banner.delete", c.Param("bannerID"), "")
		c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
	}
}
