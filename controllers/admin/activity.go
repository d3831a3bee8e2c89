package adminControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/models"
)

// GET /admin/activity?limit=100&entity=order: newest first.
func GetActivityLog(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 100
		if raw := c.Query("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 500 {
				limit = n
			}
		}

		query := db.Model(&models.ActivityLog{}).Order("created_at DESC").Limit(limit)
		if entity := c.Query("entity"); entity != "" {
			query = query.Where("entity = ?", entity)
		}
		if actor := c.Query("actor_id"); actor != "" {
			query = query.Where("actor_id = ?", actor)
		}

		var entries []models.ActivityLog
		if err := query.Find(&entries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activity log"})
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}
