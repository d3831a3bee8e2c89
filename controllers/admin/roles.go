package adminControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/models"
)

type RoleRequest struct {
	UserID string      `json:"user_id" binding:"required"`
	Role   models.Role `json:"role" binding:"required"`
}

func validRole(r models.Role) bool {
	return r == models.RoleAdmin || r == models.RoleModerator
}

// GET /admin/roles
func ListRoles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var roles []models.UserRole
		if err := db.Find(&roles).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch roles"})
			return
		}
		c.JSON(http.StatusOK, roles)
	}
}

// POST /admin/roles: granting an existing role is a no-op, not an error.
func GrantRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RoleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !validRole(req.Role) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", req.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
			return
		}

		role := models.UserRole{UserID: req.UserID, Role: req.Role}
		if err := db.Where(&role).FirstOrCreate(&role).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to grant role"})
			return
		}

		recordAdminActivity(db, c.GetString("user_id"), "role.grant", req.UserID, string(req.Role))
		c.JSON(http.StatusOK, gin.H{"message": "Role granted", "role": role})
	}
}

// DELETE /admin/roles
func RevokeRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RoleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := db.Where("user_id = ? AND role = ?", req.UserID, req.Role).
			Delete(&models.UserRole{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke role"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "role assignment not found"})
			return
		}

		recordAdminActivity(db, c.GetString("user_id"), "role.revoke", req.UserID, string(req.Role))
		c.JSON(http.StatusOK, gin.H{"message": "Role revoked"})
	}
}

func recordAdminActivity(db *gorm.DB, actorID, action, entityID, detail string) {
	db.Create(&models.ActivityLog{
		ActorID:   actorID,
		Action:    action,
		Entity:    "user",
		EntityID:  entityID,
		Detail:    detail,
		CreatedAt: time.Now(),
	})
}
