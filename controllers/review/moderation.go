package reviewControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jayastibts-sketch/smart-furniture-shop-sub001/models"
)

// GET /moderation/reviews: the pending queue, oldest first.
func GetModerationQueue(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reviews []models.Review
		if err := db.
			Where("status = ?", models.ReviewStatusPending).
			Order("created_at ASC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch moderation queue"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// PUT /moderation/reviews/:reviewID/approve: approving folds the rating into
// the product's aggregate inside the same transaction, so the catalog never
// shows a count that disagrees with the approved rows.
func ApproveReview(db *gorm.DB) gin.HandlerFunc {
	return moderate(db, models.ReviewStatusApproved, "review.approve")
}

// PUT /moderation/reviews/:reviewID/reject
func RejectReview(db *gorm.DB) gin.HandlerFunc {
	return moderate(db, models.ReviewStatusRejected, "review.reject")
}

func moderate(db *gorm.DB, decision models.ReviewStatus, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviewID := c.Param("reviewID")

		err := db.Transaction(func(tx *gorm.DB) error {
			var review models.Review
			if err := tx.First(&review, "id = ?", reviewID).Error; err != nil {
				return err
			}
			if review.Status != models.ReviewStatusPending {
				return errReviewAlreadyModerated
			}

			review.Status = decision
			if err := tx.Save(&review).Error; err != nil {
				return err
			}

			if decision == models.ReviewStatusApproved {
				return recomputeProductRating(tx, review.ProductID)
			}
			return nil
		})
		if err != nil {
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
			case errors.Is(err, errReviewAlreadyModerated):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to moderate review"})
			}
			return
		}

		logModeration(db, c.GetString("user_id"), action, reviewID)
		c.JSON(http.StatusOK, gin.H{"message": "Review " + string(decision)})
	}
}

var errReviewAlreadyModerated = errors.New("review has already been moderated")

// recomputeProductRating re-derives the aggregate from approved rows rather
// than incrementing, so repeated moderation passes stay consistent.
func recomputeProductRating(tx *gorm.DB, productID uint) error {
	type aggregate struct {
		Avg   float64
		Count int
	}
	var agg aggregate
	if err := tx.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("product_id = ? AND status = ?", productID, models.ReviewStatusApproved).
		Scan(&agg).Error; err != nil {
		return err
	}

	return tx.Model(&models.Product{}).
		Where("id = ?", productID).
		Updates(map[string]interface{}{
			"rating":       agg.Avg,
			"review_count": agg.Count,
		}).Error
}

func logModeration(db *gorm.DB, actorID, action, reviewID string) {
	entry := models.ActivityLog{
		ActorID:   actorID,
		Action:    action,
		Entity:    "review",
		EntityID:  reviewID,
		CreatedAt: time.Now(),
	}
	db.Create(&entry)
}
