package models

import "time"

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

type Review struct {
	ID        string       `gorm:"primaryKey" json:"id"`
	ProductID uint         `gorm:"index" json:"product_id"`
	UserID    string       `gorm:"index" json:"user_id"`
	Rating    int          `gorm:"not null" json:"rating"` // 1..5
	Title     string       `json:"title"`
	Body      string       `json:"body"`
	Status    ReviewStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt time.Time    `json:"created_at"`
}
