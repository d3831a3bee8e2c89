package models

import (
	"time"

	"gorm.io/gorm"
)

// Badge is a fixed-vocabulary promotional label attached to a product.
type Badge string

const (
	BadgeSale       Badge = "sale"
	BadgeNew        Badge = "new"
	BadgeBestseller Badge = "bestseller"
	BadgeLimited    Badge = "limited"
)

// BadgeInfo carries the display metadata for a badge.
type BadgeInfo struct {
	Label    string `json:"label"`
	Priority int    `json:"priority"` // lower renders first
}

var badgeInfo = map[Badge]BadgeInfo{
	BadgeSale:       {Label: "Sale", Priority: 0},
	BadgeNew:        {Label: "New", Priority: 1},
	BadgeBestseller: {Label: "Bestseller", Priority: 2},
	BadgeLimited:    {Label: "Limited Edition", Priority: 3},
}

func (b Badge) Valid() bool {
	_, ok := badgeInfo[b]
	return ok
}

func (b Badge) Info() BadgeInfo {
	return badgeInfo[b]
}

// Dimensions in centimeters.
type Dimensions struct {
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
}

type Product struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	Description   string         `json:"description"`
	Price         float64        `gorm:"not null" json:"price"`
	OriginalPrice float64        `json:"original_price,omitempty"` // pre-discount price, 0 when never discounted
	Image         string         `gorm:"not null" json:"image"`
	CategoryID    uint           `gorm:"index" json:"category_id"`
	Category      Category       `json:"category"`
	Material      string         `json:"material"`
	Color         string         `json:"color"`
	Dimensions    Dimensions     `gorm:"embedded;embeddedPrefix:dim_" json:"dimensions"`
	Weight        float64        `gorm:"not null" json:"weight"` // kg, drives shipping cost
	Rating        float64        `json:"rating"`
	ReviewCount   int            `json:"review_count"`
	InStock       bool           `json:"in_stock"`
	Stock         int            `json:"stock"`
	Badge         Badge          `gorm:"type:VARCHAR(20)" json:"badge,omitempty"`
	Brand         string         `json:"brand"`
	Features      []string       `gorm:"serializer:json" json:"features"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// OnSale reports whether the product carries a visible discount.
func (p Product) OnSale() bool {
	return p.OriginalPrice > p.Price
}
