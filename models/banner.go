package models

import "time"

// Banner is a storefront hero/promo image managed from the back office.
type Banner struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ImageURL  string    `gorm:"not null" json:"image_url"`
	Headline  string    `json:"headline"`
	LinkURL   string    `json:"link_url"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
