package models

type Category struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"unique;not null" json:"name"`
	Slug        string `gorm:"unique;not null" json:"slug"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// Estimated delivery window per category, in days. Bulky items ship slower.
var categoryShippingDays = map[string]int{
	"sofas":   14,
	"beds":    14,
	"tables":  10,
	"chairs":  7,
	"storage": 10,
	"decor":   3,
}

const defaultShippingDays = 7

// ShippingDays returns the estimated delivery duration for a category slug.
func ShippingDays(slug string) int {
	if d, ok := categoryShippingDays[slug]; ok {
		return d
	}
	return defaultShippingDays
}
