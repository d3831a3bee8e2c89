package models

import (
	"log"

	"gorm.io/gorm"
)

// Fallback catalog shown before any admin has loaded real inventory.
// Seeded into the database on first boot when the products table is empty.

var seedCategories = []Category{
	{Name: "Sofas", Slug: "sofas", Image: "/uploads/categories/sofas.jpg", Description: "Two and three seaters, sectionals and sleepers"},
	{Name: "Chairs", Slug: "chairs", Image: "/uploads/categories/chairs.jpg", Description: "Lounge, dining and office chairs"},
	{Name: "Tables", Slug: "tables", Image: "/uploads/categories/tables.jpg", Description: "Dining, coffee and side tables"},
	{Name: "Beds", Slug: "beds", Image: "/uploads/categories/beds.jpg", Description: "Bed frames and headboards"},
	{Name: "Storage", Slug: "storage", Image: "/uploads/categories/storage.jpg", Description: "Shelving, sideboards and wardrobes"},
	{Name: "Decor", Slug: "decor", Image: "/uploads/categories/decor.jpg", Description: "Lighting, mirrors and accents"},
}

func seedProducts(categoryIDs map[string]uint) []Product {
	return []Product{
		{
			Name:          "Aurora 3-Seater Sofa",
			Description:   "Deep-seated three seater with kiln-dried hardwood frame and feather-wrapped cushions.",
			Price:         1299,
			OriginalPrice: 1599,
			Image:         "/uploads/products/aurora-sofa.jpg",
			CategoryID:    categoryIDs["sofas"],
			Material:      "Linen blend",
			Color:         "Stone Grey",
			Dimensions:    Dimensions{Width: 218, Depth: 96, Height: 84},
			Weight:        62,
			Rating:        4.8,
			ReviewCount:   124,
			InStock:       true,
			Stock:         14,
			Badge:         BadgeSale,
			Brand:         "Havn",
			Features:      []string{"Removable covers", "Feather-wrapped cushions", "FSC-certified frame"},
		},
		{
			Name:        "Oslo Lounge Chair",
			Description: "Mid-century silhouette in solid oak with a moulded seat shell.",
			Price:       449,
			Image:       "/uploads/products/oslo-chair.jpg",
			CategoryID:  categoryIDs["chairs"],
			Material:    "Oak, bouclé",
			Color:       "Ivory",
			Dimensions:  Dimensions{Width: 72, Depth: 78, Height: 80},
			Weight:      14,
			Rating:      4.6,
			ReviewCount: 87,
			InStock:     true,
			Stock:       32,
			Badge:       BadgeBestseller,
			Brand:       "Nordlys",
			Features:    []string{"Solid oak legs", "High-resilience foam"},
		},
		{
			Name:        "Walnut Dining Table",
			Description: "Seats six comfortably; solid American walnut top with tapered legs.",
			Price:       899,
			Image:       "/uploads/products/walnut-table.jpg",
			CategoryID:  categoryIDs["tables"],
			Material:    "Walnut",
			Color:       "Natural Walnut",
			Dimensions:  Dimensions{Width: 180, Depth: 90, Height: 75},
			Weight:      48,
			Rating:      4.9,
			ReviewCount: 56,
			InStock:     true,
			Stock:       9,
			Brand:       "Havn",
			Features:    []string{"Solid walnut top", "Seats six", "Oil finish"},
		},
		{
			Name:        "Luna Platform Bed",
			Description: "Low-profile queen frame with an upholstered headboard and slatted base.",
			Price:       749,
			Image:       "/uploads/products/luna-bed.jpg",
			CategoryID:  categoryIDs["beds"],
			Material:    "Pine, polyester weave",
			Color:       "Sand",
			Dimensions:  Dimensions{Width: 165, Depth: 212, Height: 95},
			Weight:      55,
			Rating:      4.5,
			ReviewCount: 41,
			InStock:     true,
			Stock:       11,
			Badge:       BadgeNew,
			Brand:       "Nordlys",
			Features:    []string{"No box spring needed", "Tool-free slat assembly"},
		},
		{
			Name:        "Fjord Bookshelf",
			Description: "Five-tier open shelving in powder-coated steel and ash veneer.",
			Price:       329,
			Image:       "/uploads/products/fjord-shelf.jpg",
			CategoryID:  categoryIDs["storage"],
			Material:    "Steel, ash veneer",
			Color:       "Black / Ash",
			Dimensions:  Dimensions{Width: 80, Depth: 35, Height: 190},
			Weight:      28,
			Rating:      4.4,
			ReviewCount: 63,
			InStock:     true,
			Stock:       27,
			Brand:       "Atelier M",
			Features:    []string{"Wall-anchor kit included", "Holds 40kg per shelf"},
		},
		{
			Name:        "Brass Arc Floor Lamp",
			Description: "Over-sofa arc lamp with a marble base and dimmable warm LED.",
			Price:       219,
			Image:       "/uploads/products/arc-lamp.jpg",
			CategoryID:  categoryIDs["decor"],
			Material:    "Brass, marble",
			Color:       "Brushed Brass",
			Dimensions:  Dimensions{Width: 110, Depth: 30, Height: 200},
			Weight:      9,
			Rating:      4.7,
			ReviewCount: 35,
			InStock:     true,
			Stock:       40,
			Badge:       BadgeLimited,
			Brand:       "Atelier M",
			Features:    []string{"Dimmable", "Marble base"},
		},
	}
}

// SeedCatalog loads the fallback catalog when the store is empty.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		categoryIDs := make(map[string]uint, len(seedCategories))
		for _, c := range seedCategories {
			cat := c
			if err := tx.Where(Category{Slug: cat.Slug}).FirstOrCreate(&cat).Error; err != nil {
				return err
			}
			categoryIDs[cat.Slug] = cat.ID
		}

		products := seedProducts(categoryIDs)
		if err := tx.Create(&products).Error; err != nil {
			return err
		}

		log.Printf("✅ Seeded fallback catalog: %d products, %d categories", len(products), len(seedCategories))
		return nil
	})
}
