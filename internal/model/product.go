package model

import "time"

// Product represents a storefront product in the catalogue.
type Product struct {
	ID            string    `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Description   string    `json:"description,omitempty" db:"description"`
	Price         float64   `json:"price" db:"price"`
	OriginalPrice *float64  `json:"originalPrice,omitempty" db:"original_price"`
	Image         string    `json:"image" db:"image"`
	Images        []string  `json:"images,omitempty" db:"images"`
	Category      string    `json:"category" db:"category"`
	Rating        float64   `json:"rating" db:"rating"`
	Reviews       int       `json:"reviews" db:"reviews"`
	Features      []string  `json:"features" db:"features"`
	Sizes         []string  `json:"sizes,omitempty" db:"sizes"`
	Colors        []string  `json:"colors,omitempty" db:"colors"`
	InStock       bool      `json:"inStock" db:"in_stock"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
