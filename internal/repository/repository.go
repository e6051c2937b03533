package repository

import (
	"context"

	"kart-compare/internal/model"
)

// ProductRepository defines the interface for product catalogue access.
type ProductRepository interface {
	// GetAll retrieves products ordered by name with pagination support.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by its ID.
	// Returns (nil, nil) when no product has the ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// GetByIDs retrieves the products matching any of the IDs, ordered by name.
	// Unknown IDs are ignored.
	GetByIDs(ctx context.Context, ids []string) ([]model.Product, error)

	// Upsert inserts products or replaces existing ones with the same ID.
	Upsert(ctx context.Context, products []model.Product) error
}
