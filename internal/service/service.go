package service

import (
	"context"

	"kart-compare/internal/model"
)

// ProductService defines operations for browsing the product catalogue.
type ProductService interface {
	// GetAll retrieves all products with pagination.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []string) ([]model.Product, error)
}

// ComparisonService defines operations for building and sharing product comparisons.
type ComparisonService interface {
	// Compare resolves product IDs to comparison items in the given order.
	// Unknown IDs are dropped and duplicates are kept.
	Compare(ctx context.Context, ids []string) ([]model.ComparisonItem, error)

	// CreateShare encodes an ordered comparison into a share token and link.
	CreateShare(ctx context.Context, ids []string) (*model.ShareResponse, error)

	// ResolveShare decodes a share token and resolves it against the live catalogue.
	// Returns model.ErrInvalidShareLink for undecodable tokens and
	// model.ErrNoItemsFound when nothing in the token exists in the catalogue.
	ResolveShare(ctx context.Context, token string) ([]model.ComparisonItem, error)
}
