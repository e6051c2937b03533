package repository

import (
	"context"
	"sort"
	"sync"

	"kart-compare/internal/model"

	"github.com/rs/zerolog"
)

// memoryProductRepository implements ProductRepository over an in-memory
// catalogue. It is safe for concurrent use.
type memoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]model.Product
	logger   zerolog.Logger
}

// NewMemoryProductRepository creates a product repository holding copies of
// the given products. A later product replaces an earlier one with the same ID.
func NewMemoryProductRepository(products []model.Product, logger zerolog.Logger) ProductRepository {
	r := &memoryProductRepository{
		products: make(map[string]model.Product, len(products)),
		logger:   logger.With().Str("repository", "memory-product").Logger(),
	}
	for _, p := range products {
		r.products[p.ID] = cloneProduct(p)
	}
	return r
}

// GetAll retrieves products ordered by name with pagination support.
func (r *memoryProductRepository) GetAll(ctx context.Context, limit, offset int) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.sortedLocked(func(model.Product) bool { return true })

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || offset >= len(all) {
		return []model.Product{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}

	return all[offset:end], nil
}

// GetByID retrieves a single product by its ID.
func (r *memoryProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		r.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, nil
	}

	product := cloneProduct(p)
	return &product, nil
}

// GetByIDs retrieves the products matching any of the IDs, ordered by name.
func (r *memoryProductRepository) GetByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedLocked(func(p model.Product) bool {
		_, ok := wanted[p.ID]
		return ok
	}), nil
}

// Upsert inserts products or replaces existing ones.
func (r *memoryProductRepository) Upsert(ctx context.Context, products []model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range products {
		r.products[p.ID] = cloneProduct(p)
	}

	r.logger.Debug().
		Int("count", len(products)).
		Int("total", len(r.products)).
		Msg("products upserted")

	return nil
}

// sortedLocked returns copies of the matching products ordered by name, then
// ID. The caller must hold r.mu.
func (r *memoryProductRepository) sortedLocked(match func(model.Product) bool) []model.Product {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if match(p) {
			out = append(out, cloneProduct(p))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})

	return out
}

func cloneProduct(p model.Product) model.Product {
	p.Images = cloneStrings(p.Images)
	p.Features = cloneStrings(p.Features)
	p.Sizes = cloneStrings(p.Sizes)
	p.Colors = cloneStrings(p.Colors)
	if p.OriginalPrice != nil {
		original := *p.OriginalPrice
		p.OriginalPrice = &original
	}
	return p
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
