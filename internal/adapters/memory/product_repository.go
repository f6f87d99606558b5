package memory

import (
	"Warehouse/internal/core/domain"
	"Warehouse/internal/core/ports"
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

type productRepository struct {
	mu       sync.RWMutex
	products map[string]domain.Product
	log      zerolog.Logger
}

var _ ports.ProductRepository = (*productRepository)(nil)

// NewProductRepository creates the in-memory inventory seeded with initial.
func NewProductRepository(initial []domain.Product, baseLogger *zerolog.Logger) ports.ProductRepository {
	r := &productRepository{
		products: make(map[string]domain.Product, len(initial)),
		log:      baseLogger.With().Str("component", "product_repo").Logger(),
	}
	for _, p := range initial {
		r.products[p.ID] = p
	}
	return r
}

func (r *productRepository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		r.log.Info().Str("product_id", id).Msg("Product not found")
		return nil, nil
	}
	return &p, nil
}

func (r *productRepository) Save(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[product.ID]; exists {
		return domain.Validation("Product %s already exists", product.ID)
	}
	r.products[product.ID] = *product
	return nil
}

func (r *productRepository) Update(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[product.ID]; !exists {
		return domain.NotFound("Product %s not found", product.ID)
	}
	r.products[product.ID] = *product
	r.log.Debug().Str("product_id", product.ID).Int("stock", product.CurrentStock).Msg("Product updated")
	return nil
}

func (r *productRepository) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
