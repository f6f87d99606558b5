package ports

import (
	"Warehouse/internal/core/domain"
	"context"
)

// ProductRepository is the inventory store.
type ProductRepository interface {
	// GetByID returns nil, nil when the product does not exist.
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Save(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error

	// List returns every product ordered by ID.
	List(ctx context.Context) ([]domain.Product, error)
}
