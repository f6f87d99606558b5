package ports

import (
	"Warehouse/internal/core/domain"
	"context"
)

// SupplierRepository defines the persistence operations for Suppliers.
type SupplierRepository interface {
	// GetByID returns nil, nil when the supplier does not exist.
	GetByID(ctx context.Context, id string) (*domain.Supplier, error)
	Save(ctx context.Context, supplier *domain.Supplier) error
	Update(ctx context.Context, supplier *domain.Supplier) error
	List(ctx context.Context) ([]domain.Supplier, error)
}
