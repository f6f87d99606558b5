package ports

import (
	"Warehouse/internal/core/domain"
	"context"
)

// CustomerRepository defines the persistence operations for Customers.
type CustomerRepository interface {
	// GetByID returns nil, nil when the customer does not exist.
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Save(ctx context.Context, customer *domain.Customer) error
	Update(ctx context.Context, customer *domain.Customer) error
	List(ctx context.Context) ([]domain.Customer, error)
}
