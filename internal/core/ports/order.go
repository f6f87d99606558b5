package ports

import (
	"Warehouse/internal/core/domain"
	"context"
)

// OrderRepository stores customer orders.
type OrderRepository interface {
	Save(ctx context.Context, order *domain.CustomerOrder) error
	Update(ctx context.Context, order *domain.CustomerOrder) error

	// GetByID returns nil, nil when the order does not exist.
	GetByID(ctx context.Context, id string) (*domain.CustomerOrder, error)

	// GetByCustomerID lists a customer's orders, oldest first.
	GetByCustomerID(ctx context.Context, customerID string) ([]domain.CustomerOrder, error)
}
