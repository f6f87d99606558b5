package memory

import (
	"Warehouse/internal/core/domain"
	"Warehouse/internal/core/ports"
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// orderRepository keeps orders in insertion order.
type orderRepository struct {
	mu     sync.RWMutex
	orders []domain.CustomerOrder
	log    zerolog.Logger
}

var _ ports.OrderRepository = (*orderRepository)(nil)

func NewOrderRepository(baseLogger *zerolog.Logger) ports.OrderRepository {
	return &orderRepository{
		log: baseLogger.With().Str("component", "order_repo").Logger(),
	}
}

func (r *orderRepository) Save(_ context.Context, order *domain.CustomerOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(order.ID) >= 0 {
		return domain.Validation("Order %s already exists", order.ID)
	}
	r.orders = append(r.orders, cloneOrder(*order))
	r.log.Info().Str("order_id", order.ID).Str("customer_id", order.CustomerID).Msg("Order saved")
	return nil
}

func (r *orderRepository) Update(_ context.Context, order *domain.CustomerOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(order.ID)
	if i < 0 {
		return domain.NotFound("Order %s not found", order.ID)
	}
	r.orders[i] = cloneOrder(*order)
	return nil
}

func (r *orderRepository) GetByID(_ context.Context, id string) (*domain.CustomerOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	o := cloneOrder(r.orders[i])
	return &o, nil
}

func (r *orderRepository) GetByCustomerID(_ context.Context, customerID string) ([]domain.CustomerOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.CustomerOrder
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			out = append(out, cloneOrder(o))
		}
	}
	return out, nil
}

func (r *orderRepository) indexOf(id string) int {
	for i, o := range r.orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}

func cloneOrder(o domain.CustomerOrder) domain.CustomerOrder {
	o.Products = domain.CloneItems(o.Products)
	return o
}
