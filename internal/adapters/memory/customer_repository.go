package memory

import (
	"Warehouse/internal/core/domain"
	"Warehouse/internal/core/ports"
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

type customerRepository struct {
	mu        sync.RWMutex
	customers map[string]domain.Customer
	log       zerolog.Logger
}

var _ ports.CustomerRepository = (*customerRepository)(nil) // Ensure compliance

// NewCustomerRepository creates an in-memory customer store seeded with initial.
func NewCustomerRepository(initial []domain.Customer, baseLogger *zerolog.Logger) ports.CustomerRepository {
	r := &customerRepository{
		customers: make(map[string]domain.Customer, len(initial)),
		log:       baseLogger.With().Str("component", "customer_repo").Logger(),
	}
	for _, c := range initial {
		r.customers[c.ID] = c
	}
	return r
}

func (r *customerRepository) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.customers[id]
	if !ok {
		r.log.Info().Str("customer_id", id).Msg("Customer not found")
		return nil, nil
	}
	return &c, nil
}

func (r *customerRepository) Save(_ context.Context, customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.customers[customer.ID]; exists {
		return domain.Validation("Customer already exists")
	}
	r.customers[customer.ID] = *customer
	return nil
}

func (r *customerRepository) Update(_ context.Context, customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.customers[customer.ID]; !exists {
		return domain.NotFound("Cannot update non-existent customer")
	}
	r.customers[customer.ID] = *customer
	return nil
}

func (r *customerRepository) List(_ context.Context) ([]domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
