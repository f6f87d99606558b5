package memory

import (
	"Warehouse/internal/core/domain"
	"Warehouse/internal/core/ports"
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

type supplierRepository struct {
	mu        sync.RWMutex
	suppliers map[string]domain.Supplier
	log       zerolog.Logger
}

var _ ports.SupplierRepository = (*supplierRepository)(nil)

func NewSupplierRepository(initial []domain.Supplier, baseLogger *zerolog.Logger) ports.SupplierRepository {
	r := &supplierRepository{
		suppliers: make(map[string]domain.Supplier, len(initial)),
		log:       baseLogger.With().Str("component", "supplier_repo").Logger(),
	}
	for _, s := range initial {
		r.suppliers[s.ID] = cloneSupplier(s)
	}
	return r
}

func (r *supplierRepository) GetByID(_ context.Context, id string) (*domain.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.suppliers[id]
	if !ok {
		r.log.Info().Str("supplier_id", id).Msg("Supplier not found")
		return nil, nil
	}
	s = cloneSupplier(s)
	return &s, nil
}

func (r *supplierRepository) Save(_ context.Context, supplier *domain.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.suppliers[supplier.ID]; exists {
		return domain.Validation("Supplier %s already exists", supplier.ID)
	}
	r.suppliers[supplier.ID] = cloneSupplier(*supplier)
	return nil
}

func (r *supplierRepository) Update(_ context.Context, supplier *domain.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.suppliers[supplier.ID]; !exists {
		return domain.NotFound("Cannot update non-existent supplier")
	}
	r.suppliers[supplier.ID] = cloneSupplier(*supplier)
	return nil
}

func (r *supplierRepository) List(_ context.Context) ([]domain.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		out = append(out, cloneSupplier(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func cloneSupplier(s domain.Supplier) domain.Supplier {
	if s.OrderHistory != nil {
		s.OrderHistory = append([]string(nil), s.OrderHistory...)
	}
	return s
}
