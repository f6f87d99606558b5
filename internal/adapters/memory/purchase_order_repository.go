package memory

import (
	"Warehouse/internal/core/domain"
	"Warehouse/internal/core/ports"
	"context"
	"sync"

	"github.com/rs/zerolog"
)

type purchaseOrderRepository struct {
	mu     sync.RWMutex
	orders []domain.PurchaseOrder
	log    zerolog.Logger
}

var _ ports.PurchaseOrderRepository = (*purchaseOrderRepository)(nil)

func NewPurchaseOrderRepository(baseLogger *zerolog.Logger) ports.PurchaseOrderRepository {
	return &purchaseOrderRepository{
		log: baseLogger.With().Str("component", "purchase_order_repo").Logger(),
	}
}

func (r *purchaseOrderRepository) Save(_ context.Context, po *domain.PurchaseOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, clonePurchaseOrder(*po))
	r.log.Info().
		Str("purchase_order_id", po.ID).
		Str("supplier_id", po.SupplierID).
		Float64("total", po.Total()).
		Msg("Purchase order saved")
	return nil
}

// Update replaces a stored purchase order; unknown IDs are ignored.
func (r *purchaseOrderRepository) Update(_ context.Context, po *domain.PurchaseOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == po.ID {
			r.orders[i] = clonePurchaseOrder(*po)
			return nil
		}
	}
	r.log.Warn().Str("purchase_order_id", po.ID).Msg("Update of unknown purchase order ignored")
	return nil
}

func (r *purchaseOrderRepository) GetBySupplierID(_ context.Context, supplierID string) ([]domain.PurchaseOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.PurchaseOrder
	for _, po := range r.orders {
		if po.SupplierID == supplierID {
			out = append(out, clonePurchaseOrder(po))
		}
	}
	return out, nil
}

func clonePurchaseOrder(po domain.PurchaseOrder) domain.PurchaseOrder {
	po.Items = domain.CloneItems(po.Items)
	return po
}
