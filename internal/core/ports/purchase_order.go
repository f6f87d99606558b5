package ports

import (
	"Warehouse/internal/core/domain"
	"context"
)

// PurchaseOrderRepository stores purchase orders sent to suppliers.
type PurchaseOrderRepository interface {
	Save(ctx context.Context, po *domain.PurchaseOrder) error
	Update(ctx context.Context, po *domain.PurchaseOrder) error
	GetBySupplierID(ctx context.Context, supplierID string) ([]domain.PurchaseOrder, error)
}
