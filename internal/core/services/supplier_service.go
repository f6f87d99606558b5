package services

import (
	"Warehouse/internal/core/domain"
	"Warehouse/internal/core/ports"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SupplierService turns reorder requests into purchase orders and
// restocks the product to its maximum level.
type SupplierService struct {
	products       ports.ProductRepository
	suppliers      ports.SupplierRepository
	purchaseOrders ports.PurchaseOrderRepository
	bus            ports.EventBus
	log            zerolog.Logger
	now            func() time.Time
}

var _ ports.Subscriber = (*SupplierService)(nil)

func NewSupplierService(
	products ports.ProductRepository,
	suppliers ports.SupplierRepository,
	purchaseOrders ports.PurchaseOrderRepository,
	bus ports.EventBus,
	baseLogger *zerolog.Logger,
) *SupplierService {
	return &SupplierService{
		products:       products,
		suppliers:      suppliers,
		purchaseOrders: purchaseOrders,
		bus:            bus,
		log:            baseLogger.With().Str("component", "supplier_service").Logger(),
		now:            time.Now,
	}
}

func (s *SupplierService) Name() string { return "SupplierService" }

func (s *SupplierService) HandleEvent(ctx context.Context, event domain.Event) error {
	_, err := s.Replenish(ctx, event)
	return err
}

// Replenish handles a ReorderStock event. It reports false with a nil
// error for any other event type, and false with the error when a
// product or supplier cannot be resolved or a downstream step fails.
func (s *SupplierService) Replenish(ctx context.Context, event domain.Event) (bool, error) {
	payload, ok := event.Payload.(domain.ReorderStockPayload)
	if event.Type != domain.EventReorderStock || !ok {
		s.log.Warn().Str("event_type", string(event.Type)).Msg("SupplierService ignoring event type")
		return false, nil
	}

	for _, item := range payload.Products {
		if err := s.restock(ctx, item); err != nil {
			s.log.Error().Err(err).Str("product_id", item.ProductID).Msg("Reorder failed")
			return false, err
		}
	}
	return true, nil
}

func (s *SupplierService) restock(ctx context.Context, item domain.OrderItem) error {
	product, err := s.products.GetByID(ctx, item.ProductID)
	if err != nil {
		return fmt.Errorf("get product %s: %w", item.ProductID, err)
	}
	if product == nil {
		return domain.NotFound("Product %s not found", item.ProductID)
	}

	supplier, err := s.suppliers.GetByID(ctx, product.SupplierID)
	if err != nil {
		return fmt.Errorf("get supplier %s: %w", product.SupplierID, err)
	}
	if supplier == nil {
		return domain.NotFound("Supplier %s not found for product %s", product.SupplierID, product.ID)
	}

	log := s.log.With().Str("product_id", product.ID).Str("supplier_id", supplier.ID).Logger()

	quantity := product.ReorderQuantity()
	if quantity == 0 {
		log.Info().Msg("Product already at maximum stock, nothing to reorder")
		return nil
	}

	po := domain.PurchaseOrder{
		ID:         uuid.NewString(),
		SupplierID: supplier.ID,
		OrderDate:  s.now().UTC(),
		Items: []domain.OrderItem{{
			ProductID: product.ID,
			Quantity:  quantity,
			UnitPrice: product.UnitCost,
		}},
		Status: domain.PurchaseOrderPending,
	}
	if err := s.purchaseOrders.Save(ctx, &po); err != nil {
		return fmt.Errorf("save purchase order: %w", err)
	}

	supplier.AddOrderHistory(po.ID)
	if err := s.suppliers.Update(ctx, supplier); err != nil {
		return fmt.Errorf("update supplier %s: %w", supplier.ID, err)
	}

	if err := product.AdjustStock(quantity); err != nil {
		return err
	}
	if err := s.products.Update(ctx, product); err != nil {
		return fmt.Errorf("update product %s: %w", product.ID, err)
	}

	log.Info().
		Str("purchase_order_id", po.ID).
		Int("quantity", quantity).
		Int("stock", product.CurrentStock).
		Msg("Product replenished")

	return s.bus.Publish(ctx, domain.NewEvent(domain.StockReplenishedPayload{
		Products: domain.CloneItems(po.Items),
	}))
}

// AllSuppliers lists every supplier.
func (s *SupplierService) AllSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	return s.suppliers.List(ctx)
}

// PurchaseOrdersForSupplier lists purchase orders sent to one supplier.
func (s *SupplierService) PurchaseOrdersForSupplier(ctx context.Context, supplierID string) ([]domain.PurchaseOrder, error) {
	return s.purchaseOrders.GetBySupplierID(ctx, supplierID)
}
