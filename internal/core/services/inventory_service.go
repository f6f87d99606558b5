package services

import (
	"Warehouse/internal/core/domain"
	"Warehouse/internal/core/ports"
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// InventoryService decrements stock for new orders and asks for a
// reorder when a product drops below its minimum threshold.
type InventoryService struct {
	products ports.ProductRepository
	bus      ports.EventBus
	log      zerolog.Logger
}

var _ ports.Subscriber = (*InventoryService)(nil)

func NewInventoryService(products ports.ProductRepository, bus ports.EventBus, baseLogger *zerolog.Logger) *InventoryService {
	return &InventoryService{
		products: products,
		bus:      bus,
		log:      baseLogger.With().Str("component", "inventory_service").Logger(),
	}
}

func (s *InventoryService) Name() string { return "InventoryService" }

func (s *InventoryService) HandleEvent(ctx context.Context, event domain.Event) error {
	payload, ok := event.Payload.(domain.CustomerOrderCreatedPayload)
	if !ok {
		s.log.Warn().Str("event_type", string(event.Type)).Msg("Ignoring unsupported event type")
		return nil
	}

	s.log.Info().Str("order_id", payload.OrderID).Int("lines", len(payload.Products)).Msg("Received order")
	for _, item := range payload.Products {
		if err := s.reserve(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func (s *InventoryService) reserve(ctx context.Context, item domain.OrderItem) error {
	product, err := s.products.GetByID(ctx, item.ProductID)
	if err != nil {
		return fmt.Errorf("get product %s: %w", item.ProductID, err)
	}
	if product == nil {
		return domain.NotFound("Product %s not found", item.ProductID)
	}
	if product.CurrentStock < item.Quantity {
		return domain.InsufficientStock(
			"Not enough stock for product %s. Available: %d, Required: %d",
			product.ID, product.CurrentStock, item.Quantity,
		)
	}

	initial := product.CurrentStock
	if err := product.AdjustStock(-item.Quantity); err != nil {
		return err
	}
	if err := s.products.Update(ctx, product); err != nil {
		return fmt.Errorf("update product %s: %w", product.ID, err)
	}

	if !product.IsBelowThreshold() {
		return nil
	}

	s.log.Warn().
		Str("product_id", product.ID).
		Int("initial_stock", initial).
		Int("final_stock", product.CurrentStock).
		Int("min_threshold", product.MinStockThreshold).
		Msg("Stock below minimum threshold, requesting reorder")

	return s.bus.Publish(ctx, domain.NewEvent(domain.ReorderStockPayload{
		Products: []domain.OrderItem{{
			ProductID: product.ID,
			Quantity:  product.ReorderQuantity(),
			UnitPrice: item.UnitPrice,
		}},
	}))
}

// AllStock lists every product with its current stock level.
func (s *InventoryService) AllStock(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}
