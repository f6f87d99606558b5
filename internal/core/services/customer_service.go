package services

import (
	"Warehouse/internal/core/domain"
	"Warehouse/internal/core/ports"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CustomerService places orders and starts the event cascade.
type CustomerService struct {
	customers ports.CustomerRepository
	orders    ports.OrderRepository
	bus       ports.EventBus
	log       zerolog.Logger
	now       func() time.Time
}

func NewCustomerService(
	customers ports.CustomerRepository,
	orders ports.OrderRepository,
	bus ports.EventBus,
	baseLogger *zerolog.Logger,
) *CustomerService {
	return &CustomerService{
		customers: customers,
		orders:    orders,
		bus:       bus,
		log:       baseLogger.With().Str("component", "customer_service").Logger(),
		now:       time.Now,
	}
}

// PlaceOrder validates and persists the order, then publishes
// CustomerOrderCreated. Errors raised anywhere in the cascade are
// returned unchanged, together with the already persisted order.
func (s *CustomerService) PlaceOrder(ctx context.Context, customerID string, order domain.CustomerOrder) (*domain.CustomerOrder, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, domain.Validation("Customer ID is required")
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}

	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("get customer %s: %w", customerID, err)
	}
	if customer == nil {
		return nil, domain.NotFound("Customer not found")
	}

	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = s.now().UTC()
	}
	order.CustomerID = customer.ID
	order.Products = domain.CloneItems(order.Products)
	order.Status = domain.OrderPending

	log := s.log.With().Str("order_id", order.ID).Str("customer_id", customer.ID).Logger()

	if err := s.orders.Save(ctx, &order); err != nil {
		log.Error().Err(err).Msg("Failed to save order")
		return nil, err
	}

	event := domain.NewEvent(domain.CustomerOrderCreatedPayload{
		CustomerID: customer.ID,
		OrderID:    order.ID,
		Products:   domain.CloneItems(order.Products),
	})
	if err := s.bus.Publish(ctx, event); err != nil {
		log.Error().Err(err).Msg("Order cascade failed")
		return &order, err
	}

	order.Status = domain.OrderProcessed
	if err := s.orders.Update(ctx, &order); err != nil {
		log.Error().Err(err).Msg("Failed to mark order processed")
		return &order, err
	}

	log.Info().Float64("total", order.TotalAmount()).Msg("Order placed")
	return &order, nil
}

// OrdersForCustomer lists a customer's orders, oldest first.
func (s *CustomerService) OrdersForCustomer(ctx context.Context, customerID string) ([]domain.CustomerOrder, error) {
	return s.orders.GetByCustomerID(ctx, customerID)
}
