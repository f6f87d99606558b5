package services

import (
	"Warehouse/internal/core/domain"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newInventoryServiceUnderTest() (*InventoryService, *MockProductRepository, *MockEventBus) {
	nopLogger := zerolog.Nop()
	products := new(MockProductRepository)
	bus := new(MockEventBus)
	return NewInventoryService(products, bus, &nopLogger), products, bus
}

func orderCreated(quantity int) domain.Event {
	return domain.NewEvent(domain.CustomerOrderCreatedPayload{
		CustomerID: "1",
		OrderID:    "order-1",
		Products:   []domain.OrderItem{{ProductID: "product-001", Quantity: quantity, UnitPrice: 30}},
	})
}

func TestInventoryService_Name(t *testing.T) {
	svc, _, _ := newInventoryServiceUnderTest()
	assert.Equal(t, "InventoryService", svc.Name())
}

func TestInventoryService_HandleEvent_DecrementsStock(t *testing.T) {
	ctx := context.Background()
	svc, products, bus := newInventoryServiceUnderTest()

	products.On("GetByID", ctx, "product-001").Return(concreteMix(50), nil)
	products.On("Update", ctx, mock.MatchedBy(func(p *domain.Product) bool {
		return p.CurrentStock == 45
	})).Return(nil)

	require.NoError(t, svc.HandleEvent(ctx, orderCreated(5)))

	products.AssertExpectations(t)
	bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestInventoryService_HandleEvent_BelowThresholdPublishesReorder(t *testing.T) {
	ctx := context.Background()
	svc, products, bus := newInventoryServiceUnderTest()

	products.On("GetByID", ctx, "product-001").Return(concreteMix(50), nil)
	products.On("Update", ctx, mock.MatchedBy(func(p *domain.Product) bool {
		return p.CurrentStock == 5
	})).Return(nil)
	bus.On("Publish", ctx, domain.NewEvent(domain.ReorderStockPayload{
		Products: []domain.OrderItem{{ProductID: "product-001", Quantity: 45, UnitPrice: 30}},
	})).Return(nil)

	require.NoError(t, svc.HandleEvent(ctx, orderCreated(45)))

	products.AssertExpectations(t)
	bus.AssertExpectations(t)
}

func TestInventoryService_HandleEvent_AtThresholdDoesNotReorder(t *testing.T) {
	ctx := context.Background()
	svc, products, bus := newInventoryServiceUnderTest()

	products.On("GetByID", ctx, "product-001").Return(concreteMix(50), nil)
	products.On("Update", ctx, mock.Anything).Return(nil)

	require.NoError(t, svc.HandleEvent(ctx, orderCreated(40)))

	bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestInventoryService_HandleEvent_UnknownProduct(t *testing.T) {
	ctx := context.Background()
	svc, products, _ := newInventoryServiceUnderTest()
	products.On("GetByID", ctx, "product-999").Return(nil, nil)

	event := domain.NewEvent(domain.CustomerOrderCreatedPayload{
		CustomerID: "1",
		OrderID:    "order-1",
		Products:   []domain.OrderItem{{ProductID: "product-999", Quantity: 1, UnitPrice: 30}},
	})
	err := svc.HandleEvent(ctx, event)

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Product product-999 not found")
	products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestInventoryService_HandleEvent_InsufficientStock(t *testing.T) {
	ctx := context.Background()
	svc, products, bus := newInventoryServiceUnderTest()
	products.On("GetByID", ctx, "product-001").Return(concreteMix(50), nil)

	err := svc.HandleEvent(ctx, orderCreated(1000))

	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.EqualError(t, err, "Not enough stock for product product-001. Available: 50, Required: 1000")
	products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestInventoryService_HandleEvent_IgnoresOtherEvents(t *testing.T) {
	svc, products, bus := newInventoryServiceUnderTest()

	err := svc.HandleEvent(context.Background(), domain.NewEvent(domain.StockReplenishedPayload{}))

	require.NoError(t, err)
	products.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestInventoryService_AllStock(t *testing.T) {
	ctx := context.Background()
	svc, products, _ := newInventoryServiceUnderTest()
	products.On("List", ctx).Return([]domain.Product{*concreteMix(50)}, nil)

	stock, err := svc.AllStock(ctx)

	require.NoError(t, err)
	require.Len(t, stock, 1)
	assert.Equal(t, 50, stock[0].CurrentStock)
}
