package services

import (
	"Warehouse/internal/core/domain"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type supplierFixture struct {
	svc            *SupplierService
	products       *MockProductRepository
	suppliers      *MockSupplierRepository
	purchaseOrders *MockPurchaseOrderRepository
	bus            *MockEventBus
}

func newSupplierServiceUnderTest() supplierFixture {
	nopLogger := zerolog.Nop()
	f := supplierFixture{
		products:       new(MockProductRepository),
		suppliers:      new(MockSupplierRepository),
		purchaseOrders: new(MockPurchaseOrderRepository),
		bus:            new(MockEventBus),
	}
	f.svc = NewSupplierService(f.products, f.suppliers, f.purchaseOrders, f.bus, &nopLogger)
	return f
}

func reorder(productID string) domain.Event {
	return domain.NewEvent(domain.ReorderStockPayload{
		Products: []domain.OrderItem{{ProductID: productID, Quantity: 45, UnitPrice: 30}},
	})
}

func TestSupplierService_Replenish_Success(t *testing.T) {
	ctx := context.Background()
	f := newSupplierServiceUnderTest()

	f.products.On("GetByID", ctx, "product-001").Return(concreteMix(5), nil)
	f.suppliers.On("GetByID", ctx, "supplier-123").Return(&domain.Supplier{ID: "supplier-123"}, nil)
	f.purchaseOrders.On("Save", ctx, mock.MatchedBy(func(po *domain.PurchaseOrder) bool {
		return po.SupplierID == "supplier-123" &&
			po.Status == domain.PurchaseOrderPending &&
			len(po.Items) == 1 &&
			po.Items[0].Quantity == 45 &&
			po.Items[0].UnitPrice == 10
	})).Return(nil)
	f.suppliers.On("Update", ctx, mock.MatchedBy(func(s *domain.Supplier) bool {
		return len(s.OrderHistory) == 1
	})).Return(nil)
	f.products.On("Update", ctx, mock.MatchedBy(func(p *domain.Product) bool {
		return p.CurrentStock == 50
	})).Return(nil)
	f.bus.On("Publish", ctx, domain.NewEvent(domain.StockReplenishedPayload{
		Products: []domain.OrderItem{{ProductID: "product-001", Quantity: 45, UnitPrice: 10}},
	})).Return(nil)

	ok, err := f.svc.Replenish(ctx, reorder("product-001"))

	require.NoError(t, err)
	assert.True(t, ok)
	f.products.AssertExpectations(t)
	f.suppliers.AssertExpectations(t)
	f.purchaseOrders.AssertExpectations(t)
	f.bus.AssertExpectations(t)
}

func TestSupplierService_Replenish_IgnoresOtherEvents(t *testing.T) {
	f := newSupplierServiceUnderTest()

	ok, err := f.svc.Replenish(context.Background(), domain.NewEvent(domain.StockReplenishedPayload{}))

	require.NoError(t, err)
	assert.False(t, ok)
	f.products.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestSupplierService_Replenish_UnknownProduct(t *testing.T) {
	ctx := context.Background()
	f := newSupplierServiceUnderTest()
	f.products.On("GetByID", ctx, "product-999").Return(nil, nil)

	ok, err := f.svc.Replenish(ctx, reorder("product-999"))

	assert.False(t, ok)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Product product-999 not found")
}

func TestSupplierService_Replenish_UnknownSupplier(t *testing.T) {
	ctx := context.Background()
	f := newSupplierServiceUnderTest()
	f.products.On("GetByID", ctx, "product-001").Return(concreteMix(5), nil)
	f.suppliers.On("GetByID", ctx, "supplier-123").Return(nil, nil)

	ok, err := f.svc.Replenish(ctx, reorder("product-001"))

	assert.False(t, ok)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Supplier supplier-123 not found for product product-001")
	f.purchaseOrders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSupplierService_Replenish_AlreadyFull(t *testing.T) {
	ctx := context.Background()
	f := newSupplierServiceUnderTest()
	f.products.On("GetByID", ctx, "product-001").Return(concreteMix(50), nil)
	f.suppliers.On("GetByID", ctx, "supplier-123").Return(&domain.Supplier{ID: "supplier-123"}, nil)

	ok, err := f.svc.Replenish(ctx, reorder("product-001"))

	require.NoError(t, err)
	assert.True(t, ok)
	f.purchaseOrders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	f.bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestSupplierService_HandleEvent_PropagatesDownstreamError(t *testing.T) {
	ctx := context.Background()
	f := newSupplierServiceUnderTest()
	downstream := errors.New("report unavailable")

	f.products.On("GetByID", ctx, "product-001").Return(concreteMix(5), nil)
	f.suppliers.On("GetByID", ctx, "supplier-123").Return(&domain.Supplier{ID: "supplier-123"}, nil)
	f.purchaseOrders.On("Save", ctx, mock.Anything).Return(nil)
	f.suppliers.On("Update", ctx, mock.Anything).Return(nil)
	f.products.On("Update", ctx, mock.Anything).Return(nil)
	f.bus.On("Publish", ctx, mock.Anything).Return(downstream)

	err := f.svc.HandleEvent(ctx, reorder("product-001"))

	assert.ErrorIs(t, err, downstream)
}

func TestSupplierService_Listings(t *testing.T) {
	ctx := context.Background()
	f := newSupplierServiceUnderTest()
	f.suppliers.On("List", ctx).Return([]domain.Supplier{{ID: "supplier-123"}, {ID: "supplier-456"}}, nil)
	f.purchaseOrders.On("GetBySupplierID", ctx, "supplier-123").Return([]domain.PurchaseOrder{{ID: "po-1"}}, nil)

	suppliers, err := f.svc.AllSuppliers(ctx)
	require.NoError(t, err)
	assert.Len(t, suppliers, 2)

	pos, err := f.svc.PurchaseOrdersForSupplier(ctx, "supplier-123")
	require.NoError(t, err)
	assert.Len(t, pos, 1)
	assert.Equal(t, "SupplierService", f.svc.Name())
}
