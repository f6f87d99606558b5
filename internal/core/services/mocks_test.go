package services

import (
	"Warehouse/internal/core/domain"
	"Warehouse/internal/core/ports"
	"context"

	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

// MockCustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

var _ ports.CustomerRepository = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepository) Save(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

// MockOrderRepository
type MockOrderRepository struct {
	mock.Mock
}

var _ ports.OrderRepository = (*MockOrderRepository)(nil)

func (m *MockOrderRepository) Save(ctx context.Context, order *domain.CustomerOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, order *domain.CustomerOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
func (m *MockOrderRepository) GetByID(ctx context.Context, id string) (*domain.CustomerOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerOrder), args.Error(1)
}
func (m *MockOrderRepository) GetByCustomerID(ctx context.Context, customerID string) ([]domain.CustomerOrder, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomerOrder), args.Error(1)
}

// MockProductRepository
type MockProductRepository struct {
	mock.Mock
}

var _ ports.ProductRepository = (*MockProductRepository)(nil)

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductRepository) Save(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}
func (m *MockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}
func (m *MockProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

// MockSupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

var _ ports.SupplierRepository = (*MockSupplierRepository)(nil)

func (m *MockSupplierRepository) GetByID(ctx context.Context, id string) (*domain.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}
func (m *MockSupplierRepository) Save(ctx context.Context, supplier *domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}
func (m *MockSupplierRepository) Update(ctx context.Context, supplier *domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}
func (m *MockSupplierRepository) List(ctx context.Context) ([]domain.Supplier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

// MockPurchaseOrderRepository
type MockPurchaseOrderRepository struct {
	mock.Mock
}

var _ ports.PurchaseOrderRepository = (*MockPurchaseOrderRepository)(nil)

func (m *MockPurchaseOrderRepository) Save(ctx context.Context, po *domain.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}
func (m *MockPurchaseOrderRepository) Update(ctx context.Context, po *domain.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}
func (m *MockPurchaseOrderRepository) GetBySupplierID(ctx context.Context, supplierID string) ([]domain.PurchaseOrder, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseOrder), args.Error(1)
}

// MockEventBus only records publishes; registry methods are not used by the services.
type MockEventBus struct {
	mock.Mock
}

var _ ports.EventBus = (*MockEventBus)(nil)

func (m *MockEventBus) Subscribe(eventType domain.EventType, subscriber ports.Subscriber) error {
	args := m.Called(eventType, subscriber)
	return args.Error(0)
}
func (m *MockEventBus) Unsubscribe(eventType domain.EventType, subscriber ports.Subscriber) bool {
	args := m.Called(eventType, subscriber)
	return args.Bool(0)
}
func (m *MockEventBus) UnsubscribeFromAll(subscriber ports.Subscriber) int {
	args := m.Called(subscriber)
	return args.Int(0)
}
func (m *MockEventBus) Publish(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockEventBus) Subscribers(eventType domain.EventType) []ports.Subscriber {
	args := m.Called(eventType)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]ports.Subscriber)
}
func (m *MockEventBus) ClearSubscriptions() {
	m.Called()
}
func (m *MockEventBus) TotalSubscribersCount() int {
	args := m.Called()
	return args.Int(0)
}
func (m *MockEventBus) EventTypesCount() int {
	args := m.Called()
	return args.Int(0)
}

func concreteMix(stock int) *domain.Product {
	return &domain.Product{
		ID:                "product-001",
		SupplierID:        "supplier-123",
		Name:              "Concrete Mix",
		UnitCost:          10,
		CurrentStock:      stock,
		MaxStockLevel:     50,
		MinStockThreshold: 10,
	}
}
