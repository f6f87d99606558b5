package cli

import (
	"Warehouse/internal/core/domain"
	"Warehouse/internal/core/services"
	"context"
	"strconv"
)

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, customerID string, order domain.CustomerOrder) (*domain.CustomerOrder, error)
}

type ReportSource interface {
	Report() services.FinancialReport
}

type StockLister interface {
	AllStock(ctx context.Context) ([]domain.Product, error)
}

type SupplierLister interface {
	AllSuppliers(ctx context.Context) ([]domain.Supplier, error)
}

type OrderLister interface {
	OrdersForCustomer(ctx context.Context, customerID string) ([]domain.CustomerOrder, error)
}

type PurchaseOrderLister interface {
	PurchaseOrdersForSupplier(ctx context.Context, supplierID string) ([]domain.PurchaseOrder, error)
}

type placeOrderOption struct {
	orders    OrderPlacer
	unitPrice float64
}

// NewPlaceOrderOption asks for a customer, a product and a quantity,
// and places a one-line order at unitPrice.
func NewPlaceOrderOption(orders OrderPlacer, unitPrice float64) Option {
	return &placeOrderOption{orders: orders, unitPrice: unitPrice}
}

func (o *placeOrderOption) Choice() string { return "1" }
func (o *placeOrderOption) Label() string  { return "Place Order" }

func (o *placeOrderOption) Handle(ctx context.Context, s *Session) error {
	customerID, err := s.Prompt(ctx, "Enter Customer ID: ")
	if err != nil {
		return err
	}
	productID, err := s.Prompt(ctx, "Enter Product ID: ")
	if err != nil {
		return err
	}
	rawQuantity, err := s.Prompt(ctx, "Enter Quantity: ")
	if err != nil {
		return err
	}
	quantity, err := strconv.Atoi(rawQuantity)
	if err != nil {
		return domain.Validation("Quantity must be a whole number, got %q", rawQuantity)
	}

	order, err := o.orders.PlaceOrder(ctx, customerID, domain.CustomerOrder{
		Products: []domain.OrderItem{{ProductID: productID, Quantity: quantity, UnitPrice: o.unitPrice}},
	})
	if err != nil {
		return err
	}
	s.Print(RenderOrder(order))
	return nil
}

type reportOption struct {
	reports ReportSource
}

func NewReportOption(reports ReportSource) Option {
	return &reportOption{reports: reports}
}

func (o *reportOption) Choice() string { return "2" }
func (o *reportOption) Label() string  { return "View Financial Report" }

func (o *reportOption) Handle(_ context.Context, s *Session) error {
	s.Print(RenderReport(o.reports.Report()))
	return nil
}

type inventoryOption struct {
	stock StockLister
}

func NewInventoryOption(stock StockLister) Option {
	return &inventoryOption{stock: stock}
}

func (o *inventoryOption) Choice() string { return "3" }
func (o *inventoryOption) Label() string  { return "View Inventory Stock Levels" }

func (o *inventoryOption) Handle(ctx context.Context, s *Session) error {
	products, err := o.stock.AllStock(ctx)
	if err != nil {
		return err
	}
	s.Print(RenderInventory(products))
	return nil
}

type suppliersOption struct {
	suppliers SupplierLister
}

func NewSuppliersOption(suppliers SupplierLister) Option {
	return &suppliersOption{suppliers: suppliers}
}

func (o *suppliersOption) Choice() string { return "4" }
func (o *suppliersOption) Label() string  { return "View Suppliers" }

func (o *suppliersOption) Handle(ctx context.Context, s *Session) error {
	suppliers, err := o.suppliers.AllSuppliers(ctx)
	if err != nil {
		return err
	}
	s.Print(RenderSuppliers(suppliers))
	return nil
}

type customerOrdersOption struct {
	orders OrderLister
}

func NewCustomerOrdersOption(orders OrderLister) Option {
	return &customerOrdersOption{orders: orders}
}

func (o *customerOrdersOption) Choice() string { return "6" }
func (o *customerOrdersOption) Label() string  { return "View Customer Orders" }

func (o *customerOrdersOption) Handle(ctx context.Context, s *Session) error {
	customerID, err := s.Prompt(ctx, "Enter Customer ID: ")
	if err != nil {
		return err
	}
	orders, err := o.orders.OrdersForCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	s.Print(RenderOrders(customerID, orders))
	return nil
}

type purchaseOrdersOption struct {
	purchaseOrders PurchaseOrderLister
}

func NewPurchaseOrdersOption(purchaseOrders PurchaseOrderLister) Option {
	return &purchaseOrdersOption{purchaseOrders: purchaseOrders}
}

func (o *purchaseOrdersOption) Choice() string { return "7" }
func (o *purchaseOrdersOption) Label() string  { return "View Purchase Orders" }

func (o *purchaseOrdersOption) Handle(ctx context.Context, s *Session) error {
	supplierID, err := s.Prompt(ctx, "Enter Supplier ID: ")
	if err != nil {
		return err
	}
	pos, err := o.purchaseOrders.PurchaseOrdersForSupplier(ctx, supplierID)
	if err != nil {
		return err
	}
	s.Print(RenderPurchaseOrders(supplierID, pos))
	return nil
}

type exitOption struct{}

func NewExitOption() Option { return exitOption{} }

func (exitOption) Choice() string { return "5" }
func (exitOption) Label() string  { return "Exit" }

func (exitOption) Handle(context.Context, *Session) error { return ErrExit }
