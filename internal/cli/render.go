package cli

import (
	"Warehouse/internal/core/domain"
	"Warehouse/internal/core/services"
)

func RenderReport(report services.FinancialReport) string {
	return NewBuilder().
		WithTitle("=== Financial Report ===").
		WithLine("Total Sales: £%.2f", report.TotalSales).
		WithLine("Total Purchases: £%.2f", report.TotalPurchases).
		WithLine("Net Income: £%.2f", report.NetIncome).
		Build()
}

func RenderInventory(products []domain.Product) string {
	b := NewBuilder().WithTitle("=== Inventory Stock Levels ===")
	if len(products) == 0 {
		b.WithLine("No products in inventory.")
	}
	for _, p := range products {
		b.WithLine("%s (%s) - Current Stock: %d, Minimum Threshold: %d", p.Name, p.ID, p.CurrentStock, p.MinStockThreshold)
	}
	return b.Build()
}

func RenderSuppliers(suppliers []domain.Supplier) string {
	b := NewBuilder().WithTitle("=== Suppliers ===")
	if len(suppliers) == 0 {
		b.WithLine("No suppliers registered.")
	}
	for _, s := range suppliers {
		b.WithLine("%s - ID: %s", s.Name, s.ID)
	}
	return b.Build()
}

// RenderOrder confirms a placed order.
func RenderOrder(order *domain.CustomerOrder) string {
	return NewBuilder().
		WithLine("Order placed successfully!").
		WithLine("Order ID: %s, Total: £%.2f", order.ID, order.TotalAmount()).
		Build()
}

func RenderOrders(customerID string, orders []domain.CustomerOrder) string {
	b := NewBuilder().WithTitle("=== Orders for Customer " + customerID + " ===")
	if len(orders) == 0 {
		b.WithLine("No orders found.")
	}
	for _, o := range orders {
		b.WithLine("%s - %s, %d line(s), Total: £%.2f, Status: %s",
			o.ID, o.OrderDate.Format("2006-01-02 15:04"), len(o.Products), o.TotalAmount(), o.Status)
	}
	return b.Build()
}

func RenderPurchaseOrders(supplierID string, pos []domain.PurchaseOrder) string {
	b := NewBuilder().WithTitle("=== Purchase Orders for Supplier " + supplierID + " ===")
	if len(pos) == 0 {
		b.WithLine("No purchase orders found.")
	}
	for _, po := range pos {
		b.WithLine("%s - %s, Total: £%.2f, Status: %s",
			po.ID, po.OrderDate.Format("2006-01-02 15:04"), po.Total(), po.Status)
		for _, item := range po.Items {
			b.WithLine("  %s x %d @ £%.2f", item.ProductID, item.Quantity, item.UnitPrice)
		}
	}
	return b.Build()
}
