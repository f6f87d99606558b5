package cli

import (
	"Warehouse/internal/app"
	"io"

	"github.com/rs/zerolog"
)

// NewWarehouseMenu registers the standard options against a. The two
// history views come after Exit so the first five keep their numbers.
func NewWarehouseMenu(a *app.App, unitPrice float64, in io.Reader, out io.Writer, baseLogger *zerolog.Logger) *Menu {
	menu := NewMenu("Warehouse Management System", in, out, baseLogger)
	menu.RegisterOption(NewPlaceOrderOption(a.Customers, unitPrice))
	menu.RegisterOption(NewReportOption(a.Reports))
	menu.RegisterOption(NewInventoryOption(a.Inventory))
	menu.RegisterOption(NewSuppliersOption(a.Suppliers))
	menu.RegisterOption(NewExitOption())
	menu.RegisterOption(NewCustomerOrdersOption(a.Customers))
	menu.RegisterOption(NewPurchaseOrdersOption(a.Suppliers))
	return menu
}
