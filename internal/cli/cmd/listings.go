package cmd

import (
	"Warehouse/internal/cli"
	"fmt"

	"github.com/spf13/cobra"
)

func NewInventoryCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "inventory",
		Short: "Print stock levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := rt.App.Inventory.AllStock(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), cli.RenderInventory(products))
			return nil
		},
	}
}

func NewSuppliersCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "suppliers",
		Short: "Print registered suppliers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			suppliers, err := rt.App.Suppliers.AllSuppliers(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), cli.RenderSuppliers(suppliers))
			return nil
		},
	}
}

func NewOrdersCommand(rt *Runtime) *cobra.Command {
	var customerID string

	ordersCmd := &cobra.Command{
		Use:   "orders",
		Short: "Print a customer's orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := rt.App.Customers.OrdersForCustomer(cmd.Context(), customerID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), cli.RenderOrders(customerID, orders))
			return nil
		},
	}
	ordersCmd.Flags().StringVar(&customerID, "customer", "1", "customer ID")
	return ordersCmd
}

func NewPurchaseOrdersCommand(rt *Runtime) *cobra.Command {
	var supplierID string

	purchaseOrdersCmd := &cobra.Command{
		Use:   "purchase-orders",
		Short: "Print the purchase orders sent to a supplier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := rt.App.Suppliers.PurchaseOrdersForSupplier(cmd.Context(), supplierID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), cli.RenderPurchaseOrders(supplierID, pos))
			return nil
		},
	}
	purchaseOrdersCmd.Flags().StringVar(&supplierID, "supplier", "", "supplier ID")
	_ = purchaseOrdersCmd.MarkFlagRequired("supplier")
	return purchaseOrdersCmd
}
