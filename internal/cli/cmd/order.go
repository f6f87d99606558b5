package cmd

import (
	"Warehouse/internal/cli"
	"Warehouse/internal/core/domain"
	"fmt"

	"github.com/spf13/cobra"
)

func NewOrderCommand(rt *Runtime) *cobra.Command {
	var (
		customerID string
		productID  string
		quantity   int
		unitPrice  float64
	)

	orderCmd := &cobra.Command{
		Use:   "order",
		Short: "Place one order and print the financial report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("unit-price") {
				unitPrice = rt.Config.OrderUnitPrice
			}

			order, err := rt.App.Customers.PlaceOrder(cmd.Context(), customerID, domain.CustomerOrder{
				Products: []domain.OrderItem{{ProductID: productID, Quantity: quantity, UnitPrice: unitPrice}},
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, cli.RenderOrder(order))
			fmt.Fprint(out, cli.RenderReport(rt.App.Reports.Report()))
			return nil
		},
	}

	orderCmd.Flags().StringVar(&customerID, "customer", "1", "customer ID")
	orderCmd.Flags().StringVar(&productID, "product", "", "product ID")
	orderCmd.Flags().IntVar(&quantity, "quantity", 0, "number of units")
	orderCmd.Flags().Float64Var(&unitPrice, "unit-price", 0, "unit price (default ORDER_UNIT_PRICE)")
	_ = orderCmd.MarkFlagRequired("product")
	_ = orderCmd.MarkFlagRequired("quantity")

	return orderCmd
}
