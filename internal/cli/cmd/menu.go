package cmd

import (
	"Warehouse/internal/cli"
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func NewMenuCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, rt)
		},
	}
}

// runMenu treats an interrupt as a normal way to leave the menu.
func runMenu(cmd *cobra.Command, rt *Runtime) error {
	menu := cli.NewWarehouseMenu(rt.App, rt.Config.OrderUnitPrice, cmd.InOrStdin(), cmd.OutOrStdout(), &rt.Log)
	err := menu.Run(cmd.Context())
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(cmd.OutOrStdout())
		rt.Log.Info().Msg("Menu interrupted")
		return nil
	}
	return err
}
