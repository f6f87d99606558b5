package cmd

import (
	"Warehouse/internal/adapters/memory"
	"Warehouse/internal/app"
	"Warehouse/internal/shared/config"
	"Warehouse/internal/shared/logger"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Runtime is what every command needs once flags are parsed.
type Runtime struct {
	SeedFile string
	Config   *config.Config
	Log      zerolog.Logger
	App      *app.App
}

// NewRootCommand builds the warehouse command tree. Without a
// subcommand it starts the interactive menu.
func NewRootCommand() *cobra.Command {
	rt := &Runtime{}

	rootCmd := &cobra.Command{
		Use:   "warehouse",
		Short: "Warehouse - orders, stock and supplier reordering",
		Long: `Warehouse places customer orders against an in-memory inventory.
Low stock triggers supplier reorders and every sale and purchase is
recorded in a running financial report.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, rt)
		},
	}

	rootCmd.PersistentFlags().StringVar(&rt.SeedFile, "seed", "", "YAML seed file (overrides SEED_FILE)")

	rootCmd.AddCommand(
		NewMenuCommand(rt),
		NewOrderCommand(rt),
		NewInventoryCommand(rt),
		NewSuppliersCommand(rt),
		NewOrdersCommand(rt),
		NewPurchaseOrdersCommand(rt),
	)
	return rootCmd
}

func (rt *Runtime) load(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if rt.SeedFile != "" {
		cfg.SeedFile = rt.SeedFile
	}
	rt.Config = cfg

	// Logs go to stderr so stdout only carries menu and report text.
	rt.Log = logger.NewWithWriter(cmd.ErrOrStderr(), cfg.DevMode(), cfg.LogLevel)
	rt.Log.Debug().
		Str("app_env", cfg.AppEnv).
		Float64("order_unit_price", cfg.OrderUnitPrice).
		Str("seed_file", cfg.SeedFile).
		Msg("Configuration loaded")

	seed := memory.DefaultSeed()
	if cfg.SeedFile != "" {
		seed, err = memory.LoadSeed(cfg.SeedFile)
		if err != nil {
			return err
		}
	}

	rt.App, err = app.New(seed, nil, nil, &rt.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize warehouse: %w", err)
	}
	return nil
}
