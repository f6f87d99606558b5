package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv         string
	LogLevel       string
	OrderUnitPrice float64
	SeedFile       string
}

// DevMode reports whether human-readable logging should be used.
func (c *Config) DevMode() bool {
	return c.AppEnv == "dev"
}

// Load loads configuration from environment variables, after
// merging any .env file found in the working directory.
func Load() (*Config, error) {
	// A missing .env is fine, OS-set env vars are used instead.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()

	bindings := map[string]string{
		"app.env":          "APP_ENV",
		"log.level":        "LOG_LEVEL",
		"order.unit_price": "ORDER_UNIT_PRICE",
		"seed.file":        "SEED_FILE",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("could not bind %s: %w", key, err)
		}
	}

	v.SetDefault("app.env", "dev")
	v.SetDefault("log.level", "info")
	v.SetDefault("order.unit_price", 30.0)

	cfg := Config{
		AppEnv:         strings.ToLower(v.GetString("app.env")),
		LogLevel:       strings.ToLower(v.GetString("log.level")),
		OrderUnitPrice: v.GetFloat64("order.unit_price"),
		SeedFile:       v.GetString("seed.file"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the application cannot start with.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level: %w", c.LogLevel, err)
	}
	if c.OrderUnitPrice < 0 {
		return fmt.Errorf("ORDER_UNIT_PRICE cannot be negative, got %v", c.OrderUnitPrice)
	}
	if c.SeedFile != "" {
		if _, err := os.Stat(c.SeedFile); err != nil {
			return fmt.Errorf("SEED_FILE %s is not readable: %w", c.SeedFile, err)
		}
	}
	return nil
}
