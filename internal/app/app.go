package app

import (
	"Warehouse/internal/adapters/eventbus"
	"Warehouse/internal/adapters/memory"
	"Warehouse/internal/core/domain"
	"Warehouse/internal/core/ports"
	"Warehouse/internal/core/services"
	"fmt"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// App is the wired warehouse: stores, bus and the four services.
type App struct {
	Bus       ports.EventBus
	Customers *services.CustomerService
	Inventory *services.InventoryService
	Suppliers *services.SupplierService
	Reports   *services.FinancialReportService
}

// New builds the in-memory stores from seed, wraps the bus with
// tracing and metrics, and subscribes the services. Nil providers
// fall back to the otel globals.
func New(seed memory.Seed, tp trace.TracerProvider, mp metric.MeterProvider, baseLogger *zerolog.Logger) (*App, error) {
	log := baseLogger.With().Str("component", "app").Logger()

	if err := seed.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	if mp == nil {
		mp = otel.GetMeterProvider()
	}

	metrics, err := eventbus.NewMetrics(mp.Meter(eventbus.TracerName))
	if err != nil {
		return nil, fmt.Errorf("create event bus metrics: %w", err)
	}
	bus := eventbus.NewObservableEventBus(
		eventbus.NewInMemoryEventBus(baseLogger),
		tp.Tracer(eventbus.TracerName),
		metrics,
	)

	customerRepo := memory.NewCustomerRepository(seed.Customers, baseLogger)
	supplierRepo := memory.NewSupplierRepository(seed.Suppliers, baseLogger)
	productRepo := memory.NewProductRepository(seed.Products, baseLogger)
	orderRepo := memory.NewOrderRepository(baseLogger)
	purchaseOrderRepo := memory.NewPurchaseOrderRepository(baseLogger)

	a := &App{
		Bus:       bus,
		Customers: services.NewCustomerService(customerRepo, orderRepo, bus, baseLogger),
		Inventory: services.NewInventoryService(productRepo, bus, baseLogger),
		Suppliers: services.NewSupplierService(productRepo, supplierRepo, purchaseOrderRepo, bus, baseLogger),
		Reports:   services.NewFinancialReportService(baseLogger),
	}

	subscriptions := []struct {
		eventType  domain.EventType
		subscriber ports.Subscriber
	}{
		{domain.EventCustomerOrderCreated, a.Inventory},
		{domain.EventCustomerOrderCreated, a.Reports},
		{domain.EventReorderStock, a.Suppliers},
		{domain.EventStockReplenished, a.Reports},
	}
	for _, s := range subscriptions {
		if err := bus.Subscribe(s.eventType, s.subscriber); err != nil {
			return nil, fmt.Errorf("subscribe %s to %s: %w", s.subscriber.Name(), s.eventType, err)
		}
	}

	log.Info().
		Int("customers", len(seed.Customers)).
		Int("suppliers", len(seed.Suppliers)).
		Int("products", len(seed.Products)).
		Int("subscriptions", bus.TotalSubscribersCount()).
		Msg("Warehouse initialized")
	return a, nil
}
