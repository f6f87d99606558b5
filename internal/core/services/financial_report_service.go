package services

import (
	"Warehouse/internal/core/domain"
	"Warehouse/internal/core/ports"
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// FinancialReport is a snapshot of the running totals.
type FinancialReport struct {
	TotalSales     float64
	TotalPurchases float64
	NetIncome      float64
}

// FinancialReportService accumulates sales and purchase totals for
// the lifetime of the process.
type FinancialReportService struct {
	mu             sync.Mutex
	totalSales     float64
	totalPurchases float64
	log            zerolog.Logger
}

var _ ports.Subscriber = (*FinancialReportService)(nil)

func NewFinancialReportService(baseLogger *zerolog.Logger) *FinancialReportService {
	return &FinancialReportService{
		log: baseLogger.With().Str("component", "financial_report_service").Logger(),
	}
}

func (s *FinancialReportService) Name() string { return "FinancialReportService" }

func (s *FinancialReportService) HandleEvent(_ context.Context, event domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch p := event.Payload.(type) {
	case domain.CustomerOrderCreatedPayload:
		s.totalSales += sum(p.Products)
	case domain.StockReplenishedPayload:
		s.totalPurchases += sum(p.Products)
	default:
		s.log.Debug().Str("event_type", string(event.Type)).Msg("Event does not affect the report")
		return nil
	}

	s.log.Info().
		Float64("total_sales", s.totalSales).
		Float64("total_purchases", s.totalPurchases).
		Msg("Report updated")
	return nil
}

// Report returns the current totals.
func (s *FinancialReportService) Report() FinancialReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	return FinancialReport{
		TotalSales:     s.totalSales,
		TotalPurchases: s.totalPurchases,
		NetIncome:      s.totalSales - s.totalPurchases,
	}
}

func sum(items []domain.OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Total()
	}
	return total
}
