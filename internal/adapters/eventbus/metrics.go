package eventbus

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the bus instruments.
type Metrics struct {
	publishLatency metric.Float64Histogram
	published      metric.Int64Counter
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.publishLatency, err = meter.Float64Histogram(
		"eventbus_publish_duration_seconds",
		metric.WithDescription("Time spent dispatching an event to all subscribers, cascade included"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("create eventbus_publish_duration histogram: %w", err)
	}

	m.published, err = meter.Int64Counter(
		"eventbus_events_published_total",
		metric.WithDescription("Events published on the bus"),
	)
	if err != nil {
		return nil, fmt.Errorf("create eventbus_events_published counter: %w", err)
	}

	return m, nil
}

func (m *Metrics) RecordPublish(ctx context.Context, eventType string, durationSeconds float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	attrs := metric.WithAttributes(
		attribute.String("event_type", eventType),
		attribute.String("status", status),
	)
	m.publishLatency.Record(ctx, durationSeconds, attrs)
	m.published.Add(ctx, 1, attrs)
}
