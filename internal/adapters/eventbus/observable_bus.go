package eventbus

import (
	"Warehouse/internal/core/domain"
	"Warehouse/internal/core/ports"
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const TracerName = "Warehouse/internal/adapters/eventbus"

// ObservableEventBus wraps a bus with a span and metrics around Publish.
// Registry operations are passed straight through.
type ObservableEventBus struct {
	ports.EventBus
	tracer  trace.Tracer
	metrics *Metrics
}

var _ ports.EventBus = (*ObservableEventBus)(nil)

func NewObservableEventBus(bus ports.EventBus, tracer trace.Tracer, metrics *Metrics) *ObservableEventBus {
	return &ObservableEventBus{
		EventBus: bus,
		tracer:   tracer,
		metrics:  metrics,
	}
}

func (e *ObservableEventBus) Publish(ctx context.Context, event domain.Event) error {
	ctx, span := e.tracer.Start(ctx, "EventBus.Publish")
	defer span.End()

	span.SetAttributes(
		attribute.String("event.type", string(event.Type)),
		attribute.Int("event.items", len(event.Items())),
	)

	start := time.Now()
	err := e.EventBus.Publish(ctx, event)
	duration := time.Since(start).Seconds()

	if e.metrics != nil {
		e.metrics.RecordPublish(ctx, string(event.Type), duration, err == nil)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetStatus(codes.Ok, "")
	return nil
}
