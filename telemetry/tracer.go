package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName is the OpenTelemetry instrumentation scope for every span
// this package starts, grounded on the teacher pack's
// otel_budget_observer.go one-span-per-operation idiom
// (tracer := otel.Tracer("budget-manager")).
const tracerName = "reactopo/engine"

// startStepSpan starts the span covering one Engine.Perform call.
func startStepSpan(ctx context.Context, runID string) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)
	return tracer.Start(ctx, "Engine.Perform", trace.WithAttributes(
		attribute.String("reactopo.run_id", runID),
	))
}

// endStepSpan finalizes span with the step's outcome, mirroring
// OTelBudgetObserver.PostCheck's span.AddEvent/span.SetStatus pattern.
func endStepSpan(span trace.Span, events int, err error) {
	defer span.End()
	span.SetAttributes(attribute.Int("reactopo.events_gathered", events))
	if err != nil {
		span.AddEvent("engine.step_failed", trace.WithAttributes(
			attribute.String("reactopo.error_kind", errorKind(err)),
		))
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
