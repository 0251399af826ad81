package telemetry

import (
	"context"
	"time"

	"github.com/reactopo/reactopo/engine"
)

// InstrumentedEngine wraps an *engine.Engine with metrics and tracing
// around each Perform call. It adds no behavior of its own: a step still
// runs single-threaded to completion or aborts fatally, exactly as
// spec.md §5 requires; this package only observes the outcome.
type InstrumentedEngine struct {
	eng     *engine.Engine
	metrics *Metrics
	runID   string
}

// Wrap returns an InstrumentedEngine around eng. runID tags every span
// and metric this wrapper emits — callers typically pass a
// google/uuid-generated id unique to one simulation run.
func Wrap(eng *engine.Engine, metrics *Metrics, runID string) *InstrumentedEngine {
	return &InstrumentedEngine{eng: eng, metrics: metrics, runID: runID}
}

// Perform runs one engine step, recording its duration, event count, and
// outcome to both the Prometheus series and an OpenTelemetry span.
func (w *InstrumentedEngine) Perform(ctx context.Context) (int, error) {
	_, span := startStepSpan(ctx, w.runID)
	start := time.Now()

	events, err := w.eng.Perform()

	elapsed := time.Since(start)
	if w.metrics != nil {
		w.metrics.Observe(events, elapsed, err)
	}
	endStepSpan(span, events, err)
	return events, err
}
