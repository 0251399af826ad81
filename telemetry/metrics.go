package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects Prometheus series around Engine.Perform, grounded on
// the teacher pack's infrastructure/middleware/prometheus_metrics.go
// CounterVec/HistogramVec/promauto idiom.
type Metrics struct {
	stepsTotal     *prometheus.CounterVec
	stepErrors     *prometheus.CounterVec
	eventsGathered *prometheus.HistogramVec
	stepDuration   *prometheus.HistogramVec
}

// NewMetrics registers the engine's series in the given registerer.
// Passing nil registers against prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		stepsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reactopo_engine_steps_total",
				Help: "Total number of reactive-topology engine steps performed.",
			},
			[]string{"outcome"},
		),
		stepErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reactopo_engine_step_errors_total",
				Help: "Total number of steps that aborted with a fatal error, by kind.",
			},
			[]string{"error"},
		),
		eventsGathered: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "reactopo_engine_events_gathered",
				Help:    "Number of candidate events the gatherer produced per step.",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{},
		),
		stepDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "reactopo_engine_step_duration_seconds",
				Help:    "Wall-clock duration of one Engine.Perform call.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
	}
}

// Observe records the outcome of one Perform call.
func (m *Metrics) Observe(events int, dur time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.stepsTotal.WithLabelValues(outcome).Inc()
	m.stepDuration.WithLabelValues(outcome).Observe(dur.Seconds())
	if err != nil {
		m.stepErrors.WithLabelValues(errorKind(err)).Inc()
		return
	}
	m.eventsGathered.WithLabelValues().Observe(float64(events))
}
