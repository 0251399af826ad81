// Package telemetry wraps Engine.Perform with Prometheus metrics and
// OpenTelemetry tracing (SPEC_FULL.md §2's C10). It observes the engine;
// it never changes its outcome.
package telemetry
