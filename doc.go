// Package reactopo implements a reactive topology engine for
// reaction-diffusion particle simulations: particles live in a flat
// store (package particle), are grouped into small connected
// topologies (package topology, package topostore), and react with
// each other and with their own topology according to a registry of
// spatial and structural reactions (package reaction) that a single
// conflict-serial step (package engine) samples and fires once per
// call. Packages adapters, config, telemetry and gexf supply the
// neighbor list / RNG / simulation-context boundary, YAML-driven
// registry construction, Prometheus/OpenTelemetry instrumentation, and
// a read-only GEXF exporter, respectively. Command reactopo-sim wires
// all of it into a runnable demonstration.
package reactopo
