// Command reactopo-sim wires the reactive topology engine (packages
// particle, topology, reaction, topostore, engine, adapters) against a
// synthetic uniform-grid neighbor list for demonstration and manual
// testing (SPEC_FULL.md §2's C11). It is not a physics simulator: it
// seeds a handful of particles, re-buckets them into a fresh
// adapters.UniformGridList every step (diffusion itself is out of
// scope, spec.md §1), and runs the engine's reactive step loop.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/reactopo/reactopo/adapters"
	"github.com/reactopo/reactopo/config"
	"github.com/reactopo/reactopo/engine"
	"github.com/reactopo/reactopo/particle"
	"github.com/reactopo/reactopo/telemetry"
	"github.com/reactopo/reactopo/topology"
	"github.com/reactopo/reactopo/topostore"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to a reaction-table YAML document (optional; a small built-in demo registry is used if empty)")
		steps       = flag.Int("steps", 100, "number of integration steps to run")
		seed        = flag.Int64("seed", 0, "RNG seed (0 selects the adapters package's default)")
		cellSize    = flag.Float64("cell-size", 1.5, "uniform grid cell size")
		metricsAddr = flag.String("metrics-addr", "", "if set, serve Prometheus /metrics on this address")
	)
	flag.Parse()

	runID := uuid.New().String()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil)).With("run_id", runID)

	if *metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			logger.Info("serving metrics", "addr", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				logger.Error("metrics server stopped", "error", err)
			}
		}()
	}

	built, err := loadOrBuildDemoRegistry(*configPath)
	if err != nil {
		logger.Error("failed to build reaction registry", "error", err)
		os.Exit(1)
	}

	pstore := particle.NewStore()
	topologies := topostore.NewStore()
	head, _ := built.Types.LookupByName("Head")
	t1 := built.TopologyTypes["T1"]
	for i := 0; i < 6; i++ {
		idx := pstore.Activate(particle.Entry{
			Type:     head.ID,
			Position: particle.Vec3{float64(i) * 0.7, 0, 0},
		})
		h := topologies.Add(topology.NewGraph(t1, idx, head.ID))
		entry, _ := pstore.EntryAt(idx)
		entry.TopologyIndex = int(h)
	}

	ctx := &adapters.BasicContext{
		Box:      particle.Vec3{20, 20, 20},
		Periodic: [3]bool{true, true, true},
		KbT:      1.0,
		Dt:       0.01,
		Store:    pstore,
		Types:    built.Types,
	}

	rng := adapters.NewSeededRng(*seed)
	metrics := telemetry.NewMetrics(prometheus.DefaultRegisterer)

	bg := context.Background()
	for step := 0; step < *steps; step++ {
		neighbors, err := adapters.NewUniformGridList(pstore, ctx, *cellSize)
		if err != nil {
			logger.Error("failed to rebuild neighbor list", "step", step, "error", err)
			os.Exit(1)
		}

		eng := engine.New(built.Registry, pstore, topologies, built.Types, neighbors, rng, ctx)
		wrapped := telemetry.Wrap(eng, metrics, runID)

		n, err := wrapped.Perform(bg)
		if err != nil {
			logger.Error("step failed", "step", step, "error", err)
			os.Exit(1)
		}
		logger.Info("step complete", "step", step, "events_gathered", n, "active_topologies", activeCount(topologies))
	}

	if *metricsAddr != "" {
		// Give a scraper a moment to see the final values before exiting.
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("done")
}

func activeCount(ts *topostore.Store) int {
	n := 0
	_ = ts.Active(func(topostore.Handle, *topology.Graph) error {
		n++
		return nil
	})
	return n
}

// loadOrBuildDemoRegistry decodes configPath via package config when set,
// otherwise builds the same Head/Mid two-type, one-fusion-reaction
// registry TestSpatialFusionFiresWithExpectedOutcome exercises (spec.md
// §8's S1), so the binary has something to react with out of the box.
func loadOrBuildDemoRegistry(configPath string) (*config.Built, error) {
	if configPath != "" {
		doc, err := config.LoadRegistryConfig(configPath)
		if err != nil {
			return nil, err
		}
		return config.BuildRegistry(*doc)
	}

	doc := config.RegistryConfig{
		ParticleTypes: []config.ParticleTypeConfig{
			{Name: "Head", Flavor: "topology"},
			{Name: "Mid", Flavor: "topology"},
		},
		TopologyTypes: []string{"T1", "T2"},
		Spatial: []config.SpatialReactionCfg{
			{
				Name:       "fuse_heads",
				Type1:      "Head",
				TopType1:   "T1",
				Type2:      "Head",
				TopType2:   "T1",
				TypeTo1:    "Mid",
				TopTypeTo1: "T2",
				TypeTo2:    "Mid",
				TopTypeTo2: "T2",
				Rate:       10.0,
				Radius:     1.0,
				IsFusion:   true,
			},
		},
	}
	return config.BuildRegistry(doc)
}
