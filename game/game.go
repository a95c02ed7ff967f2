// Package game wires map generation, robot movement and collection into a
// frame-driven simulation that a host advances with elapsed time.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/pthm-cable/swarm/components"
	"github.com/pthm-cable/swarm/config"
	"github.com/pthm-cable/swarm/systems"
	"github.com/pthm-cable/swarm/telemetry"
	"github.com/pthm-cable/swarm/world"
)

// Game holds the complete simulation state.
type Game struct {
	cfg  *config.Config
	seed int64
	rng  *rand.Rand

	grid  *world.GridMap
	store *world.Store
	base  components.Position

	// noise holds every cell's generation noise value, row-major.
	noise []float64

	// Systems
	scheduler *systems.RobotScheduler
	resolver  systems.CollectionResolver

	// Telemetry
	collector     *telemetry.Collector
	outputManager *telemetry.OutputManager
	mapSummary    telemetry.MapSummary
	perf          *PerfStats
	logStats      bool
	statsCallback func(telemetry.WindowStats)

	// State
	tick  int32 // movement ticks fired
	frame int64 // Advance calls
}

// New generates the map, spawns the robots and prepares telemetry.
func New(cfg *config.Config, opts Options) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sampler, err := systems.NewSampler(cfg.Noise.Algorithm, opts.Seed)
	if err != nil {
		return nil, err
	}
	rule, err := systems.ParseParkRule(cfg.Robots.ParkRule)
	if err != nil {
		return nil, err
	}

	field := systems.NewNoiseField(sampler, cfg.Noise.Scale)
	gen := systems.NewGenerator(field, systems.ThresholdsFromConfig(cfg.Classification), opts.Seed)
	generation, err := gen.Generate(cfg.Grid.Width, cfg.Grid.Height)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:           cfg,
		seed:          opts.Seed,
		rng:           gen.Rand(),
		grid:          generation.Grid,
		store:         generation.Store,
		base:          generation.Base,
		noise:         generation.Samples,
		scheduler:     systems.NewRobotScheduler(cfg.Scheduler.MovePeriod, rule),
		collector:     telemetry.NewCollector(cfg.Telemetry.WindowTicks, cfg.Scheduler.MovePeriod),
		mapSummary:    telemetry.NewMapSummary(opts.Seed, cfg.Grid.Width, cfg.Grid.Height, generation.Bands, generation.Samples),
		perf:          NewPerfStats(),
		logStats:      opts.LogStats || cfg.Telemetry.LogStats,
		statsCallback: opts.StatsCallback,
	}

	slog.Info("map generated",
		"seed", opts.Seed,
		"noise", cfg.Noise.Algorithm,
		"base", g.base.String(),
		"summary", g.mapSummary,
	)

	if err := g.spawnRobots(cfg.Robots.Count); err != nil {
		return nil, err
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	g.outputManager = om
	if om != nil {
		if err := om.WriteConfig(cfg); err != nil {
			om.Close()
			return nil, err
		}
		if err := om.WriteMapSummary(g.mapSummary); err != nil {
			om.Close()
			return nil, err
		}
		slog.Info("output enabled", "dir", om.Dir())
	}

	return g, nil
}

// Advance runs one frame: the movement timer accumulates dt and may fire a
// movement tick, then collectors are resolved against their current cells.
func (g *Game) Advance(dt float64) systems.Report {
	g.frame++

	start := time.Now()
	res := g.scheduler.Tick(dt, g.store)
	g.perf.Record("scheduler", time.Since(start))

	if res.Fired {
		g.onMoveTick(res.Moved, res.Parked)
	}

	report := g.resolve()

	if res.Fired {
		g.flushTelemetry()
	}
	return report
}

// Step forces one movement tick regardless of the timer, then resolves.
func (g *Game) Step() systems.Report {
	g.frame++

	start := time.Now()
	moved, parked := g.scheduler.Step(g.store)
	g.perf.Record("scheduler", time.Since(start))

	g.onMoveTick(moved, parked)
	report := g.resolve()
	g.flushTelemetry()
	return report
}

func (g *Game) onMoveTick(moved, parked int) {
	g.tick++
	g.collector.Record(telemetry.NewMoveEvent(g.tick, moved, parked))
	slog.Debug("robots moved", "tick", g.tick, "moved", moved, "parked", parked)
}

// resolve runs the collection resolver and records its report.
func (g *Game) resolve() systems.Report {
	start := time.Now()
	report := g.resolver.Resolve(g.store)
	g.perf.Record("resolver", time.Since(start))

	g.recordReport(report)
	return report
}

// Grid returns the map dimensions.
func (g *Game) Grid() *world.GridMap { return g.grid }

// Store returns the entity store. Hosts must treat it as read-only.
func (g *Game) Store() *world.Store { return g.store }

// Base returns the base position.
func (g *Game) Base() components.Position { return g.base }

// Noise returns the noise value cell (x, y) was classified from.
func (g *Game) Noise(x, y int) float64 {
	p := g.grid.Wrap(components.Position{X: x, Y: y})
	return g.noise[p.Y*g.grid.Width()+p.X]
}

// Tick returns the number of movement ticks fired so far.
func (g *Game) Tick() int32 { return g.tick }

// Frame returns the number of Advance and Step calls so far.
func (g *Game) Frame() int64 { return g.frame }

// Seed returns the seed the map was generated from.
func (g *Game) Seed() int64 { return g.seed }

// Config returns the configuration the game was built with.
func (g *Game) Config() *config.Config { return g.cfg }

// MapSummary returns the band counts and noise statistics of the map.
func (g *Game) MapSummary() telemetry.MapSummary { return g.mapSummary }

// Perf returns per-system timing samples.
func (g *Game) Perf() *PerfStats { return g.perf }

// TimeToMove returns the seconds left until the next movement tick.
func (g *Game) TimeToMove() float64 {
	t := g.scheduler.Timer()
	return t.Period() - t.Elapsed()
}

// Collected returns the running number of collected resources per kind.
func (g *Game) Collected() map[components.ResourceKind]int {
	out := make(map[components.ResourceKind]int, len(components.ResourceKinds))
	for _, k := range components.ResourceKinds {
		out[k] = g.collector.TotalCollected(k)
	}
	return out
}

// Remaining returns the live resource count per kind.
func (g *Game) Remaining() map[components.ResourceKind]int {
	return g.store.CountResources()
}

// Close flushes and closes telemetry output.
func (g *Game) Close() error {
	if g.outputManager == nil {
		return nil
	}
	if err := g.outputManager.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	return nil
}
