package game

import "github.com/pthm-cable/swarm/telemetry"

// Options holds per-run settings that are not part of the YAML config.
type Options struct {
	Seed      int64  // drives noise, base placement and robot spawning
	OutputDir string // CSV telemetry directory; empty disables output
	LogStats  bool   // log window stats via slog

	// StatsCallback, if set, receives every flushed telemetry window.
	StatsCallback func(telemetry.WindowStats)
}
