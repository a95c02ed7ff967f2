package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/swarm/systems"
)

// WindowStats holds aggregated statistics for a window of movement ticks.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Collections during window
	EnergyCollected     int     `csv:"energy_collected"`
	MineralCollected    int     `csv:"mineral_collected"`
	ScientificCollected int     `csv:"scientific_collected"`
	Misses              int     `csv:"misses"`
	HitRate             float64 `csv:"hit_rate"`

	// Movement
	Moves  int `csv:"moves"`
	Parked int `csv:"parked"` // robots parked at the last tick

	// Resources left at window end
	EnergyRemaining     int `csv:"energy_remaining"`
	MineralRemaining    int `csv:"mineral_remaining"`
	ScientificRemaining int `csv:"scientific_remaining"`
}

// Collected returns the total collections in the window.
func (s WindowStats) Collected() int {
	return s.EnergyCollected + s.MineralCollected + s.ScientificCollected
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("energy_collected", s.EnergyCollected),
		slog.Int("mineral_collected", s.MineralCollected),
		slog.Int("scientific_collected", s.ScientificCollected),
		slog.Int("misses", s.Misses),
		slog.Float64("hit_rate", s.HitRate),
		slog.Int("moves", s.Moves),
		slog.Int("parked", s.Parked),
		slog.Int("energy_remaining", s.EnergyRemaining),
		slog.Int("mineral_remaining", s.MineralRemaining),
		slog.Int("scientific_remaining", s.ScientificRemaining),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}

// MapSummary describes a generated map: band counts and the distribution of
// noise values over all cells.
type MapSummary struct {
	Seed   int64 `csv:"seed"`
	Width  int   `csv:"width"`
	Height int   `csv:"height"`

	Obstacles       int `csv:"obstacles"`
	Energy          int `csv:"energy"`
	Mineral         int `csv:"mineral"`
	ScientificSites int `csv:"scientific_sites"`
	Empty           int `csv:"empty"`

	NoiseMean float64 `csv:"noise_mean"`
	NoiseStd  float64 `csv:"noise_std"`
	NoiseP10  float64 `csv:"noise_p10"`
	NoiseP50  float64 `csv:"noise_p50"`
	NoiseP90  float64 `csv:"noise_p90"`
}

// NewMapSummary builds a summary from a generation's band counts and samples.
func NewMapSummary(seed int64, width, height int, bands systems.BandCounts, samples []float64) MapSummary {
	mean, std, p10, p50, p90 := Distribution(samples)
	return MapSummary{
		Seed:            seed,
		Width:           width,
		Height:          height,
		Obstacles:       bands[systems.CellObstacle],
		Energy:          bands[systems.CellEnergy],
		Mineral:         bands[systems.CellMineral],
		ScientificSites: bands[systems.CellScientificSite],
		Empty:           bands[systems.CellEmpty],
		NoiseMean:       mean,
		NoiseStd:        std,
		NoiseP10:        p10,
		NoiseP50:        p50,
		NoiseP90:        p90,
	}
}

// Resources returns the number of resource cells.
func (m MapSummary) Resources() int {
	return m.Energy + m.Mineral + m.ScientificSites
}

// LogValue implements slog.LogValuer for structured logging.
func (m MapSummary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("seed", m.Seed),
		slog.Int("width", m.Width),
		slog.Int("height", m.Height),
		slog.Int("obstacles", m.Obstacles),
		slog.Int("energy", m.Energy),
		slog.Int("mineral", m.Mineral),
		slog.Int("scientific_sites", m.ScientificSites),
		slog.Int("empty", m.Empty),
		slog.Float64("noise_mean", m.NoiseMean),
		slog.Float64("noise_std", m.NoiseStd),
		slog.Float64("noise_p50", m.NoiseP50),
	)
}

// Distribution calculates mean, population std dev and percentiles.
// Returns zeros for an empty slice.
func Distribution(values []float64) (mean, std, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0, 0
	}

	mean, std = stat.PopMeanStdDev(values, nil)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = stat.Quantile(0.10, stat.LinInterp, sorted, nil)
	p50 = stat.Quantile(0.50, stat.LinInterp, sorted, nil)
	p90 = stat.Quantile(0.90, stat.LinInterp, sorted, nil)

	return mean, std, p10, p50, p90
}
