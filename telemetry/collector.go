package telemetry

import "github.com/pthm-cable/swarm/components"

// Collector accumulates events within windows of movement ticks and
// produces WindowStats.
type Collector struct {
	windowTicks int32
	period      float64

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	collected [len(components.ResourceKinds)]int
	misses    int
	moves     int
	parked    int

	// Running totals
	totalCollected [len(components.ResourceKinds)]int
}

// NewCollector creates a new stats collector.
// windowTicks: movement ticks per window
// period: seconds per movement tick (used for tick-to-time conversion)
func NewCollector(windowTicks int, period float64) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowTicks: int32(windowTicks),
		period:      period,
	}
}

// Record adds an event to the current window.
func (c *Collector) Record(ev Event) {
	switch ev.Type {
	case EventCollection:
		if int(ev.Kind) < len(c.collected) {
			c.collected[ev.Kind]++
			c.totalCollected[ev.Kind]++
		}
	case EventMiss:
		c.misses++
	case EventMove:
		c.moves += ev.Moved
		c.parked = ev.Parked
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// TotalCollected returns the running count of collected resources of a kind.
func (c *Collector) TotalCollected(kind components.ResourceKind) int {
	if int(kind) >= len(c.totalCollected) {
		return 0
	}
	return c.totalCollected[kind]
}

// Flush produces a WindowStats and resets counters for the next window.
// remaining holds the live resource counts at window end.
func (c *Collector) Flush(currentTick int32, remaining map[components.ResourceKind]int) WindowStats {
	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.period,

		EnergyCollected:     c.collected[components.ResourceEnergy],
		MineralCollected:    c.collected[components.ResourceMineral],
		ScientificCollected: c.collected[components.ResourceScientificSite],
		Misses:              c.misses,
		Moves:               c.moves,
		Parked:              c.parked,

		EnergyRemaining:     remaining[components.ResourceEnergy],
		MineralRemaining:    remaining[components.ResourceMineral],
		ScientificRemaining: remaining[components.ResourceScientificSite],
	}

	checks := stats.EnergyCollected + stats.MineralCollected + stats.ScientificCollected + c.misses
	if checks > 0 {
		stats.HitRate = float64(checks-c.misses) / float64(checks)
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.collected = [len(components.ResourceKinds)]int{}
	c.misses = 0
	c.moves = 0

	return stats
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() int32 {
	return c.windowTicks
}
