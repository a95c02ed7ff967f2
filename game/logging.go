package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/swarm/systems"
)

// logReport logs a resolver report. Collections are Info, misses Debug.
func (g *Game) logReport(report systems.Report) {
	for _, ev := range report.Collected {
		slog.Info("resource collected",
			"robot", ev.RobotName,
			"kind", ev.Kind.String(),
			"x", ev.Position.X,
			"y", ev.Position.Y,
			"tick", g.tick,
		)
	}
	for _, m := range report.Misses {
		slog.Debug("nothing collected",
			"robot", m.RobotName,
			"x", m.Position.X,
			"y", m.Position.Y,
			"tick", g.tick,
		)
	}
}

// logPerfStats logs average system timings.
func (g *Game) logPerfStats() {
	total := g.perf.Total()
	attrs := []any{"tick", g.tick, "total", total.Round(time.Microsecond).String()}
	for _, name := range g.perf.SortedNames() {
		attrs = append(attrs, name, g.perf.Avg(name).Round(time.Microsecond).String())
	}
	slog.Info("perf", attrs...)
}
