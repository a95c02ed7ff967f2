package game

import (
	"log/slog"

	"github.com/pthm-cable/swarm/systems"
	"github.com/pthm-cable/swarm/telemetry"
)

// recordReport logs a resolver report and feeds it to telemetry.
func (g *Game) recordReport(report systems.Report) {
	g.logReport(report)

	var records []telemetry.CollectionRecord
	for _, ev := range report.Collected {
		g.collector.Record(telemetry.NewCollectionEvent(g.tick, ev.RobotID, ev.Kind, ev.Position))
		records = append(records, telemetry.CollectionRecord{
			Tick:      g.tick,
			Frame:     g.frame,
			RobotID:   ev.RobotID,
			RobotName: ev.RobotName,
			Kind:      ev.Kind.String(),
			X:         ev.Position.X,
			Y:         ev.Position.Y,
		})
	}
	for _, m := range report.Misses {
		g.collector.Record(telemetry.NewMissEvent(g.tick, m.RobotID, m.Position))
	}

	if err := g.outputManager.WriteCollections(records); err != nil {
		slog.Error("failed to write collections", "error", err)
	}
}

// flushTelemetry checks if the stats window should be flushed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.store.CountResources())

	// Call stats callback if provided
	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		g.logPerfStats()
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
}
