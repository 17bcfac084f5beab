package game

import (
	"log/slog"

	"github.com/pthm-cable/aquarium/telemetry"
)

// recordTelemetry samples the tank when due and closes stats windows.
func (g *Game) recordTelemetry() {
	simTime := g.tank.SimTime()

	if g.collector.SampleDue(simTime) {
		g.fish = g.tank.Pool.Snapshot(g.fish[:0])

		var sample telemetry.Sample
		sample, g.scratch = telemetry.NewSample(simTime, g.tank.Vitals.Oxygen, g.tank.Vitals.Food, g.tank.Vitals.Dying, g.fish, g.scratch)
		g.collector.Record(sample)
		if err := g.output.WriteSample(sample); err != nil {
			slog.Warn("failed to write sample", "error", err)
		}
	}

	if g.collector.ShouldFlush(simTime) {
		stats := g.collector.Flush(simTime)
		if g.logStats {
			stats.LogStats()
		}
		if err := g.output.WriteWindow(stats); err != nil {
			slog.Warn("failed to write window stats", "error", err)
		}
	}
}
