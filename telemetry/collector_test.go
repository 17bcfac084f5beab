package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/aquarium/ui"
	"github.com/pthm-cable/aquarium/vitals"
)

func TestSampleDue(t *testing.T) {
	c := NewCollector(1.0, 10.0)

	if !c.SampleDue(0) {
		t.Error("first sample should be due at t=0")
	}
	if c.SampleDue(0.5) {
		t.Error("sample should not be due before interval")
	}
	if !c.SampleDue(1.0) {
		t.Error("sample should be due at t=1")
	}
	// A long frame skips missed slots instead of bursting
	if !c.SampleDue(5.2) {
		t.Error("sample should be due at t=5.2")
	}
	if c.SampleDue(5.9) {
		t.Error("missed slots must not be replayed")
	}
}

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(1.0, 3.0)

	c.Record(Sample{Oxygen: 0.9, Food: 0.6, HappinessMean: 1})
	c.Record(Sample{Oxygen: 0.7, Food: 0.2, Dying: true, HappinessMean: 0.5})
	c.RecordEvent(vitals.EventStartedDying)
	c.RecordEvent(vitals.EventNone)
	c.RecordIntent(ui.IntentFeed)
	c.RecordIntent(ui.IntentFeed)
	c.RecordIntent(ui.IntentOxygen)
	c.RecordReset()

	if c.ShouldFlush(2.5) {
		t.Error("window should not be complete at 2.5s")
	}
	if !c.ShouldFlush(3.0) {
		t.Error("window should be complete at 3s")
	}

	ws := c.Flush(3.0)

	if ws.Samples != 2 {
		t.Errorf("samples = %d, want 2", ws.Samples)
	}
	if math.Abs(ws.OxygenMean-0.8) > 1e-9 || ws.OxygenMin != 0.7 {
		t.Errorf("oxygen mean/min = %v/%v, want 0.8/0.7", ws.OxygenMean, ws.OxygenMin)
	}
	if math.Abs(ws.FoodMean-0.4) > 1e-9 || ws.FoodMin != 0.2 {
		t.Errorf("food mean/min = %v/%v, want 0.4/0.2", ws.FoodMean, ws.FoodMin)
	}
	if ws.DyingFraction != 0.5 {
		t.Errorf("dying fraction = %v, want 0.5", ws.DyingFraction)
	}
	if ws.StartedDying != 1 || ws.Recovered != 0 || ws.Feeds != 2 || ws.Aerations != 1 {
		t.Errorf("event counts = %+v", ws)
	}
	if ws.Resets != 1 {
		t.Errorf("resets = %d, want 1", ws.Resets)
	}
	if math.Abs(ws.HappinessMean-0.75) > 1e-9 {
		t.Errorf("happiness mean = %v, want 0.75", ws.HappinessMean)
	}

	next := c.Flush(6.0)
	if next.WindowStartSec != 3.0 || next.Samples != 0 || next.Feeds != 0 || next.Resets != 0 {
		t.Errorf("window not reset: %+v", next)
	}
}
