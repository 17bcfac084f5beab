package telemetry

import (
	"github.com/pthm-cable/aquarium/ui"
	"github.com/pthm-cable/aquarium/vitals"
)

// Collector decides when samples are due and folds them into windows.
type Collector struct {
	sampleInterval float64
	windowSec      float64

	nextSample  float64
	windowStart float64

	// Accumulators for current window
	samples      int
	oxygenSum    float64
	oxygenMin    float64
	foodSum      float64
	foodMin      float64
	dyingSamples int
	happinessSum float64
	startedDying int
	recovered    int
	feeds        int
	aerations    int
	resets       int
}

// NewCollector creates a collector sampling every sampleInterval seconds
// and closing a window every windowSec seconds of simulated time.
func NewCollector(sampleInterval, windowSec float64) *Collector {
	if sampleInterval <= 0 {
		sampleInterval = 1
	}
	if windowSec < sampleInterval {
		windowSec = sampleInterval
	}
	c := &Collector{
		sampleInterval: sampleInterval,
		windowSec:      windowSec,
	}
	c.resetWindow(0)
	return c
}

// SampleDue reports whether a sample should be taken at simTime.
func (c *Collector) SampleDue(simTime float64) bool {
	if simTime < c.nextSample {
		return false
	}
	for c.nextSample <= simTime {
		c.nextSample += c.sampleInterval
	}
	return true
}

// RecordEvent counts a dying-mode transition.
func (c *Collector) RecordEvent(ev vitals.Event) {
	switch ev {
	case vitals.EventStartedDying:
		c.startedDying++
	case vitals.EventRecovered:
		c.recovered++
	}
}

// RecordIntent counts a button press.
func (c *Collector) RecordIntent(intent ui.Intent) {
	switch intent {
	case ui.IntentFeed:
		c.feeds++
	case ui.IntentOxygen:
		c.aerations++
	}
}

// RecordReset counts a pool re-initialization.
func (c *Collector) RecordReset() {
	c.resets++
}

// Record folds a sample into the current window.
func (c *Collector) Record(s Sample) {
	c.samples++
	c.oxygenSum += s.Oxygen
	c.foodSum += s.Food
	if s.Oxygen < c.oxygenMin {
		c.oxygenMin = s.Oxygen
	}
	if s.Food < c.foodMin {
		c.foodMin = s.Food
	}
	if s.Dying {
		c.dyingSamples++
	}
	c.happinessSum += s.HappinessMean
}

// ShouldFlush reports whether the window ending at simTime is complete.
func (c *Collector) ShouldFlush(simTime float64) bool {
	return simTime-c.windowStart >= c.windowSec
}

// Flush returns stats for the current window and starts a new one at simTime.
func (c *Collector) Flush(simTime float64) WindowStats {
	ws := WindowStats{
		WindowStartSec: c.windowStart,
		WindowEndSec:   simTime,
		Samples:        c.samples,
		StartedDying:   c.startedDying,
		Recovered:      c.recovered,
		Feeds:          c.feeds,
		Aerations:      c.aerations,
		Resets:         c.resets,
	}
	if c.samples > 0 {
		n := float64(c.samples)
		ws.OxygenMean = c.oxygenSum / n
		ws.OxygenMin = c.oxygenMin
		ws.FoodMean = c.foodSum / n
		ws.FoodMin = c.foodMin
		ws.DyingFraction = float64(c.dyingSamples) / n
		ws.HappinessMean = c.happinessSum / n
	}
	c.resetWindow(simTime)
	return ws
}

func (c *Collector) resetWindow(start float64) {
	c.windowStart = start
	c.samples = 0
	c.oxygenSum = 0
	c.oxygenMin = 1
	c.foodSum = 0
	c.foodMin = 1
	c.dyingSamples = 0
	c.happinessSum = 0
	c.startedDying = 0
	c.recovered = 0
	c.feeds = 0
	c.aerations = 0
	c.resets = 0
}
