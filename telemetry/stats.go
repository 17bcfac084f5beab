// Package telemetry samples the tank over time, aggregates windows and
// writes them as CSV.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/aquarium/components"
)

// Sample is one snapshot of the tank.
type Sample struct {
	SimTimeSec    float64 `csv:"sim_time"`
	Oxygen        float64 `csv:"oxygen"`
	Food          float64 `csv:"food"`
	Dying         bool    `csv:"dying"`
	FishCount     int     `csv:"fish"`
	HappinessMean float64 `csv:"happiness_mean"`
	HappinessP10  float64 `csv:"happiness_p10"`
	HappinessP50  float64 `csv:"happiness_p50"`
	HappinessP90  float64 `csv:"happiness_p90"`
}

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartSec float64 `csv:"window_start"`
	WindowEndSec   float64 `csv:"window_end"`
	Samples        int     `csv:"samples"`

	OxygenMean float64 `csv:"oxygen_mean"`
	OxygenMin  float64 `csv:"oxygen_min"`
	FoodMean   float64 `csv:"food_mean"`
	FoodMin    float64 `csv:"food_min"`

	// Fraction of samples taken in dying mode
	DyingFraction float64 `csv:"dying_fraction"`

	// Events during window
	StartedDying int `csv:"started_dying"`
	Recovered    int `csv:"recovered"`
	Feeds        int `csv:"feeds"`
	Aerations    int `csv:"aerations"`
	Resets       int `csv:"resets"`

	HappinessMean float64 `csv:"happiness_mean"`
}

// HappinessStats calculates mean and empirical quantiles of happiness values.
// values is sorted in place.
func HappinessStats(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}
	sort.Float64s(values)
	mean = stat.Mean(values, nil)
	p10 = stat.Quantile(0.10, stat.Empirical, values, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, values, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, values, nil)
	return mean, p10, p50, p90
}

// NewSample builds a sample from the tank state. scratch is reused for the
// happiness values and returned for the next call.
func NewSample(simTime float64, oxygen, food float32, dying bool, fish []components.Fish, scratch []float64) (Sample, []float64) {
	scratch = scratch[:0]
	for i := range fish {
		scratch = append(scratch, float64(fish[i].Happiness))
	}
	mean, p10, p50, p90 := HappinessStats(scratch)
	return Sample{
		SimTimeSec:    simTime,
		Oxygen:        float64(oxygen),
		Food:          float64(food),
		Dying:         dying,
		FishCount:     len(fish),
		HappinessMean: mean,
		HappinessP10:  p10,
		HappinessP50:  p50,
		HappinessP90:  p90,
	}, scratch
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("window_start", s.WindowStartSec),
		slog.Float64("window_end", s.WindowEndSec),
		slog.Int("samples", s.Samples),
		slog.Float64("oxygen_mean", s.OxygenMean),
		slog.Float64("oxygen_min", s.OxygenMin),
		slog.Float64("food_mean", s.FoodMean),
		slog.Float64("food_min", s.FoodMin),
		slog.Float64("dying_fraction", s.DyingFraction),
		slog.Int("started_dying", s.StartedDying),
		slog.Int("recovered", s.Recovered),
		slog.Int("feeds", s.Feeds),
		slog.Int("aerations", s.Aerations),
		slog.Int("resets", s.Resets),
		slog.Float64("happiness_mean", s.HappinessMean),
	)
}

// LogStats outputs the window stats via slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
