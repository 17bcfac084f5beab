package main

import (
	"math"
	"math/rand"
	"sync"

	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/persist"
	"github.com/pthm-cable/aquarium/sim"
	"github.com/pthm-cable/aquarium/telemetry"
	"github.com/pthm-cable/aquarium/ui"
	"github.com/pthm-cable/aquarium/vitals"
)

// Targets describe the tank behaviour the optimizer aims for.
type Targets struct {
	UnattendedSec float64 // seconds before an untended full tank starts dying
	CareInterval  float64 // seconds between caretaker visits (both buttons)
	MinHappiness  float64 // mean happiness expected under regular care
	MaxSec        float64 // simulated duration cap per run
}

// DefaultTargets matches the reference tuning.
func DefaultTargets() Targets {
	return Targets{
		UnattendedSec: 25,
		CareInterval:  15,
		MinHappiness:  0.8,
		MaxSec:        300,
	}
}

// Penalty weights
const (
	dyingWeight     = 10.0
	happinessWeight = 4.0
)

// FitnessEvaluator runs headless tanks and computes fitness.
type FitnessEvaluator struct {
	params     *ParamVector
	targets    Targets
	baseConfig *config.Config
	seed       int64

	mu         sync.Mutex
	lastResult evalResult
}

// evalResult holds the measurements from one evaluation.
type evalResult struct {
	unattendedSec float64 // time of first dying transition, or MaxSec
	dyingFraction float64 // under care
	happinessMean float64 // under care
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, targets Targets, seed int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		targets:    targets,
		baseConfig: baseCfg,
		seed:       seed,
	}
}

// LastResult returns the measurements from the most recent evaluation.
func (fe *FitnessEvaluator) LastResult() evalResult {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastResult
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := *fe.baseConfig
	fe.params.ApplyToConfig(&cfg, x)
	params := sim.ParamsFromConfig(&cfg)

	res := evalResult{
		unattendedSec: fe.runUnattended(params, cfg.Screen.TargetFPS),
	}
	res.dyingFraction, res.happinessMean = fe.runCared(params, cfg.Screen.TargetFPS)

	fe.mu.Lock()
	fe.lastResult = res
	fe.mu.Unlock()

	return fe.score(res)
}

func (fe *FitnessEvaluator) score(res evalResult) float64 {
	miss := (res.unattendedSec - fe.targets.UnattendedSec) / fe.targets.UnattendedSec
	fitness := miss * miss
	fitness += dyingWeight * res.dyingFraction
	if gap := fe.targets.MinHappiness - res.happinessMean; gap > 0 {
		fitness += happinessWeight * gap * gap
	}
	return fitness
}

// runUnattended returns the simulated seconds until a full tank starts dying.
func (fe *FitnessEvaluator) runUnattended(params sim.Params, fps int) float64 {
	tank := sim.New(params, persist.FullStatus, rand.New(rand.NewSource(fe.seed)))
	dt := 1 / float32(fps)

	for tank.SimTime() < fe.targets.MaxSec {
		if tank.Step(dt) == vitals.EventStartedDying {
			return tank.SimTime()
		}
	}
	return fe.targets.MaxSec
}

// runCared presses both buttons every CareInterval seconds and returns the
// dying fraction and mean happiness over the whole run.
func (fe *FitnessEvaluator) runCared(params sim.Params, fps int) (dyingFraction, happiness float64) {
	tank := sim.New(params, persist.FullStatus, rand.New(rand.NewSource(fe.seed)))
	collector := telemetry.NewCollector(1.0, math.Inf(1))
	dt := 1 / float32(fps)

	fish := tank.Pool.Snapshot(nil)
	var scratch []float64
	nextCare := fe.targets.CareInterval

	for tank.SimTime() < fe.targets.MaxSec {
		if tank.SimTime() >= nextCare {
			tank.Apply(ui.IntentFeed)
			tank.Apply(ui.IntentOxygen)
			nextCare += fe.targets.CareInterval
		}
		collector.RecordEvent(tank.Step(dt))

		if collector.SampleDue(tank.SimTime()) {
			fish = tank.Pool.Snapshot(fish[:0])
			var s telemetry.Sample
			s, scratch = telemetry.NewSample(tank.SimTime(), tank.Vitals.Oxygen, tank.Vitals.Food, tank.Vitals.Dying, fish, scratch)
			collector.Record(s)
		}
	}

	ws := collector.Flush(tank.SimTime())
	return ws.DyingFraction, ws.HappinessMean
}
