// Package sim holds the simulation context: vitals, fish pool and HUD
// layout, advanced one frame at a time without any graphics dependency.
package sim

import (
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/persist"
	"github.com/pthm-cable/aquarium/systems"
	"github.com/pthm-cable/aquarium/ui"
	"github.com/pthm-cable/aquarium/vitals"
)

// Params collects the tuning a Tank needs.
type Params struct {
	FishCount      int
	Spawn          systems.SpawnParams
	Bounds         systems.Bounds
	Rates          vitals.Rates
	FeedCheer      float32
	HappinessDecay float32
	Layout         ui.Layout
}

// ParamsFromConfig converts loaded config into tank parameters.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		FishCount: cfg.Tank.FishCount,
		Spawn: systems.SpawnParams{
			MinSize:   float32(cfg.Tank.MinSize),
			MaxSize:   float32(cfg.Tank.MaxSize),
			MaxSpeedX: float32(cfg.Tank.MaxSpeedX),
			MaxSpeedY: float32(cfg.Tank.MaxSpeedY),
		},
		Bounds: systems.Bounds{
			Aspect:   cfg.Derived.Aspect32,
			Floor:    float32(cfg.Tank.Floor),
			SinkRate: float32(cfg.Tank.SinkRate),
		},
		Rates: vitals.Rates{
			OxygenDecay: float32(cfg.Vitals.OxygenDecay),
			FoodDecay:   float32(cfg.Vitals.FoodDecay),
			Boost:       float32(cfg.Vitals.Boost),
			RecoverGate: float32(cfg.Vitals.RecoverGate),
		},
		FeedCheer:      float32(cfg.Vitals.FeedCheer),
		HappinessDecay: float32(cfg.Tank.HappinessDecay),
		Layout:         ui.NewLayout(cfg.UI),
	}
}

// Tank is the whole simulation state for one run.
type Tank struct {
	Vitals *vitals.Vitals
	Pool   *systems.Pool
	Layout ui.Layout

	params  Params
	simTime float64
}

// New creates a tank from a persisted status and fills it with fish.
func New(params Params, status persist.Status, rng *rand.Rand) *Tank {
	t := &Tank{
		Vitals: vitals.New(status.Oxygen, status.Food, params.Rates),
		Pool:   systems.NewPool(rng, params.Spawn),
		Layout: params.Layout,
		params: params,
	}
	t.Pool.Initialize(params.FishCount)
	return t
}

// Step advances the tank by dt seconds and returns the dying-mode
// transition, if any.
func (t *Tank) Step(dt float32) vitals.Event {
	if dt < 0 {
		dt = 0
	}
	t.simTime += float64(dt)

	t.Vitals.Advance(dt)
	ev := t.Vitals.Transition()
	switch ev {
	case vitals.EventStartedDying:
		slog.Info("fish are dying", "oxygen", t.Vitals.Oxygen, "food", t.Vitals.Food, "sim_time", t.simTime)
	case vitals.EventRecovered:
		t.Pool.Recover()
		slog.Info("fish recovered", "oxygen", t.Vitals.Oxygen, "food", t.Vitals.Food, "sim_time", t.simTime)
	}

	dying := t.Vitals.Dying
	food := t.Vitals.Food
	t.Pool.Each(func(pos *components.Position, vel *components.Velocity, body *components.Body, mood *components.Mood) {
		systems.Sadden(mood, dt, food, t.params.HappinessDecay)
		systems.Swim(pos, vel, body, mood, dt, dying, t.params.Bounds)
	})

	return ev
}

// Apply carries out a UI intent.
func (t *Tank) Apply(intent ui.Intent) {
	switch intent {
	case ui.IntentFeed:
		t.Vitals.FeedBoost()
		t.Pool.Cheer(t.params.FeedCheer)
	case ui.IntentOxygen:
		t.Vitals.OxygenBoost()
	}
}

// Reset replaces every fish with a fresh batch. Vitals are untouched.
func (t *Tank) Reset() {
	t.Pool.Initialize(t.params.FishCount)
}

// Status returns the persisted part of the tank.
func (t *Tank) Status() persist.Status {
	return persist.Status{Oxygen: t.Vitals.Oxygen, Food: t.Vitals.Food}
}

// SimTime returns accumulated simulated seconds.
func (t *Tank) SimTime() float64 {
	return t.simTime
}
