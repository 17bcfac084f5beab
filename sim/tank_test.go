package sim

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/persist"
	"github.com/pthm-cable/aquarium/ui"
	"github.com/pthm-cable/aquarium/vitals"
)

func newTestTank(t *testing.T, status persist.Status) *Tank {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	return New(ParamsFromConfig(cfg), status, rand.New(rand.NewSource(1)))
}

func TestNewTankFromStatus(t *testing.T) {
	tank := newTestTank(t, persist.Status{Oxygen: 0.73, Food: 0.41})

	if tank.Vitals.Oxygen != 0.73 || tank.Vitals.Food != 0.41 {
		t.Errorf("vitals = (%v,%v), want (0.73,0.41)", tank.Vitals.Oxygen, tank.Vitals.Food)
	}
	if tank.Pool.Len() != 8 {
		t.Errorf("pool has %d fish, want 8", tank.Pool.Len())
	}
	if tank.Status() != (persist.Status{Oxygen: 0.73, Food: 0.41}) {
		t.Errorf("Status() = %+v", tank.Status())
	}
}

func TestStepKeepsInvariants(t *testing.T) {
	tank := newTestTank(t, persist.FullStatus)

	for i := 0; i < 3000; i++ {
		tank.Step(1.0 / 60.0)
		if i%500 == 0 {
			tank.Apply(ui.IntentFeed)
		}

		for j, f := range tank.Pool.Snapshot(nil) {
			if f.Happiness < 0 || f.Happiness > 1 {
				t.Fatalf("step %d fish %d happiness %v out of range", i, j, f.Happiness)
			}
			if f.Position.X < -1 || f.Position.X > 1 || f.Position.Y < -1 || f.Position.Y > 1 {
				t.Fatalf("step %d fish %d escaped the tank: (%v,%v)", i, j, f.Position.X, f.Position.Y)
			}
		}
	}
	if tank.SimTime() < 49 || tank.SimTime() > 51 {
		t.Errorf("sim time = %v, want ~50", tank.SimTime())
	}
}

func TestStepEntersDyingAndSinks(t *testing.T) {
	tank := newTestTank(t, persist.Status{Oxygen: 1, Food: 0})

	if ev := tank.Step(0.1); ev != vitals.EventStartedDying {
		t.Fatalf("first step event = %v, want started_dying", ev)
	}

	// Long enough for every fish to reach the floor
	for i := 0; i < 30; i++ {
		tank.Step(1)
	}

	for j, f := range tank.Pool.Snapshot(nil) {
		if !f.Mood.Dying {
			t.Errorf("fish %d not marked dying", j)
		}
		if f.Position.Y != -1 || f.Velocity.X != 0 {
			t.Errorf("fish %d at y=%v dx=%v, want resting on floor", j, f.Position.Y, f.Velocity.X)
		}
	}
}

func TestStepRecoversOnlyAboveGate(t *testing.T) {
	tank := newTestTank(t, persist.Status{Oxygen: 0.3, Food: 0})
	tank.Step(0.01)
	if !tank.Vitals.Dying {
		t.Fatal("expected dying mode")
	}

	// Food 0.8 but oxygen still below the gate
	tank.Apply(ui.IntentFeed)
	if ev := tank.Step(0.01); ev != vitals.EventNone || !tank.Vitals.Dying {
		t.Fatalf("recovered with oxygen %v below gate", tank.Vitals.Oxygen)
	}

	tank.Apply(ui.IntentOxygen)
	if ev := tank.Step(0.01); ev != vitals.EventRecovered {
		t.Fatalf("event = %v, want recovered (oxygen %v food %v)", ev, tank.Vitals.Oxygen, tank.Vitals.Food)
	}

	for j, f := range tank.Pool.Snapshot(nil) {
		if f.Mood.Dying {
			t.Errorf("fish %d still dying", j)
		}
		if f.Velocity.X == 0 || f.Velocity.Y == 0 {
			t.Errorf("fish %d velocity (%v,%v) not re-randomized", j, f.Velocity.X, f.Velocity.Y)
		}
	}
}

func TestApplyFeedCheersFish(t *testing.T) {
	tank := newTestTank(t, persist.Status{Oxygen: 1, Food: 0.1})
	tank.Pool.Each(func(_ *components.Position, _ *components.Velocity, _ *components.Body, mood *components.Mood) {
		mood.Happiness = 0.5
	})

	tank.Apply(ui.IntentFeed)

	if tank.Vitals.Food < 0.89 || tank.Vitals.Food > 0.91 {
		t.Errorf("food = %v, want 0.9", tank.Vitals.Food)
	}
	for j, f := range tank.Pool.Snapshot(nil) {
		if f.Happiness < 0.89 || f.Happiness > 0.91 {
			t.Errorf("fish %d happiness = %v, want 0.9", j, f.Happiness)
		}
	}

	// Oxygen does not cheer
	tank.Apply(ui.IntentOxygen)
	for j, f := range tank.Pool.Snapshot(nil) {
		if f.Happiness > 0.91 {
			t.Errorf("fish %d cheered by oxygen: %v", j, f.Happiness)
		}
	}
}

func TestApplyNoneIsNoop(t *testing.T) {
	tank := newTestTank(t, persist.Status{Oxygen: 0.5, Food: 0.5})
	tank.Apply(ui.IntentNone)
	if tank.Vitals.Oxygen != 0.5 || tank.Vitals.Food != 0.5 {
		t.Error("IntentNone changed vitals")
	}
}

func TestReset(t *testing.T) {
	tank := newTestTank(t, persist.Status{Oxygen: 0.6, Food: 0.6})
	tank.Reset()
	if tank.Pool.Len() != 8 {
		t.Errorf("pool after reset has %d fish, want 8", tank.Pool.Len())
	}
	if tank.Vitals.Oxygen != 0.6 {
		t.Error("reset must not touch vitals")
	}
}
