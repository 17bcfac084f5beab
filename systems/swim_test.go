package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/aquarium/components"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestSwimReflectsOffRightWall(t *testing.T) {
	pos := components.Position{X: 0.95, Y: 0}
	vel := components.Velocity{X: 0.5, Y: 0.1}
	body := components.Body{Size: 0.2}
	mood := components.Mood{Happiness: 1, FacingRight: true}

	Swim(&pos, &vel, &body, &mood, 0.2, false, DefaultBounds())

	if !approx(pos.X, 0.9) {
		t.Errorf("x = %v, want 0.9", pos.X)
	}
	if !approx(vel.X, -0.5) {
		t.Errorf("dx = %v, want -0.5", vel.X)
	}
	if mood.FacingRight {
		t.Error("expected facing left after right-wall bounce")
	}
	if !approx(vel.Y, 0.1) {
		t.Errorf("dy changed on horizontal bounce: %v", vel.Y)
	}
}

func TestSwimReflectsOffLeftWall(t *testing.T) {
	pos := components.Position{X: -0.95, Y: 0}
	vel := components.Velocity{X: -0.5, Y: 0.1}
	body := components.Body{Size: 0.2}
	mood := components.Mood{}

	Swim(&pos, &vel, &body, &mood, 0.2, false, DefaultBounds())

	if !approx(pos.X, -0.9) || !approx(vel.X, 0.5) || !mood.FacingRight {
		t.Errorf("left bounce: x=%v dx=%v facing=%v, want -0.9, 0.5, true", pos.X, vel.X, mood.FacingRight)
	}
}

func TestSwimVerticalBounceUsesAspect(t *testing.T) {
	tests := []struct {
		name  string
		y, dy float32
		wantY float32
	}{
		// half-extent 0.1 * 0.75 = 0.075
		{"ceiling", 0.95, 0.3, 0.925},
		{"floor", -0.95, -0.3, -0.925},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := components.Position{X: 0, Y: tt.y}
			vel := components.Velocity{X: 0.1, Y: tt.dy}
			body := components.Body{Size: 0.2}
			mood := components.Mood{FacingRight: true}

			Swim(&pos, &vel, &body, &mood, 0.2, false, DefaultBounds())

			if !approx(pos.Y, tt.wantY) {
				t.Errorf("y = %v, want %v", pos.Y, tt.wantY)
			}
			if !approx(vel.Y, -tt.dy) {
				t.Errorf("dy = %v, want %v", vel.Y, -tt.dy)
			}
			if !mood.FacingRight {
				t.Error("vertical bounce must not change facing")
			}
		})
	}
}

func TestSwimFreeMotion(t *testing.T) {
	pos := components.Position{X: 0, Y: 0}
	vel := components.Velocity{X: 0.2, Y: -0.1}
	body := components.Body{Size: 0.2}
	mood := components.Mood{}

	Swim(&pos, &vel, &body, &mood, 0.5, false, DefaultBounds())

	if !approx(pos.X, 0.1) || !approx(pos.Y, -0.05) {
		t.Errorf("position = (%v,%v), want (0.1,-0.05)", pos.X, pos.Y)
	}
}

func TestSwimSinksToFloor(t *testing.T) {
	pos := components.Position{X: 0.3, Y: -0.5}
	vel := components.Velocity{X: 0.4, Y: 0.2}
	body := components.Body{Size: 0.2}
	mood := components.Mood{Dying: true}

	Swim(&pos, &vel, &body, &mood, 10, false, DefaultBounds())

	if pos.Y != -1 {
		t.Errorf("y = %v, want exactly -1", pos.Y)
	}
	if vel.X != 0 {
		t.Errorf("dx = %v, want 0", vel.X)
	}
	if !approx(pos.X, 0.3) {
		t.Errorf("x moved while sinking: %v", pos.X)
	}

	// Resting fish stays put
	Swim(&pos, &vel, &body, &mood, 1, true, DefaultBounds())
	if pos.Y != -1 || !approx(pos.X, 0.3) {
		t.Errorf("resting fish moved to (%v,%v)", pos.X, pos.Y)
	}
}

func TestSwimDyingModeMarksFish(t *testing.T) {
	pos := components.Position{X: 0, Y: 0.5}
	vel := components.Velocity{X: 0.4, Y: 0.2}
	body := components.Body{Size: 0.2}
	mood := components.Mood{}

	Swim(&pos, &vel, &body, &mood, 1, true, DefaultBounds())

	if !mood.Dying {
		t.Error("dying mode should mark the fish")
	}
	if !approx(pos.Y, 0.4) || vel.Y != -0.1 {
		t.Errorf("after 1s sinking: y=%v dy=%v, want 0.4, -0.1", pos.Y, vel.Y)
	}
}

func TestSadden(t *testing.T) {
	tests := []struct {
		name      string
		happiness float32
		dt, food  float32
		want      float32
	}{
		{"full tank keeps mood", 0.8, 1, 1, 0.8},
		{"empty tank erodes", 0.8, 5, 0, 0.7},
		{"half fed erodes slower", 0.8, 5, 0.5, 0.75},
		{"clamps at zero", 0.01, 100, 0, 0},
		{"clamps at one", 1.5, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mood := components.Mood{Happiness: tt.happiness}
			Sadden(&mood, tt.dt, tt.food, 0.02)
			if !approx(mood.Happiness, tt.want) {
				t.Errorf("happiness = %v, want %v", mood.Happiness, tt.want)
			}
		})
	}
}
