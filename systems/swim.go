package systems

import "github.com/pthm-cable/aquarium/components"

// Bounds describes the tank in NDC.
type Bounds struct {
	// Aspect is display height over width; it shrinks the vertical
	// half-extent so sprites bounce where they visibly touch the glass.
	Aspect float32

	Floor    float32 // resting height of sunk fish
	SinkRate float32 // downward speed while dying
}

// DefaultBounds returns bounds for an 800x600 display.
func DefaultBounds() Bounds {
	return Bounds{Aspect: 600.0 / 800.0, Floor: -1, SinkRate: 0.1}
}

// Swim advances one fish by dt seconds.
// In dying mode the fish drops straight down and rests on the floor;
// otherwise it moves freely and reflects off the walls.
func Swim(pos *components.Position, vel *components.Velocity, body *components.Body, mood *components.Mood, dt float32, dying bool, b Bounds) {
	if dying {
		mood.Dying = true
	}

	if mood.Dying {
		vel.X = 0
		vel.Y = -b.SinkRate
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
		if pos.Y < b.Floor {
			pos.Y = b.Floor
		}
		return
	}

	pos.X += vel.X * dt
	pos.Y += vel.Y * dt

	halfX := body.Size / 2
	halfY := halfX * b.Aspect

	if pos.Y-halfY < -1 {
		pos.Y = -1 + halfY
		vel.Y = -vel.Y
	} else if pos.Y+halfY > 1 {
		pos.Y = 1 - halfY
		vel.Y = -vel.Y
	}

	if pos.X-halfX < -1 {
		pos.X = -1 + halfX
		vel.X = -vel.X
		mood.FacingRight = true
	} else if pos.X+halfX > 1 {
		pos.X = 1 - halfX
		vel.X = -vel.X
		mood.FacingRight = false
	}
}

// Sadden erodes happiness faster the hungrier the tank is.
func Sadden(mood *components.Mood, dt, food, rate float32) {
	mood.Happiness = clamp01(mood.Happiness - dt*rate*(1-food))
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
