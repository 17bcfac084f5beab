// Package components defines ECS components for the aquarium.
package components

// Position is a fish's centre in normalized device coordinates [-1,1].
type Position struct {
	X, Y float32
}

// Velocity is in NDC units per second.
type Velocity struct {
	X, Y float32
}

// Body holds the sprite diameter in NDC units.
// Half of it is the horizontal bounce extent.
type Body struct {
	Size float32
}

// Mood holds per-fish presentation state.
type Mood struct {
	Happiness   float32 // 0..1, tints the sprite only
	FacingRight bool    // sprite mirroring
	Dying       bool    // set and cleared only by the tank-wide dying mode
}

// Fish is a read-only copy of one entity for rendering and telemetry.
type Fish struct {
	Position
	Velocity
	Body
	Mood
}
