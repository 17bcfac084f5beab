// Package systems contains the fish pool and per-fish update rules.
package systems

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
)

// SpawnParams controls the random draw of new fish.
type SpawnParams struct {
	MinSize, MaxSize     float32
	MaxSpeedX, MaxSpeedY float32
}

// DefaultSpawnParams returns the reference spawning ranges.
func DefaultSpawnParams() SpawnParams {
	return SpawnParams{
		MinSize:   0.15,
		MaxSize:   0.24,
		MaxSpeedX: 0.5,
		MaxSpeedY: 0.3,
	}
}

// Pool owns the fish entities. Its size is fixed between Initialize calls.
type Pool struct {
	world  *ecs.World
	rng    *rand.Rand
	params SpawnParams

	mapper *ecs.Map4[components.Position, components.Velocity, components.Body, components.Mood]
	filter *ecs.Filter4[components.Position, components.Velocity, components.Body, components.Mood]

	count int
}

// NewPool creates an empty pool drawing from rng.
func NewPool(rng *rand.Rand, params SpawnParams) *Pool {
	world := ecs.NewWorld()
	return &Pool{
		world:  world,
		rng:    rng,
		params: params,
		mapper: ecs.NewMap4[components.Position, components.Velocity, components.Body, components.Mood](world),
		filter: ecs.NewFilter4[components.Position, components.Velocity, components.Body, components.Mood](world),
	}
}

// Initialize replaces every fish with count freshly drawn ones.
func (p *Pool) Initialize(count int) {
	// Collect first: the world is locked while a query is open
	var old []ecs.Entity
	query := p.filter.Query()
	for query.Next() {
		old = append(old, query.Entity())
	}
	for _, e := range old {
		p.world.RemoveEntity(e)
	}
	p.count = 0

	for i := 0; i < count; i++ {
		p.spawn()
	}
}

// spawn creates one fish with a random size, position and nonzero velocity.
func (p *Pool) spawn() ecs.Entity {
	body := components.Body{Size: p.params.MinSize + p.rng.Float32()*(p.params.MaxSize-p.params.MinSize)}
	pos := components.Position{
		X: p.rng.Float32()*2 - 1,
		Y: p.rng.Float32()*2 - 1,
	}
	vel := p.drawVelocity()
	mood := components.Mood{
		Happiness:   1,
		FacingRight: vel.X > 0,
	}

	p.count++
	return p.mapper.NewEntity(&pos, &vel, &body, &mood)
}

// drawVelocity draws uniformly from the speed box, rejecting draws with a
// zero component.
func (p *Pool) drawVelocity() components.Velocity {
	for {
		v := components.Velocity{
			X: (p.rng.Float32()*2 - 1) * p.params.MaxSpeedX,
			Y: (p.rng.Float32()*2 - 1) * p.params.MaxSpeedY,
		}
		if v.X != 0 && v.Y != 0 {
			return v
		}
	}
}

// Len returns the number of fish.
func (p *Pool) Len() int {
	return p.count
}

// Each visits every fish with mutable components.
func (p *Pool) Each(fn func(pos *components.Position, vel *components.Velocity, body *components.Body, mood *components.Mood)) {
	query := p.filter.Query()
	for query.Next() {
		fn(query.Get())
	}
}

// Recover clears the dying flag and sends every fish off in a new direction.
func (p *Pool) Recover() {
	p.Each(func(_ *components.Position, vel *components.Velocity, _ *components.Body, mood *components.Mood) {
		mood.Dying = false
		*vel = p.drawVelocity()
		mood.FacingRight = vel.X > 0
	})
}

// Cheer raises every fish's happiness by amount, capped at 1.
func (p *Pool) Cheer(amount float32) {
	p.Each(func(_ *components.Position, _ *components.Velocity, _ *components.Body, mood *components.Mood) {
		mood.Happiness = clamp01(mood.Happiness + amount)
	})
}

// Snapshot appends a copy of every fish to dst and returns it.
// Pass dst[:0] to reuse a buffer across frames.
func (p *Pool) Snapshot(dst []components.Fish) []components.Fish {
	p.Each(func(pos *components.Position, vel *components.Velocity, body *components.Body, mood *components.Mood) {
		dst = append(dst, components.Fish{Position: *pos, Velocity: *vel, Body: *body, Mood: *mood})
	})
	return dst
}
