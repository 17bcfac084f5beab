// Package renderer turns a read-only view of the tank into raylib draw calls.
package renderer

import (
	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/geometry"
	"github.com/pthm-cable/aquarium/ui"
)

// Frame is everything the renderer reads for one frame.
type Frame struct {
	Time   float32 // wall-clock seconds, drives the water animation
	Oxygen float32
	Food   float32
	Fish   []components.Fish
	Layout ui.Layout
}

// Renderer owns the GPU resources for the aquarium.
type Renderer struct {
	vp    geometry.Viewport
	water *WaterBackground
	fish  *FishRenderer
	hud   *HUD
}

// New loads every resource. It must be called after the window is created.
func New(vp geometry.Viewport, texturePath string) (*Renderer, error) {
	fish, err := LoadFishRenderer(texturePath)
	if err != nil {
		return nil, err
	}

	water := NewWaterBackground(vp.Width, vp.Height)
	water.Init()

	return &Renderer{
		vp:    vp,
		water: water,
		fish:  fish,
		hud:   NewHUD(),
	}, nil
}

// Draw issues the frame's draw calls: background, fish, bars, buttons.
// The caller brackets it with BeginDrawing/EndDrawing.
func (r *Renderer) Draw(f Frame) {
	r.water.Draw(f.Time, f.Oxygen)
	r.fish.Draw(f.Fish, r.vp)
	r.hud.Draw(f.Layout, f.Food, f.Oxygen, r.vp)
}

// Unload frees resources.
func (r *Renderer) Unload() {
	r.fish.Unload()
	r.water.Unload()
}
