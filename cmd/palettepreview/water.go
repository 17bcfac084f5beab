package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/renderer"
)

// previewWater renders the tank background off screen so it can be placed
// inside the preview frame at the tank's own resolution.
type previewWater struct {
	bg     *renderer.WaterBackground
	target rl.RenderTexture2D
}

func newPreviewWater() *previewWater {
	bg := renderer.NewWaterBackground(previewWidth, previewHeight)
	bg.Init()
	return &previewWater{
		bg:     bg,
		target: rl.LoadRenderTexture(previewWidth, previewHeight),
	}
}

func (w *previewWater) render(time, oxygen float32) {
	rl.BeginTextureMode(w.target)
	rl.ClearBackground(rl.Black)
	w.bg.Draw(time, oxygen)
	rl.EndTextureMode()
}

func (w *previewWater) draw(x, y float32) {
	// Render textures are stored bottom-up
	src := rl.Rectangle{Width: previewWidth, Height: -previewHeight}
	dst := rl.Rectangle{X: x, Y: y, Width: previewWidth, Height: previewHeight}
	rl.DrawTexturePro(w.target.Texture, src, dst, rl.Vector2{}, 0, rl.White)
}

func (w *previewWater) unload() {
	rl.UnloadRenderTexture(w.target)
	w.bg.Unload()
}
