// Package inspector shows the state of one selected fish.
package inspector

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/geometry"
	"github.com/pthm-cable/aquarium/systems"
)

// Panel dimensions
const (
	PanelWidth   = 240
	PanelHeight  = 190
	PanelPadding = 10
	HeaderHeight = 30
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorHighlight   = rl.Color{R: 255, G: 220, B: 80, A: 255}
)

// Inspector tracks the selected fish by its index in the pool snapshot.
// Snapshot order is stable until the pool is re-initialized.
type Inspector struct {
	selected    int
	hasSelected bool
	panelX      int32
	panelY      int32
}

// NewInspector creates an inspector whose panel sits at (x, y) in pixels.
func NewInspector(x, y int32) *Inspector {
	return &Inspector{panelX: x, panelY: y}
}

// HandleClick selects the fish under the pixel (mx, my). It reports whether
// a fish was hit.
func (ins *Inspector) HandleClick(fish []components.Fish, vp geometry.Viewport, mx, my float32) bool {
	x, y := vp.PixelToNDC(mx, my)
	i, ok := systems.Pick(fish, x, y)
	if ok {
		ins.selected = i
		ins.hasSelected = true
	}
	return ok
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
}

// Draw outlines the selected fish and renders the panel.
func (ins *Inspector) Draw(fish []components.Fish, vp geometry.Viewport) {
	if !ins.hasSelected {
		return
	}
	if ins.selected >= len(fish) {
		ins.Deselect()
		return
	}
	f := &fish[ins.selected]

	// Outline the sprite
	_, dst := vp.SpriteRects(f.Position.X, f.Position.Y, f.Body.Size, 1, 1, true)
	rl.DrawRectangleLinesEx(rl.Rectangle{X: dst.X, Y: dst.Y, Width: dst.Width, Height: dst.Height}, 2, ColorHighlight)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, PanelHeight, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(ins.panelX), Y: float32(ins.panelY), Width: PanelWidth, Height: PanelHeight},
		1,
		ColorPanelBorder,
	)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText(fmt.Sprintf("FISH #%d", ins.selected), ins.panelX+PanelPadding, ins.panelY+7, 16, ColorHeaderText)

	x := ins.panelX + PanelPadding
	y := ins.panelY + HeaderHeight + PanelPadding

	y += DrawLabel(x, y, "Position", fmt.Sprintf("(%.2f, %.2f)", f.Position.X, f.Position.Y))
	y += DrawLabel(x, y, "Velocity", fmt.Sprintf("(%.2f, %.2f)", f.Velocity.X, f.Velocity.Y))
	y += DrawLabel(x, y, "Size", fmt.Sprintf("%.3f", f.Body.Size))
	y += DrawBar(x, y, "Happiness", f.Mood.Happiness)
	y += DrawBool(x, y, "Facing right", f.Mood.FacingRight)
	DrawBool(x, y, "Dying", f.Mood.Dying)
}
