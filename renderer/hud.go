package renderer

import (
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/geometry"
	"github.com/pthm-cable/aquarium/palette"
	"github.com/pthm-cable/aquarium/ui"
)

// Button label placement relative to the button's lower-left pixel.
const (
	buttonLabelDX    = 10
	buttonLabelDY    = -35
	buttonLabelScale = 1.5
)

// HUD draws bars, buttons and their labels in pixel space.
type HUD struct {
	// scratch holds the label text for the call in progress. It is
	// allocated once and truncated before every label.
	scratch []byte
}

// NewHUD creates a HUD with a label buffer large enough for any layout label.
func NewHUD() *HUD {
	return &HUD{scratch: make([]byte, 0, 64)}
}

// Draw renders both bars then both buttons.
func (h *HUD) Draw(layout ui.Layout, food, oxygen float32, vp geometry.Viewport) {
	h.drawBar(layout.FoodBar, food, vp)
	h.drawBarLabel(layout, layout.FoodBar, food, vp)
	h.drawBar(layout.OxygenBar, oxygen, vp)
	h.drawBarLabel(layout, layout.OxygenBar, oxygen, vp)

	h.drawButton(layout, layout.Feed, ui.FoodColor, vp)
	h.drawButton(layout, layout.Oxygen, ui.OxygenColor, vp)
}

// drawBar draws the dark track then the fill.
func (h *HUD) drawBar(bar ui.Bar, level float32, vp geometry.Viewport) {
	fillRect(bar.X, bar.Y, bar.MaxWidth, bar.Height, ui.TrackColor, vp)
	fillRect(bar.X, bar.Y, bar.Fill(level), bar.Height, bar.Color, vp)
}

func (h *HUD) drawBarLabel(layout ui.Layout, bar ui.Bar, level float32, vp geometry.Viewport) {
	_, py := vp.NDCToPixel(bar.X, bar.Y)

	h.scratch = h.scratch[:0]
	h.scratch = append(h.scratch, bar.Label...)
	h.scratch = append(h.scratch, ' ')
	h.scratch = strconv.AppendInt(h.scratch, int64(level*100+0.5), 10)
	h.scratch = append(h.scratch, '%')

	drawText(string(h.scratch), layout.LabelX, py, layout.LabelFontSize)
}

func (h *HUD) drawButton(layout ui.Layout, b ui.Button, c ui.Color, vp geometry.Viewport) {
	h.drawBar(ui.ButtonBar(b, c), 1, vp)

	px, py := vp.NDCToPixel(b.X, b.Y)

	h.scratch = h.scratch[:0]
	h.scratch = append(h.scratch, b.Label...)

	size := int32(float32(layout.LabelFontSize) * buttonLabelScale)
	drawText(string(h.scratch), px+buttonLabelDX, py+buttonLabelDY, size)
}

// fillRect draws an NDC rectangle whose lower-left corner is (x, y).
func fillRect(x, y, w, h float32, c ui.Color, vp geometry.Viewport) {
	if w <= 0 || h <= 0 {
		return
	}
	left, top := vp.NDCToPixel(x, y+h)
	pw, ph := vp.NDCToPixelSize(w, h)
	r, g, b := palette.Bytes(c)
	rl.DrawRectangleRec(rl.Rectangle{X: left, Y: top, Width: pw, Height: ph}, rl.NewColor(r, g, b, 255))
}

func drawText(text string, x, y float32, size int32) {
	r, g, b := palette.Bytes(ui.LabelColor)
	rl.DrawText(text, int32(x), int32(y), size, rl.NewColor(r, g, b, 255))
}
