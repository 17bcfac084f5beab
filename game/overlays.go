package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Debug panel geometry in pixels, anchored to the top-right corner.
const (
	debugPanelWidth  = 220
	debugPanelHeight = 150
	debugPanelMargin = 10
)

// debugRequest holds panel actions until the next Update so the tank is
// never mutated mid-draw.
type debugRequest struct {
	reset bool
}

func debugPanelRect() rl.Rectangle {
	w := float32(rl.GetScreenWidth())
	return rl.Rectangle{
		X:      w - debugPanelWidth - debugPanelMargin,
		Y:      debugPanelMargin,
		Width:  debugPanelWidth,
		Height: debugPanelHeight,
	}
}

// drawDebugPanel draws the F1 panel: pause, time scale and reset.
func (g *Game) drawDebugPanel() {
	panel := debugPanelRect()
	rl.DrawRectangleRec(panel, rl.NewColor(0, 0, 0, 180))

	x := panel.X + 10
	y := panel.Y + 10
	w := panel.Width - 20

	rl.DrawText(fmt.Sprintf("Tick %d  FPS %d", g.tick, rl.GetFPS()), int32(x), int32(y), 14, rl.RayWhite)
	y += 22

	pauseLabel := "Pause"
	if g.paused {
		pauseLabel = "Resume"
	}
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w, Height: 24}, pauseLabel) {
		g.paused = !g.paused
	}
	y += 32

	rl.DrawText(fmt.Sprintf("Time scale %.2fx", g.timeScale), int32(x), int32(y), 14, rl.RayWhite)
	y += 18
	g.timeScale = gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: w, Height: 16},
		"", "",
		g.timeScale, MinTimeScale, MaxTimeScale,
	)
	y += 26

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w, Height: 24}, "Reset tank") {
		g.request.reset = true
	}
}

// applyDebugRequest carries out panel actions from the previous frame.
func (g *Game) applyDebugRequest() {
	if g.request.reset {
		g.tank.Reset()
		g.inspector.Deselect()
		g.collector.RecordReset()
	}
	g.request = debugRequest{}
}
