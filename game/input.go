package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/ui"
)

// pollIntents processes keyboard input and returns the button intents for
// this frame's pointer presses.
func (g *Game) pollIntents() []ui.Intent {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.showDebug = !g.showDebug
		if !g.showDebug {
			g.inspector.Deselect()
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		g.inspector.Deselect()
	}

	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return nil
	}
	mouse := rl.GetMousePosition()
	if g.showDebug && rl.CheckCollisionPointRec(mouse, debugPanelRect()) {
		return nil
	}

	intent := ui.ResolvePress(g.tank.Layout, g.vp, ui.PressEvent{X: mouse.X, Y: mouse.Y})
	if intent == ui.IntentNone {
		// Clicks on open water select a fish while debugging
		if g.showDebug {
			g.inspector.HandleClick(g.fish, g.vp, mouse.X, mouse.Y)
		}
		return nil
	}
	return []ui.Intent{intent}
}
