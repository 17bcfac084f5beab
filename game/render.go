package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/renderer"
)

// Draw renders the frame and presents it.
func (g *Game) Draw() {
	g.fish = g.tank.Pool.Snapshot(g.fish[:0])

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.renderer.Draw(renderer.Frame{
		Time:   float32(rl.GetTime()),
		Oxygen: g.tank.Vitals.Oxygen,
		Food:   g.tank.Vitals.Food,
		Fish:   g.fish,
		Layout: g.tank.Layout,
	})

	if g.showDebug {
		g.inspector.Draw(g.fish, g.vp)
		g.drawDebugPanel()
	}

	rl.EndDrawing()
}
