// Palette preview tool - interactive view of water and fish tint with sliders.
//
// Usage: go run ./cmd/palettepreview -texture fish.png
package main

import (
	"flag"
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/palette"
)

const (
	previewWidth  = 640
	previewHeight = 480
	panelWidth    = 280
	windowWidth   = previewWidth + panelWidth + 30
	windowHeight  = previewHeight + 20
)

// happinessSteps are the fixed tints drawn along the bottom of the preview.
var happinessSteps = []float32{0, 0.25, 0.5, 0.75, 1}

func main() {
	texturePath := flag.String("texture", "fish.png", "Fish sprite texture")
	flag.Parse()

	rl.InitWindow(windowWidth, windowHeight, "Palette Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	water := newPreviewWater()
	defer water.unload()

	// Missing textures fall back to tinted circles
	var sprite rl.Texture2D
	hasSprite := false
	if rl.FileExists(*texturePath) {
		sprite = rl.LoadTexture(*texturePath)
		hasSprite = sprite.ID != 0
	}
	if hasSprite {
		defer rl.UnloadTexture(sprite)
	}

	oxygen := float32(1)
	happiness := float32(1)
	var time float32
	animating := true

	for !rl.WindowShouldClose() {
		if animating {
			time += rl.GetFrameTime()
		}
		water.render(time, oxygen)

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		water.draw(10, 10)
		rl.DrawRectangleLines(10, 10, previewWidth, previewHeight, rl.DarkGray)

		// Live fish in the middle, fixed steps along the bottom
		drawFish(sprite, hasSprite, 10+previewWidth/2, 10+previewHeight/2, 160, happiness)
		step := float32(previewWidth) / float32(len(happinessSteps))
		for i, h := range happinessSteps {
			x := 10 + step*(float32(i)+0.5)
			drawFish(sprite, hasSprite, x, 10+previewHeight-60, 80, h)
			rl.DrawText(fmt.Sprintf("%.2f", h), int32(x-12), int32(10+previewHeight-18), 12, rl.RayWhite)
		}

		// Panel
		panelX := float32(previewWidth + 20)
		panelY := float32(10)

		rl.DrawText("Palette", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		rl.DrawText("Oxygen (water brightness)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		oxygen = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 80, Height: 20},
			"", "",
			oxygen, 0, 1,
		)
		rl.DrawText(fmt.Sprintf("%.2f", oxygen), int32(panelX+panelWidth-70), int32(panelY+2), 16, rl.DarkGray)
		panelY += 40

		rl.DrawText("Happiness (fish tint)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		happiness = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 80, Height: 20},
			"", "",
			happiness, 0, 1,
		)
		rl.DrawText(fmt.Sprintf("%.2f", happiness), int32(panelX+panelWidth-70), int32(panelY+2), 16, rl.DarkGray)
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset Time") {
			time = 0
		}
		panelY += 55

		base, wave := palette.Water(oxygen)
		tint := palette.Tint(happiness)
		lines := []string{
			fmt.Sprintf("base  %.2f %.2f %.2f", base.R, base.G, base.B),
			fmt.Sprintf("wave  %.2f %.2f %.2f", wave.R, wave.G, wave.B),
			fmt.Sprintf("tint  %.2f %.2f %.2f", tint.R, tint.G, tint.B),
			fmt.Sprintf("time  %.1fs", time),
		}
		for _, line := range lines {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
		}

		rl.EndDrawing()
	}
}

func drawFish(sprite rl.Texture2D, hasSprite bool, cx, cy, size, happiness float32) {
	r, g, b := palette.Bytes(palette.Tint(happiness))
	tint := rl.NewColor(r, g, b, 255)
	if !hasSprite {
		rl.DrawCircleV(rl.Vector2{X: cx, Y: cy}, size/2, tint)
		return
	}
	rl.DrawTexturePro(
		sprite,
		rl.Rectangle{Width: float32(sprite.Width), Height: float32(sprite.Height)},
		rl.Rectangle{X: cx - size/2, Y: cy - size/2, Width: size, Height: size},
		rl.Vector2{},
		0,
		tint,
	)
}

func toggleText(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}
