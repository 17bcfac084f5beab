// Shader debug tool - renders the water background to a PNG file for inspection.
//
// Usage: go run ./cmd/shaderdebug -oxygen 0.3 -time 12 -out water.png
package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/renderer"
)

func main() {
	outPath := flag.String("out", "water.png", "Output PNG path")
	width := flag.Int("width", 800, "Render width")
	height := flag.Int("height", 600, "Render height")
	oxygen := flag.Float64("oxygen", 1.0, "Oxygen level in [0,1]")
	at := flag.Float64("time", 0, "Animation time in seconds")
	flag.Parse()

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(*width), int32(*height), "Shader Debug")
	defer rl.CloseWindow()

	if !rl.IsWindowReady() {
		fmt.Fprintln(os.Stderr, "Failed to create window")
		os.Exit(1)
	}

	water := renderer.NewWaterBackground(float32(*width), float32(*height))
	water.Init()
	defer water.Unload()

	// Create render texture
	target := rl.LoadRenderTexture(int32(*width), int32(*height))
	defer rl.UnloadRenderTexture(target)

	// Render shader to texture
	rl.BeginTextureMode(target)
	rl.ClearBackground(rl.Black)
	water.Draw(float32(*at), float32(*oxygen))
	rl.EndTextureMode()

	// Get image from texture and flip it (OpenGL convention)
	img := rl.LoadImageFromTexture(target.Texture)
	rl.ImageFlipVertical(img)

	// Export to PNG
	success := rl.ExportImage(*img, *outPath)
	rl.UnloadImage(img)

	if success {
		fmt.Printf("Water rendered to: %s (%dx%d, oxygen %.2f, t=%.1fs)\n", *outPath, *width, *height, *oxygen, *at)
	} else {
		fmt.Fprintf(os.Stderr, "Failed to export image\n")
		os.Exit(1)
	}
}
