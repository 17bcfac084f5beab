// Package palette computes the colors the renderer feeds to its shaders.
package palette

import "github.com/pthm-cable/aquarium/ui"

// Distress is the tint of a fully unhappy fish.
var Distress = ui.Color{R: 1.0, G: 0.3, B: 0.3}

// WaveColor is the fixed highlight mixed into the water.
var WaveColor = ui.Color{R: 0.0, G: 0.4, B: 0.8}

// Tint interpolates from white toward Distress as happiness falls to 0.
func Tint(happiness float32) ui.Color {
	t := 1 - clamp01(happiness)
	return ui.Color{
		R: lerp(1, Distress.R, t),
		G: lerp(1, Distress.G, t),
		B: lerp(1, Distress.B, t),
	}
}

// Water returns the base and wave colors of the background for an oxygen
// level. The base brightens toward blue-green as oxygen rises.
func Water(oxygen float32) (base, wave ui.Color) {
	oxygen = clamp01(oxygen)
	base = ui.Color{
		R: 0,
		G: 0.3 + 0.7*oxygen,
		B: 0.2 + 0.7*oxygen,
	}
	return base, WaveColor
}

// Bytes converts c to 8-bit channels for raylib colors.
func Bytes(c ui.Color) (r, g, b uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B)
}

func toByte(x float32) uint8 {
	return uint8(clamp01(x)*255 + 0.5)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
