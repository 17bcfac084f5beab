package inspector

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Widget colors
var (
	ColorBarBg   = rl.Color{R: 40, G: 40, B: 40, A: 255}
	ColorBarFill = rl.Color{R: 100, G: 180, B: 100, A: 255}
	ColorBarLow  = rl.Color{R: 180, G: 80, B: 80, A: 255}
	ColorText    = rl.Color{R: 220, G: 220, B: 220, A: 255}
	ColorTextDim = rl.Color{R: 150, G: 150, B: 150, A: 255}
	ColorBoolOn  = rl.Color{R: 100, G: 200, B: 100, A: 255}
	ColorBoolOff = rl.Color{R: 80, G: 80, B: 80, A: 255}
)

// DrawLabel renders a name and preformatted value. Returns the row height.
func DrawLabel(x, y int32, name, value string) int32 {
	rl.DrawText(name, x, y, 14, ColorTextDim)
	rl.DrawText(value, x+100, y, 14, ColorText)
	return 20
}

// DrawBar renders a horizontal [0,1] bar. Returns the row height.
func DrawBar(x, y int32, name string, value float32) int32 {
	ratio := value
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}

	barWidth := int32(110)
	barHeight := int32(14)

	rl.DrawText(name, x, y, 14, ColorTextDim)

	barX := x + 100
	rl.DrawRectangle(barX, y, barWidth, barHeight, ColorBarBg)

	fillColor := ColorBarFill
	if ratio < 0.3 {
		fillColor = ColorBarLow
	}
	rl.DrawRectangle(barX, y, int32(float32(barWidth)*ratio), barHeight, fillColor)
	return 20
}

// DrawBool renders an on/off indicator. Returns the row height.
func DrawBool(x, y int32, name string, on bool) int32 {
	rl.DrawText(name, x, y, 14, ColorTextDim)

	color := ColorBoolOff
	text := "no"
	if on {
		color = ColorBoolOn
		text = "yes"
	}
	rl.DrawRectangle(x+100, y+2, 10, 10, color)
	rl.DrawText(text, x+116, y, 14, ColorText)
	return 20
}
