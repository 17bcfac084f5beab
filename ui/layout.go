// Package ui defines the HUD layout and maps pointer presses to tank intents.
// Geometry is in normalized device coordinates with y up.
package ui

import "github.com/pthm-cable/aquarium/config"

// Button is a clickable rectangle. X, Y is its lower-left corner.
type Button struct {
	X, Y, Width, Height float32
	Label               string
}

// Color is a linear RGB triple in [0,1].
type Color struct {
	R, G, B float32
}

// Bar is one progress bar: a dark track of MaxWidth and a fill of
// MaxWidth*level.
type Bar struct {
	X, Y     float32
	MaxWidth float32
	Height   float32
	Color    Color
	Label    string
}

// Fill returns the foreground width for a level in [0,1].
func (b Bar) Fill(level float32) float32 {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	return b.MaxWidth * level
}

// Colors shared by bars and buttons.
var (
	TrackColor  = Color{0.2, 0.2, 0.2}
	FoodColor   = Color{1.0, 0.6, 0.0}
	OxygenColor = Color{0.0, 0.8, 0.8}
	LabelColor  = Color{1, 1, 1}
)

// Layout holds every static HUD element. It is immutable after construction.
type Layout struct {
	FoodBar   Bar
	OxygenBar Bar
	Feed      Button
	Oxygen    Button

	LabelX        float32 // bar label x in pixels
	LabelFontSize int32
}

// NewLayout builds the HUD from config. Bars stack downward from BarY.
func NewLayout(cfg config.UIConfig) Layout {
	barY := float32(cfg.BarY)
	height := float32(cfg.BarHeight)
	food := Bar{
		X:        float32(cfg.BarX),
		Y:        barY,
		MaxWidth: float32(cfg.BarWidth),
		Height:   height,
		Color:    FoodColor,
		Label:    "Food",
	}
	oxygen := food
	oxygen.Y = barY - (height + float32(cfg.BarSpacing))
	oxygen.Color = OxygenColor
	oxygen.Label = "Oxygen"

	return Layout{
		FoodBar:       food,
		OxygenBar:     oxygen,
		Feed:          buttonFromConfig(cfg.Buttons.Feed),
		Oxygen:        buttonFromConfig(cfg.Buttons.Oxygen),
		LabelX:        float32(cfg.LabelX),
		LabelFontSize: int32(cfg.LabelFontSize),
	}
}

func buttonFromConfig(b config.ButtonConfig) Button {
	return Button{
		X:      float32(b.X),
		Y:      float32(b.Y),
		Width:  float32(b.Width),
		Height: float32(b.Height),
		Label:  b.Label,
	}
}

// ButtonBar returns the bar primitive used to draw a button: its own width
// is both the track and the fill.
func ButtonBar(b Button, c Color) Bar {
	return Bar{X: b.X, Y: b.Y, MaxWidth: b.Width, Height: b.Height, Color: c, Label: b.Label}
}
