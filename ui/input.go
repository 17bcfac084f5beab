package ui

import "github.com/pthm-cable/aquarium/geometry"

// Intent is what a pointer press asks the tank to do.
type Intent uint8

const (
	IntentNone Intent = iota
	IntentFeed
	IntentOxygen
)

func (i Intent) String() string {
	switch i {
	case IntentFeed:
		return "feed"
	case IntentOxygen:
		return "oxygen"
	default:
		return "none"
	}
}

// HitTest reports whether (x, y) lies in b, edges included.
func HitTest(b Button, x, y float32) bool {
	return x >= b.X && x <= b.X+b.Width &&
		y >= b.Y && y <= b.Y+b.Height
}

// Resolve maps an NDC point to an intent. Feed is tested first; the first
// hit wins.
func Resolve(l Layout, x, y float32) Intent {
	switch {
	case HitTest(l.Feed, x, y):
		return IntentFeed
	case HitTest(l.Oxygen, x, y):
		return IntentOxygen
	default:
		return IntentNone
	}
}

// PressEvent is a primary-button press in device pixels.
type PressEvent struct {
	X, Y float32
}

// ResolvePress converts a press to NDC and resolves it.
func ResolvePress(l Layout, vp geometry.Viewport, ev PressEvent) Intent {
	x, y := vp.PixelToNDC(ev.X, ev.Y)
	return Resolve(l, x, y)
}
