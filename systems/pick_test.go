package systems

import (
	"testing"

	"github.com/pthm-cable/aquarium/components"
)

func fishAt(x, y, size float32) components.Fish {
	return components.Fish{
		Position: components.Position{X: x, Y: y},
		Body:     components.Body{Size: size},
	}
}

func TestPick(t *testing.T) {
	fish := []components.Fish{
		fishAt(0, 0, 0.2),
		fishAt(0.15, 0, 0.2),
		fishAt(-0.8, 0.8, 0.1),
	}

	tests := []struct {
		name   string
		x, y   float32
		want   int
		wantOK bool
	}{
		{"centre", 0, 0, 0, true},
		{"overlap nearer second", 0.1, 0, 1, true},
		{"edge inclusive", -0.1, 0.1, 0, true},
		{"small fish", -0.84, 0.76, 2, true},
		{"miss", 0.5, -0.5, -1, false},
		{"just outside", -0.11, 0, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Pick(fish, tt.x, tt.y)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Pick(%v, %v) = %d, %v; want %d, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestPickEmpty(t *testing.T) {
	if _, ok := Pick(nil, 0, 0); ok {
		t.Error("Pick on no fish reported a hit")
	}
}
