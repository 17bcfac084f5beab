package systems

import "github.com/pthm-cable/aquarium/components"

// Pick returns the index of the fish whose sprite contains the NDC point
// (x, y). Sprites are Size wide and tall in NDC. When sprites overlap the
// one whose centre is nearest wins.
func Pick(fish []components.Fish, x, y float32) (int, bool) {
	best := -1
	var bestDist float32
	for i := range fish {
		f := &fish[i]
		half := f.Body.Size / 2
		dx := x - f.Position.X
		dy := y - f.Position.Y
		if dx < -half || dx > half || dy < -half || dy > half {
			continue
		}
		d := dx*dx + dy*dy
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, best >= 0
}
