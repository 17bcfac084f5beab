package geometry

import "testing"

func TestSpriteRects(t *testing.T) {
	v := NewViewport(800, 600)

	tests := []struct {
		name        string
		x, y, size  float32
		facingRight bool
		wantSrcW    float32
		wantDst     Rect
	}{
		{"centre facing right", 0, 0, 0.2, true, 64, Rect{X: 360, Y: 270, Width: 80, Height: 60}},
		{"centre facing left mirrors", 0, 0, 0.2, false, -64, Rect{X: 360, Y: 270, Width: 80, Height: 60}},
		{"top-left corner", -1, 1, 0.1, true, 64, Rect{X: -20, Y: -15, Width: 40, Height: 30}},
		{"resting on floor", 0.5, -1, 0.24, false, -64, Rect{X: 552, Y: 564, Width: 96, Height: 72}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, dst := v.SpriteRects(tt.x, tt.y, tt.size, 64, 32, tt.facingRight)
			if src.X != 0 || src.Y != 0 || src.Width != tt.wantSrcW || src.Height != 32 {
				t.Errorf("src = %+v, want width %v height 32 at origin", src, tt.wantSrcW)
			}
			if !nearPixel(dst.X, tt.wantDst.X) || !nearPixel(dst.Y, tt.wantDst.Y) ||
				!nearPixel(dst.Width, tt.wantDst.Width) || !nearPixel(dst.Height, tt.wantDst.Height) {
				t.Errorf("dst = %+v, want %+v", dst, tt.wantDst)
			}
		})
	}
}
