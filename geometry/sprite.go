package geometry

// Rect is an axis-aligned pixel rectangle with its origin at the top-left.
type Rect struct {
	X, Y, Width, Height float32
}

// SpriteRects returns the texture source and screen destination for a
// sprite centred at NDC (x, y) that is size NDC units wide and tall.
// A sprite not facing right gets a negative source width, which the
// texture blit reads as a horizontal mirror.
func (v Viewport) SpriteRects(x, y, size, texW, texH float32, facingRight bool) (src, dst Rect) {
	src = Rect{Width: texW, Height: texH}
	if !facingRight {
		src.Width = -texW
	}

	cx, cy := v.NDCToPixel(x, y)
	w, h := v.NDCToPixelSize(size, size)
	dst = Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
	return src, dst
}
