package geometry

// Viewport converts between NDC and pixel space for a fixed display size.
type Viewport struct {
	Width, Height float32

	// Text is the pixel-space projection (origin top-left, y down).
	Text Mat4
}

// NewViewport creates the pixel-space projection for a display of the given size.
func NewViewport(width, height float32) Viewport {
	return Viewport{
		Width:  width,
		Height: height,
		Text:   Ortho(0, width, height, 0, -1, 1),
	}
}

// PixelToNDC converts device pixels to normalized coordinates with up positive.
func (v Viewport) PixelToNDC(px, py float32) (float32, float32) {
	return v.Text.Apply(px, py)
}

// NDCToPixel converts normalized coordinates to device pixels.
func (v Viewport) NDCToPixel(x, y float32) (float32, float32) {
	return v.Text.Unproject(x, y)
}

// NDCToPixelSize converts an extent in NDC units to pixels.
func (v Viewport) NDCToPixelSize(w, h float32) (float32, float32) {
	return w * v.Width / 2, h * v.Height / 2
}

// Aspect returns height over width, the factor that makes an NDC extent
// look square on a non-square display.
func (v Viewport) Aspect() float32 {
	return v.Height / v.Width
}
