// Package geometry provides projection math between normalized device
// coordinates and screen pixels.
package geometry

// Mat4 is a 4x4 matrix in column-major order, as OpenGL expects.
type Mat4 [16]float32

// Ortho builds an orthographic projection mapping the box
// [left,right]x[bottom,top]x[near,far] onto clip space [-1,1]^3.
// Passing top < bottom flips the vertical axis (origin top-left).
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	var m Mat4
	m[0] = 2 / (right - left)
	m[5] = 2 / (top - bottom)
	m[10] = -2 / (far - near)
	m[12] = -(right + left) / (right - left)
	m[13] = -(top + bottom) / (top - bottom)
	m[14] = -(far + near) / (far - near)
	m[15] = 1
	return m
}

// Apply projects a point on the z=0 plane.
func (m Mat4) Apply(x, y float32) (float32, float32) {
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}

// Unproject maps a projected point back through an orthographic matrix.
// Only valid for matrices built by Ortho (no rotation or shear).
func (m Mat4) Unproject(x, y float32) (float32, float32) {
	return (x - m[12]) / m[0], (y - m[13]) / m[5]
}
