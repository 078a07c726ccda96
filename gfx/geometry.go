package gfx

import ml "github.com/go-gl/mathgl/mgl32"

var quadIndices = [6]uint16{0, 1, 2, 2, 3, 0}

// Quad returns the vertices and indices of an axis-aligned
// rectangle from (0, 0) to (width, height) mapping the full texture.
func Quad(width, height float32) ([]Vertex, []uint16) {
	vertices := []Vertex{
		{X: 0, Y: 0, U: 0, V: 0},
		{X: width, Y: 0, U: 1, V: 0},
		{X: width, Y: height, U: 1, V: 1},
		{X: 0, Y: height, U: 0, V: 1},
	}
	indices := make([]uint16, len(quadIndices))
	copy(indices, quadIndices[:])
	return vertices, indices
}

// Ortho returns a projection mapping the pixel rectangle (0, 0) to
// (width, height), y-down, onto normalized device coordinates.
func Ortho(width, height int) ml.Mat4 {
	return ml.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// PixelMVP returns the MVP to draw something at (x, y) on a target
// of the given size, in pixel units.
func PixelMVP(width, height int, x, y float32) ml.Mat4 {
	return Ortho(width, height).Mul4(ml.Translate3D(x, y, 0))
}

// ToPixel transforms an object space point by the given MVP and maps
// the result to the pixel space of a target of the given size.
// NDC y = +1 corresponds to the top row.
func ToPixel(mvp ml.Mat4, x, y float32, width, height int) (float32, float32) {
	clip := mvp.Mul4x1(ml.Vec4{x, y, 0, 1})
	ndcX, ndcY := clip.X(), clip.Y()
	if w := clip.W(); w != 0 && w != 1 {
		ndcX, ndcY = ndcX/w, ndcY/w
	}
	px := (ndcX + 1) / 2 * float32(width)
	py := (1 - ndcY) / 2 * float32(height)
	return px, py
}
