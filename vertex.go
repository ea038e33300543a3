package mvp

import "math"

// Vertex is an immutable 2D point used by the fixed-function pipeline.
//
// Every method has a value receiver and returns a new Vertex, so chains
// such as
//
//	world := model.Rotate(theta).Translate(tx, ty)
//	ndc := world.Scale(1.0/100.0, 1.0/100.0)
//
// are evaluated strictly left to right. Reordering a chain changes the
// result; the pipeline never reorders on the caller's behalf.
type Vertex struct {
	X, Y float64
}

// V is a convenience function to create a Vertex.
func V(x, y float64) Vertex {
	return Vertex{X: x, Y: y}
}

// Translate returns the vertex moved by (tx, ty).
func (v Vertex) Translate(tx, ty float64) Vertex {
	return Vertex{X: v.X + tx, Y: v.Y + ty}
}

// Scale returns the vertex scaled component-wise about the origin.
// Zero and negative factors are legal and produce degenerate or
// mirrored geometry.
func (v Vertex) Scale(sx, sy float64) Vertex {
	return Vertex{X: v.X * sx, Y: v.Y * sy}
}

// Rotate returns the vertex rotated counter-clockwise by angle radians
// around the origin.
func (v Vertex) Rotate(angle float64) Vertex {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vertex{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Sub returns the component-wise difference v - w.
func (v Vertex) Sub(w Vertex) Vertex {
	return Vertex{X: v.X - w.X, Y: v.Y - w.Y}
}

// ApproxEqual reports whether both components differ by at most eps.
func (v Vertex) ApproxEqual(w Vertex, eps float64) bool {
	return math.Abs(v.X-w.X) <= eps && math.Abs(v.Y-w.Y) <= eps
}

// Vec3 lifts the vertex into 3D space at depth z.
func (v Vertex) Vec3(z float64) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: z}
}

// Vec3 is a point in 3D space.
type Vec3 struct {
	X, Y, Z float64
}

// XY drops the Z component.
func (p Vec3) XY() Vertex {
	return Vertex{X: p.X, Y: p.Y}
}

// ApproxEqual reports whether all components differ by at most eps.
func (p Vec3) ApproxEqual(q Vec3, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps &&
		math.Abs(p.Y-q.Y) <= eps &&
		math.Abs(p.Z-q.Z) <= eps
}
