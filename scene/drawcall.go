// Package scene drives one frame of the model/view/projection demo: it
// resets a MatrixStack, sets up projection and camera, walks the paddles
// and the square through nested Model scopes, and hands every drawable to
// a Renderer together with snapshots of the three current matrices.
//
// The package does not draw anything itself. Renderers (the software
// rasterizer in recording/backends/raster, a GPU pipeline built on the
// shader package, or a test double) consume DrawCall values.
package scene

import "github.com/gogpu/mvp"

// Primitive selects how a DrawCall's vertices are assembled.
type Primitive uint8

const (
	// Triangles assembles every three vertices into a filled triangle.
	Triangles Primitive = iota
	// Lines assembles every two vertices into a line segment.
	Lines
)

// String returns the primitive name.
func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "Triangles"
	case Lines:
		return "Lines"
	default:
		return "Primitive(?)"
	}
}

// RGB is a color with components in [0, 1].
type RGB struct {
	R, G, B float64
}

// DrawCall is everything a renderer needs for one draw: model-space
// geometry, a flat color and the column-major Model, View and Projection
// matrices current at the time of the call.
type DrawCall struct {
	Name       string
	Primitive  Primitive
	Vertices   []mvp.Vec3
	Color      RGB
	Model      [16]float32
	View       [16]float32
	Projection [16]float32
}

// MVP returns Projection * View * Model rebuilt from the uniforms.
func (d DrawCall) MVP() mvp.Matrix4 {
	p := mvp.FromColumnMajor(d.Projection)
	v := mvp.FromColumnMajor(d.View)
	m := mvp.FromColumnMajor(d.Model)
	return p.Multiply(v).Multiply(m)
}

// Renderer consumes draw calls. Each DrawCall owns its Vertices slice.
type Renderer interface {
	Draw(DrawCall) error
}

// RendererFunc adapts an ordinary function to the Renderer interface.
type RendererFunc func(DrawCall) error

// Draw calls f(d).
func (f RendererFunc) Draw(d DrawCall) error {
	return f(d)
}

// Discard is a Renderer that drops every draw call.
var Discard Renderer = RendererFunc(func(DrawCall) error { return nil })
