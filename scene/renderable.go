package scene

import (
	"math"
	"slices"

	"github.com/gogpu/mvp"
)

// Renderable is a drawable record: geometry, color and primitive type.
// Each Renderable owns its own vertex slice; constructors copy the input.
type Renderable struct {
	Name      string
	Primitive Primitive
	Geometry  []mvp.Vec3
	Color     RGB
}

// NewRenderable creates a Renderable with a private copy of geometry.
func NewRenderable(name string, prim Primitive, geometry []mvp.Vec3, color RGB) Renderable {
	return Renderable{
		Name:      name,
		Primitive: prim,
		Geometry:  slices.Clone(geometry),
		Color:     color,
	}
}

// draw emits the renderable with the current matrices of ms.
func (r Renderable) draw(ms *mvp.MatrixStack, out Renderer) error {
	return r.drawColored(ms, out, r.Color)
}

// drawColored hands out a copy of the geometry, so a renderer may keep or
// modify DrawCall.Vertices without touching the scene.
func (r Renderable) drawColored(ms *mvp.MatrixStack, out Renderer, c RGB) error {
	return out.Draw(DrawCall{
		Name:       r.Name,
		Primitive:  r.Primitive,
		Vertices:   slices.Clone(r.Geometry),
		Color:      c,
		Model:      ms.Uniform(mvp.Model),
		View:       ms.Uniform(mvp.View),
		Projection: ms.Uniform(mvp.Projection),
	})
}

// RectangleGeometry returns two triangles covering the axis-aligned
// rectangle [-hw, hw] x [-hh, hh] at z = 0.
func RectangleGeometry(hw, hh float64) []mvp.Vec3 {
	return []mvp.Vec3{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
		{X: -hw, Y: -hh},
	}
}

// MaxGroundLines bounds the number of grid lines in each direction.
const MaxGroundLines = 1000

// GroundLines returns how many grid lines GroundGeometry draws in each
// direction, or 0 if the arguments do not describe a grid.
func GroundLines(extent, spacing float64) int {
	if !finite(extent, spacing) || spacing <= 0 || extent < 0 {
		return 0
	}
	n := math.Floor(2*extent/spacing+1e-9) + 1
	if n > MaxGroundLines {
		return 0
	}
	return int(n)
}

// GroundGeometry returns a grid of line segments on the plane y = height,
// spanning [-extent, extent] in X and Z with the given spacing. It returns
// nil when GroundLines reports no grid.
func GroundGeometry(extent, spacing, height float64) []mvp.Vec3 {
	n := GroundLines(extent, spacing)
	if n == 0 || !finite(height) {
		return nil
	}
	verts := make([]mvp.Vec3, 0, 4*n)
	for i := range n {
		x := -extent + float64(i)*spacing
		verts = append(verts,
			mvp.Vec3{X: x, Y: height, Z: -extent},
			mvp.Vec3{X: x, Y: height, Z: extent},
		)
	}
	for i := range n {
		z := -extent + float64(i)*spacing
		verts = append(verts,
			mvp.Vec3{X: -extent, Y: height, Z: z},
			mvp.Vec3{X: extent, Y: height, Z: z},
		)
	}
	return verts
}

// CubeGeometry returns the twelve edges of the cube [-1, 1]^3 as line
// segments. Drawn with identity matrices it outlines clip space.
func CubeGeometry() []mvp.Vec3 {
	var verts []mvp.Vec3
	for _, z := range []float64{-1, 1} {
		verts = append(verts,
			mvp.Vec3{X: -1, Y: -1, Z: z}, mvp.Vec3{X: 1, Y: -1, Z: z},
			mvp.Vec3{X: 1, Y: -1, Z: z}, mvp.Vec3{X: 1, Y: 1, Z: z},
			mvp.Vec3{X: 1, Y: 1, Z: z}, mvp.Vec3{X: -1, Y: 1, Z: z},
			mvp.Vec3{X: -1, Y: 1, Z: z}, mvp.Vec3{X: -1, Y: -1, Z: z},
		)
	}
	for _, c := range [][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
		verts = append(verts,
			mvp.Vec3{X: c[0], Y: c[1], Z: -1},
			mvp.Vec3{X: c[0], Y: c[1], Z: 1},
		)
	}
	return verts
}

// ArrowGeometry returns a unit arrow along +Y as line segments: the shaft
// from the origin to (0, 1, 0) and two barbs.
func ArrowGeometry() []mvp.Vec3 {
	return []mvp.Vec3{
		{X: 0, Y: 0}, {X: 0, Y: 1},
		{X: 0, Y: 1}, {X: 0.25, Y: 0.75},
		{X: 0, Y: 1}, {X: -0.25, Y: 0.75},
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
