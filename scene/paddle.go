package scene

import (
	"math"

	"github.com/gogpu/mvp"
)

// NDCScale maps the demo's [-100, 100] world square into normalized device
// coordinates.
const NDCScale = 1.0 / 100.0

// Paddle is a rectangle with its own placement in the XY plane.
type Paddle struct {
	Renderable
	Position mvp.Vertex
	Rotation float64 // radians
}

// NewPaddle creates a 20x60 paddle.
func NewPaddle(name string, color RGB, position mvp.Vertex, rotation float64) Paddle {
	return Paddle{
		Renderable: NewRenderable(name, Triangles, RectangleGeometry(10, 30), color),
		Position:   position,
		Rotation:   rotation,
	}
}

// NDC transforms the paddle's geometry the fixed-function way, one vertex
// at a time: rotate in model space, translate into world space, then
// scale into normalized device coordinates.
func (p Paddle) NDC() []mvp.Vertex {
	out := make([]mvp.Vertex, len(p.Geometry))
	for i, g := range p.Geometry {
		world := g.XY().Rotate(p.Rotation).Translate(p.Position.X, p.Position.Y)
		out[i] = world.Scale(NDCScale, NDCScale)
	}
	return out
}

// Square is the small square attached to paddle 1. It is placed relative
// to paddle 1's frame: pushed back along -Z, orbited around the paddle by
// Orbit, moved out along X by Distance and spun by Rotation.
type Square struct {
	Renderable
	Depth    float64
	Orbit    float64 // radians
	Distance float64
	Rotation float64 // radians
}

// NewSquare creates a 10x10 square.
func NewSquare(color RGB, orbit, rotation float64) Square {
	return Square{
		Renderable: NewRenderable("square", Triangles, RectangleGeometry(5, 5), color),
		Depth:      5,
		Orbit:      orbit,
		Distance:   15,
		Rotation:   rotation,
	}
}

// Axis draws three arrows for the X (red), Y (green) and Z (blue) axes of
// the current Model frame.
type Axis struct {
	Arrow    Renderable
	Enlarged bool
}

// NewAxis creates an axis gizmo.
func NewAxis(enlarged bool) Axis {
	return Axis{
		Arrow:    NewRenderable("axis", Lines, ArrowGeometry(), RGB{}),
		Enlarged: enlarged,
	}
}

// NDCCube outlines the [-1, 1]^3 clip-space cube, scaled by Scale.
type NDCCube struct {
	Renderable
	Scale float64
}

// NewNDCCube creates a dark gray cube outline.
func NewNDCCube(scale float64) NDCCube {
	return NDCCube{
		Renderable: NewRenderable("ndc_cube", Lines, CubeGeometry(), RGB{R: 0.3, G: 0.3, B: 0.3}),
		Scale:      scale,
	}
}

// render draws the cube in its own Model scope.
func (c NDCCube) render(ms *mvp.MatrixStack, out Renderer) error {
	return ms.WithPush(mvp.Model, func() error {
		ms.Scale(mvp.Model, c.Scale, c.Scale, c.Scale)
		return c.draw(ms, out)
	})
}

var grayedOut = RGB{R: 0.5, G: 0.5, B: 0.5}

// render draws the three arrows, each in its own Model scope.
func (a Axis) render(ms *mvp.MatrixStack, out Renderer, grayed bool) error {
	arrows := []struct {
		color  RGB
		orient func()
	}{
		{RGB{R: 1}, func() { ms.RotateZ(mvp.Model, -math.Pi/2) }},
		{RGB{G: 1}, func() {}},
		{RGB{B: 1}, func() {
			ms.RotateY(mvp.Model, math.Pi/2)
			ms.RotateZ(mvp.Model, math.Pi/2)
		}},
	}
	for _, arrow := range arrows {
		err := ms.WithPush(mvp.Model, func() error {
			arrow.orient()
			if a.Enlarged {
				ms.Scale(mvp.Model, 10, 10, 10)
			}
			c := arrow.color
			if grayed {
				c = grayedOut
			}
			return a.Arrow.drawColored(ms, out, c)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
