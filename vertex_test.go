package mvp

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const epsilon = 1e-9

var approx = cmpopts.EquateApprox(0, epsilon)

func TestVertexTranslate(t *testing.T) {
	tests := []struct {
		name   string
		v      Vertex
		tx, ty float64
		want   Vertex
	}{
		{"zero", V(1, 2), 0, 0, V(1, 2)},
		{"positive", V(1, 2), 10, 20, V(11, 22)},
		{"negative", V(1, 2), -3, -4, V(-2, -2)},
		{"from origin", V(0, 0), 5, -5, V(5, -5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Translate(tt.tx, tt.ty)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("Translate(%v, %v) mismatch (-want +got):\n%s", tt.tx, tt.ty, diff)
			}
		})
	}
}

func TestVertexScale(t *testing.T) {
	tests := []struct {
		name   string
		v      Vertex
		sx, sy float64
		want   Vertex
	}{
		{"unit", V(3, 4), 1, 1, V(3, 4)},
		{"uniform", V(3, 4), 2, 2, V(6, 8)},
		{"ndc", V(-90, 30), 1.0 / 100.0, 1.0 / 100.0, V(-0.9, 0.3)},
		{"zero collapses", V(3, 4), 0, 0, V(0, 0)},
		{"mirror x", V(3, 4), -1, 1, V(-3, 4)},
		{"non-uniform", V(3, 4), 0.5, 3, V(1.5, 12)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Scale(tt.sx, tt.sy)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("Scale(%v, %v) mismatch (-want +got):\n%s", tt.sx, tt.sy, diff)
			}
		})
	}
}

func TestVertexRotate(t *testing.T) {
	tests := []struct {
		name  string
		v     Vertex
		angle float64
		want  Vertex
	}{
		{"zero", V(1, 0), 0, V(1, 0)},
		{"quarter turn ccw", V(1, 0), math.Pi / 2, V(0, 1)},
		{"half turn", V(1, 0), math.Pi, V(-1, 0)},
		{"quarter turn cw", V(1, 0), -math.Pi / 2, V(0, -1)},
		{"y axis", V(0, 1), math.Pi / 2, V(-1, 0)},
		{"diagonal", V(1, 1), math.Pi / 4, V(0, math.Sqrt2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Rotate(tt.angle)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("Rotate(%v) mismatch (-want +got):\n%s", tt.angle, diff)
			}
		})
	}
}

func TestVertexRotateInverse(t *testing.T) {
	points := []Vertex{V(1, 0), V(-10, 30), V(0.25, -7.5), V(100, 100)}
	for _, v := range points {
		for deg := -720.0; deg <= 720.0; deg += 15 {
			theta := deg * math.Pi / 180
			got := v.Rotate(theta).Rotate(-theta)
			if !got.ApproxEqual(v, 1e-9) {
				t.Errorf("Rotate(%v).Rotate(%v) of %v = %v", theta, -theta, v, got)
			}
		}
	}
}

func TestVertexTranslateInverse(t *testing.T) {
	points := []Vertex{V(1, 0), V(-10, 30), V(0.25, -7.5)}
	offsets := []Vertex{V(0, 0), V(10, 0), V(-3.5, 1e3), V(0.1, 0.2)}
	for _, v := range points {
		for _, o := range offsets {
			got := v.Translate(o.X, o.Y).Translate(-o.X, -o.Y)
			if !got.ApproxEqual(v, 1e-12) {
				t.Errorf("translate round trip of %v by %v = %v", v, o, got)
			}
		}
	}
}

func TestVertexOrderMatters(t *testing.T) {
	v := V(1, 2)
	quarter := math.Pi / 2

	rotateAfter := v.Translate(10, 0).Rotate(quarter)
	translateAfter := v.Rotate(quarter).Translate(10, 0)

	if diff := cmp.Diff(V(-2, 11), rotateAfter, approx); diff != "" {
		t.Errorf("translate then rotate mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(V(8, 1), translateAfter, approx); diff != "" {
		t.Errorf("rotate then translate mismatch (-want +got):\n%s", diff)
	}
	if rotateAfter.ApproxEqual(translateAfter, 1e-6) {
		t.Errorf("expected different results, both are %v", rotateAfter)
	}
}

func TestVertexImmutable(t *testing.T) {
	v := V(3, 4)
	_ = v.Translate(1, 1).Scale(2, 2).Rotate(1)
	if v != V(3, 4) {
		t.Errorf("receiver mutated to %v", v)
	}
}

func TestVertexPaddleChain(t *testing.T) {
	// Paddle corner at rotation 0 placed at x=-90, then squashed to NDC.
	got := V(-10, -30).Rotate(0).Translate(-90, 0).Scale(1.0/100.0, 1.0/100.0)
	if diff := cmp.Diff(V(-1, -0.3), got, approx); diff != "" {
		t.Errorf("paddle chain mismatch (-want +got):\n%s", diff)
	}
}

func TestVertexVec3(t *testing.T) {
	p := V(1, 2).Vec3(3)
	if p != (Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Vec3 = %v", p)
	}
	if p.XY() != V(1, 2) {
		t.Errorf("XY = %v", p.XY())
	}
	if got := V(5, 5).Sub(V(2, 3)); got != V(3, 2) {
		t.Errorf("Sub = %v", got)
	}
}
