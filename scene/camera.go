package scene

import "github.com/gogpu/mvp"

// Camera orbits the world origin at distance Radius.
type Camera struct {
	Radius float64
	RotX   float64 // radians, pitch
	RotY   float64 // radians, yaw
}

// Camera radius limits.
const (
	MinCameraRadius = 10.0
	MaxCameraRadius = 1000.0
)

// Apply composes the camera onto the View stack: back away from the
// origin, then pitch, then yaw the world the opposite way.
func (c Camera) Apply(ms *mvp.MatrixStack) {
	ms.Translate(mvp.View, 0, 0, -c.Radius)
	ms.RotateX(mvp.View, c.RotX)
	ms.RotateY(mvp.View, -c.RotY)
}

// Projection describes the perspective used each frame.
type Projection struct {
	FOV  float64 // vertical field of view in degrees
	Near float64
	Far  float64
}

// DefaultProjection is the projection used by the demos.
var DefaultProjection = Projection{FOV: 45, Near: 0.1, Far: 10000}

// Apply replaces the Projection matrix of ms.
func (p Projection) Apply(ms *mvp.MatrixStack, aspect float64) error {
	return ms.Perspective(p.FOV, aspect, p.Near, p.Far)
}

// Start times of the virtual camera stages. The camera is first placed in
// the world, then the world is moved into the camera's space by undoing
// the placement in reverse order.
const (
	StageVirtualCameraTranslate = 60.0
	StageVirtualCameraRotateY   = 65.0
	StageVirtualCameraRotateX   = 70.0
	StageViewTranslate          = 75.0
	StageViewRotateY            = 80.0
	StageViewRotateX            = 85.0
)

// VirtualCamera is a camera standing inside the world. It is drawn as an
// axis gizmo with a scaled NDC cube for its view volume.
type VirtualCamera struct {
	Position mvp.Vec3
	RotY     float64 // radians
	RotX     float64 // radians
}

// Place composes T(p) * R_y * R_x onto Model, each factor ramped in by its
// stage. Once every stage is done, Model maps camera space to world space.
func (v VirtualCamera) Place(ms *mvp.MatrixStack, t float64) {
	if t > StageVirtualCameraTranslate {
		s := Stage(t, StageVirtualCameraTranslate)
		ms.Translate(mvp.Model, v.Position.X*s, v.Position.Y*s, v.Position.Z*s)
	}
	if t > StageVirtualCameraRotateY {
		ms.RotateY(mvp.Model, v.RotY*Stage(t, StageVirtualCameraRotateY))
	}
	if t > StageVirtualCameraRotateX {
		ms.RotateX(mvp.Model, v.RotX*Stage(t, StageVirtualCameraRotateX))
	}
}

// View composes the inverse of Place onto Model: R_x^-1 * R_y^-1 * T(-p).
// Everything drawn afterwards lands in the virtual camera's space, which
// is what a View matrix does.
func (v VirtualCamera) View(ms *mvp.MatrixStack, t float64) {
	if t > StageViewRotateX {
		ms.RotateX(mvp.Model, -v.RotX*Stage(t, StageViewRotateX))
	}
	if t > StageViewRotateY {
		ms.RotateY(mvp.Model, -v.RotY*Stage(t, StageViewRotateY))
	}
	if t > StageViewTranslate {
		s := Stage(t, StageViewTranslate)
		ms.Translate(mvp.Model, -v.Position.X*s, -v.Position.Y*s, -v.Position.Z*s)
	}
}
