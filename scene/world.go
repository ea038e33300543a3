package scene

import (
	"fmt"

	"github.com/gogpu/mvp"
)

// StageDuration is how long, in seconds of animation time, each
// transformation takes to ramp in.
const StageDuration = 5.0

// Start times of the animation stages. Each transform of the demo ramps
// in over StageDuration starting at its time, so the viewer sees the
// composition being built one step at a time.
const (
	StagePaddle1Translate = 5.0
	StagePaddle1Rotate    = 10.0
	StageSquareDepth      = 15.0
	StageSquareOrbit      = 20.0
	StageSquareTranslate  = 25.0
	StageSquareRotate     = 30.0
	StagePaddle2Translate = 35.0
	StagePaddle2Rotate    = 40.0
	StagePaddle2Draw      = 45.0
)

// Stage returns how far the stage starting at start has progressed at
// time t, clamped to [0, 1].
func Stage(t, start float64) float64 {
	switch p := (t - start) / StageDuration; {
	case p <= 0:
		return 0
	case p >= 1:
		return 1
	default:
		return p
	}
}

// World is the state of the demo scene.
type World struct {
	Paddle1    Paddle
	Paddle2    Paddle
	Square     Square
	Ground     Renderable
	Cube       NDCCube
	Axis       Axis
	Camera     Camera
	Projection Projection

	VirtualCamera VirtualCamera
}

// Render draws one frame at animation time t.
//
// It resets ms, installs the projection and camera, draws the ground and
// the NDC cube, then walks the scene:
//
//	paddle 1 -> world:  T * R_z
//	square  -> world:   paddle1_to_world * T_-z * R_z * T_x * R2_z
//	paddle 2 -> world:  T * R
//
// From StageVirtualCameraTranslate on, a virtual camera is placed in the
// world; from StageViewTranslate on, everything after the ground and the
// cube is moved into that camera's space.
//
// Every object is drawn inside its own Model scope. An error from out or
// from the projection aborts the frame; the scopes still unwind.
func (w *World) Render(ms *mvp.MatrixStack, t, aspect float64, out Renderer) error {
	ms.BeginFrame()
	for _, mode := range mvp.Modes {
		ms.SetIdentity(mode)
	}
	if err := w.Projection.Apply(ms, aspect); err != nil {
		return fmt.Errorf("scene: frame %d: %w", ms.Frame(), err)
	}
	w.Camera.Apply(ms)

	if err := w.Ground.draw(ms, out); err != nil {
		return err
	}
	if err := w.Cube.render(ms, out); err != nil {
		return err
	}

	w.VirtualCamera.View(ms, t)
	if t > StageVirtualCameraTranslate {
		if err := ms.WithPush(mvp.Model, func() error { return w.renderVirtualCamera(ms, t, out) }); err != nil {
			return err
		}
	}
	if err := w.Axis.render(ms, out, t >= StagePaddle1Translate); err != nil {
		return err
	}
	if err := ms.WithPush(mvp.Model, func() error { return w.renderPaddle1(ms, t, out) }); err != nil {
		return err
	}
	if err := ms.WithPush(mvp.Model, func() error { return w.renderPaddle2(ms, t, out) }); err != nil {
		return err
	}

	mvp.Logger().Debug("scene: frame rendered", "frame", ms.Frame(), "time", t)
	return nil
}

func (w *World) renderVirtualCamera(ms *mvp.MatrixStack, t float64, out Renderer) error {
	w.VirtualCamera.Place(ms, t)
	if err := w.Axis.render(ms, out, false); err != nil {
		return err
	}
	return w.Cube.render(ms, out)
}

func (w *World) renderPaddle1(ms *mvp.MatrixStack, t float64, out Renderer) error {
	p := w.Paddle1
	if t > StagePaddle1Translate {
		s := Stage(t, StagePaddle1Translate)
		ms.Translate(mvp.Model, p.Position.X*s, p.Position.Y*s, 0)
	}
	if t > StagePaddle1Rotate {
		ms.RotateZ(mvp.Model, p.Rotation*Stage(t, StagePaddle1Rotate))
	}
	if t > StageSquareDepth {
		if err := p.draw(ms, out); err != nil {
			return err
		}
	}
	if t > 0 && t < StageSquareDepth {
		if err := w.Axis.render(ms, out, false); err != nil {
			return err
		}
	}

	// The square is placed relative to paddle 1.
	sq := w.Square
	if t > StageSquareDepth {
		ms.Translate(mvp.Model, 0, 0, -sq.Depth*Stage(t, StageSquareDepth))
	}
	if t > StageSquareOrbit {
		ms.RotateZ(mvp.Model, sq.Orbit*Stage(t, StageSquareOrbit))
	}
	if t > StageSquareTranslate {
		ms.Translate(mvp.Model, sq.Distance*Stage(t, StageSquareTranslate), 0, 0)
	}
	if t > StageSquareRotate {
		ms.RotateZ(mvp.Model, sq.Rotation*Stage(t, StageSquareRotate))
	}
	if t > StagePaddle2Translate {
		if err := sq.draw(ms, out); err != nil {
			return err
		}
	}
	if t > StagePaddle1Rotate && t < StagePaddle2Translate {
		return w.Axis.render(ms, out, false)
	}
	return nil
}

func (w *World) renderPaddle2(ms *mvp.MatrixStack, t float64, out Renderer) error {
	p := w.Paddle2
	if t > StagePaddle2Translate {
		s := Stage(t, StagePaddle2Translate)
		ms.Translate(mvp.Model, p.Position.X*s, p.Position.Y*s, 0)
	}
	if t > StagePaddle2Rotate {
		ms.RotateZ(mvp.Model, p.Rotation*Stage(t, StagePaddle2Rotate))
	}
	if t > StagePaddle2Draw {
		return p.draw(ms, out)
	}
	if t > StagePaddle2Translate {
		return w.Axis.render(ms, out, false)
	}
	return nil
}

// Step advances one frame: apply input, advance the clock, render.
func (w *World) Step(ms *mvp.MatrixStack, clock *Clock, in Input, aspect float64, out Renderer) error {
	if in != nil {
		ApplyInput(in, w)
	}
	clock.Advance(FrameDuration)
	return w.Render(ms, clock.Time, aspect, out)
}
