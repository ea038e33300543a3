// Package mvp provides the transform core for model/view/projection demos.
//
// # Overview
//
// mvp has two layers that agree on composition order:
//
//   - Vertex: an immutable 2D point with Translate, Scale and Rotate,
//     composed by the caller in explicit left-to-right chains. This is the
//     hand-rolled math of the fixed-function demos.
//   - MatrixStack: one stack of 4x4 matrices per MatrixMode (Model, View,
//     Projection) with scoped Push/Pop, perspective construction and a
//     column-major read boundary for shader uniforms.
//
// # Quick Start
//
//	ms := mvp.NewMatrixStack()
//
//	// Once per frame (ms = matrix stack convention)
//	ms.BeginFrame()
//	for _, mode := range mvp.Modes {
//	    ms.SetIdentity(mode)
//	}
//	if err := ms.Perspective(45, aspect, 0.1, 10000); err != nil {
//	    return err
//	}
//	ms.Translate(mvp.View, 0, 0, -250)
//
//	// Per object
//	func() {
//	    defer ms.Push(mvp.Model).Pop()
//	    ms.Translate(mvp.Model, paddle.X, paddle.Y, 0)
//	    ms.RotateZ(mvp.Model, paddle.Rotation)
//	    upload(ms.Uniform(mvp.Model), ms.Uniform(mvp.View), ms.Uniform(mvp.Projection))
//	}()
//
// # Composition Order
//
// Every stack operation post-multiplies: top = top * T. The call made last
// is applied to the geometry first, so reading the calls bottom up follows
// a vertex from model space out to world space. The vertex chain
//
//	v.Rotate(theta).Translate(tx, ty).Scale(s, s)
//
// equals the stack sequence Scale, Translate, RotateZ applied to v.
//
// # Errors
//
// Invalid projection parameters are returned as errors wrapping
// ErrInvalidPerspective or ErrInvalidOrtho. Misuse of the stack (popping
// depth 1, releasing an unbalanced Scope, reading a mode that was not
// initialized this frame) panics with an error wrapping the matching
// sentinel.
//
// # Coordinate System
//
// Right-handed, OpenGL conventions:
//   - The camera looks down -Z
//   - Angles in radians, positive is counter-clockwise
//   - Clip space depth runs from -1 (near) to +1 (far)
package mvp

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
