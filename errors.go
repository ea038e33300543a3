package mvp

import "errors"

// Package errors.
//
// ErrInvalidPerspective and ErrInvalidOrtho are returned to the caller.
// The remaining errors describe misuse of a MatrixStack; they are raised
// with panic so that a broken push/pop nesting surfaces immediately.
// Recover the panic value and test it with errors.Is to identify them.
var (
	// ErrInvalidPerspective is returned when a perspective projection is
	// requested with an out-of-range field of view, aspect ratio or clip
	// distances.
	ErrInvalidPerspective = errors.New("mvp: invalid perspective parameters")

	// ErrInvalidOrtho is returned when an orthographic projection has an
	// empty extent on any axis.
	ErrInvalidOrtho = errors.New("mvp: invalid orthographic parameters")

	// ErrStackUnderflow is raised when Pop is called on a stack of depth 1.
	ErrStackUnderflow = errors.New("mvp: matrix stack underflow")

	// ErrUnbalanced is raised when a Scope is released at a different
	// depth than the one its push created.
	ErrUnbalanced = errors.New("mvp: unbalanced push/pop")

	// ErrUninitialized is raised when a mode is read before SetIdentity
	// was called for it in the current frame.
	ErrUninitialized = errors.New("mvp: matrix mode not initialized this frame")

	// ErrInvalidMode is raised for a MatrixMode outside Model, View and
	// Projection.
	ErrInvalidMode = errors.New("mvp: invalid matrix mode")
)
