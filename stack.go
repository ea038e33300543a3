package mvp

import (
	"fmt"
	"log/slog"
)

// MatrixStack holds one stack of Matrix4 per MatrixMode. The top of each
// stack is the current matrix for that mode.
//
// A MatrixStack is an explicit context object owned by the rendering pass.
// The frame driver calls BeginFrame once per frame, initializes every mode
// with SetIdentity (or a projection), and then renderables mutate it
// through scoped blocks:
//
//	ms.BeginFrame()
//	for _, mode := range mvp.Modes {
//	    ms.SetIdentity(mode)
//	}
//	if err := ms.Perspective(45, aspect, 0.1, 10000); err != nil {
//	    return err
//	}
//
//	func() {
//	    defer ms.Push(mvp.Model).Pop()
//	    ms.Translate(mvp.Model, 10, 0, 0)
//	    ms.RotateZ(mvp.Model, math.Pi/2)
//	    draw(ms.Uniform(mvp.Model), ms.Uniform(mvp.View), ms.Uniform(mvp.Projection))
//	}()
//
// Every transform composes by post-multiplication, top = top * T, so the
// most recent call is the one applied first to the geometry drawn next.
//
// MatrixStack is not safe for concurrent use. A parallel traversal must
// work on its own copy obtained from Clone.
type MatrixStack struct {
	stacks      [numModes][]Matrix4
	initialized [numModes]bool
	frame       uint64
	logger      *slog.Logger
}

// NewMatrixStack creates a stack where every mode holds a single identity
// matrix. No mode counts as initialized until SetIdentity is called.
func NewMatrixStack(opts ...StackOption) *MatrixStack {
	o := defaultStackOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ms := &MatrixStack{logger: o.logger}
	for i := range ms.stacks {
		ms.stacks[i] = make([]Matrix4, 1, o.capacity)
		ms.stacks[i][0] = Identity4()
	}
	return ms
}

func (ms *MatrixStack) log() *slog.Logger {
	if ms.logger != nil {
		return ms.logger
	}
	return Logger()
}

// BeginFrame resets every mode to depth 1 holding identity and marks it
// uninitialized. A stack left deeper than 1 by the previous frame is
// reported at warn level.
func (ms *MatrixStack) BeginFrame() {
	ms.frame++
	for i := range ms.stacks {
		if d := len(ms.stacks[i]); d != 1 {
			ms.log().Warn("mvp: unbalanced matrix stack at frame boundary",
				"mode", MatrixMode(i), "depth", d, "frame", ms.frame-1)
		}
		ms.stacks[i] = ms.stacks[i][:1]
		ms.stacks[i][0] = Identity4()
		ms.initialized[i] = false
	}
	ms.log().Debug("mvp: frame begin", "frame", ms.frame)
}

// Frame returns the number of BeginFrame calls so far.
func (ms *MatrixStack) Frame() uint64 {
	return ms.frame
}

// top returns a pointer to the current matrix of mode.
func (ms *MatrixStack) top(mode MatrixMode) *Matrix4 {
	mustValid(mode)
	s := ms.stacks[mode]
	return &s[len(s)-1]
}

// SetIdentity replaces the current matrix of mode with identity and marks
// the mode initialized for this frame. Matrices below the top are kept.
func (ms *MatrixStack) SetIdentity(mode MatrixMode) {
	*ms.top(mode) = Identity4()
	ms.initialized[mode] = true
}

// LoadMatrix replaces the current matrix of mode with m and marks the
// mode initialized for this frame.
func (ms *MatrixStack) LoadMatrix(mode MatrixMode, m Matrix4) {
	*ms.top(mode) = m
	ms.initialized[mode] = true
}

// MultMatrix post-multiplies the current matrix of mode by m.
func (ms *MatrixStack) MultMatrix(mode MatrixMode, m Matrix4) {
	t := ms.top(mode)
	*t = t.Multiply(m)
}

// Translate post-multiplies the current matrix of mode by a translation.
func (ms *MatrixStack) Translate(mode MatrixMode, tx, ty, tz float64) {
	ms.MultMatrix(mode, Translation(tx, ty, tz))
}

// Scale post-multiplies the current matrix of mode by a scaling.
func (ms *MatrixStack) Scale(mode MatrixMode, sx, sy, sz float64) {
	ms.MultMatrix(mode, Scaling(sx, sy, sz))
}

// RotateX post-multiplies the current matrix of mode by a rotation about
// the X axis (angle in radians).
func (ms *MatrixStack) RotateX(mode MatrixMode, angle float64) {
	ms.MultMatrix(mode, RotationX(angle))
}

// RotateY post-multiplies the current matrix of mode by a rotation about
// the Y axis (angle in radians).
func (ms *MatrixStack) RotateY(mode MatrixMode, angle float64) {
	ms.MultMatrix(mode, RotationY(angle))
}

// RotateZ post-multiplies the current matrix of mode by a rotation about
// the Z axis (angle in radians).
func (ms *MatrixStack) RotateZ(mode MatrixMode, angle float64) {
	ms.MultMatrix(mode, RotationZ(angle))
}

// Perspective replaces the current Projection matrix with a perspective
// projection (see PerspectiveMatrix) and marks Projection initialized.
// On error the stack is left unchanged.
func (ms *MatrixStack) Perspective(fov, aspect, near, far float64) error {
	p, err := PerspectiveMatrix(fov, aspect, near, far)
	if err != nil {
		return err
	}
	ms.LoadMatrix(Projection, p)
	return nil
}

// Ortho replaces the current Projection matrix with an orthographic
// projection (see OrthoMatrix) and marks Projection initialized.
// On error the stack is left unchanged.
func (ms *MatrixStack) Ortho(left, right, bottom, top, near, far float64) error {
	o, err := OrthoMatrix(left, right, bottom, top, near, far)
	if err != nil {
		return err
	}
	ms.LoadMatrix(Projection, o)
	return nil
}

// Push duplicates the current matrix of mode onto its stack and returns a
// Scope whose Pop removes it again. The usual form is
//
//	defer ms.Push(mvp.Model).Pop()
//
// which restores the matrix on every exit path, panics included.
func (ms *MatrixStack) Push(mode MatrixMode) *Scope {
	t := *ms.top(mode)
	ms.stacks[mode] = append(ms.stacks[mode], t)
	return &Scope{ms: ms, mode: mode, depth: len(ms.stacks[mode])}
}

// Pop removes the current matrix of mode. Popping a stack of depth 1
// panics with an error wrapping ErrStackUnderflow.
func (ms *MatrixStack) Pop(mode MatrixMode) {
	mustValid(mode)
	n := len(ms.stacks[mode])
	if n <= 1 {
		panic(fmt.Errorf("%w: Pop(%s) at depth %d", ErrStackUnderflow, mode, n))
	}
	ms.stacks[mode] = ms.stacks[mode][:n-1]
}

// WithPush runs fn between a Push and its matching Pop on mode. The pop
// happens whether fn returns normally, returns an error or panics.
func (ms *MatrixStack) WithPush(mode MatrixMode, fn func() error) error {
	defer ms.Push(mode).Pop()
	return fn()
}

// Depth returns the number of matrices on the stack of mode.
func (ms *MatrixStack) Depth(mode MatrixMode) int {
	mustValid(mode)
	return len(ms.stacks[mode])
}

// Initialized reports whether mode was initialized in the current frame.
func (ms *MatrixStack) Initialized(mode MatrixMode) bool {
	mustValid(mode)
	return ms.initialized[mode]
}

// Current returns a copy of the current matrix of mode in row-major
// construction order. Reading a mode that was not initialized this frame
// panics with an error wrapping ErrUninitialized.
func (ms *MatrixStack) Current(mode MatrixMode) Matrix4 {
	t := *ms.top(mode)
	if !ms.initialized[mode] {
		panic(fmt.Errorf("%w: %s (frame %d)", ErrUninitialized, mode, ms.frame))
	}
	return t
}

// Uniform returns the current matrix of mode in the column-major float32
// layout uploaded as a shader uniform. This is the only place the
// row-major to column-major conversion happens.
func (ms *MatrixStack) Uniform(mode MatrixMode) [16]float32 {
	return ms.Current(mode).ColumnMajor()
}

// ModelView returns View * Model.
func (ms *MatrixStack) ModelView() Matrix4 {
	return ms.Current(View).Multiply(ms.Current(Model))
}

// ModelViewProjection returns Projection * View * Model.
func (ms *MatrixStack) ModelViewProjection() Matrix4 {
	return ms.Current(Projection).Multiply(ms.ModelView())
}

// Clone returns an independent copy of the stack, including depths and
// initialization state. Mutating the copy never affects ms.
func (ms *MatrixStack) Clone() *MatrixStack {
	c := &MatrixStack{
		initialized: ms.initialized,
		frame:       ms.frame,
		logger:      ms.logger,
	}
	for i := range ms.stacks {
		c.stacks[i] = make([]Matrix4, len(ms.stacks[i]), cap(ms.stacks[i]))
		copy(c.stacks[i], ms.stacks[i])
	}
	return c
}

func mustValid(mode MatrixMode) {
	if !mode.Valid() {
		panic(fmt.Errorf("%w: %s", ErrInvalidMode, mode))
	}
}

// Scope is the guard returned by MatrixStack.Push. Its Pop removes the
// matrix the push added.
type Scope struct {
	ms       *MatrixStack
	mode     MatrixMode
	depth    int
	released bool
}

// Mode returns the mode the scope was pushed on.
func (s *Scope) Mode() MatrixMode {
	return s.mode
}

// Pop releases the scope. It panics with an error wrapping ErrUnbalanced
// if the stack is not at the depth the push created, which means a nested
// push was never popped or a nested pop removed this scope's matrix.
// Calling Pop again after a successful release is a no-op.
func (s *Scope) Pop() {
	if s.released {
		return
	}
	if d := s.ms.Depth(s.mode); d != s.depth {
		panic(fmt.Errorf("%w: %s scope pushed at depth %d released at depth %d",
			ErrUnbalanced, s.mode, s.depth, d))
	}
	s.ms.Pop(s.mode)
	s.released = true
}
