package recording

import (
	"fmt"
	"slices"

	"github.com/gogpu/mvp"
	"github.com/gogpu/mvp/scene"
)

// Recorder captures draw calls. It implements scene.Renderer, so it can
// be handed straight to World.Render. Use FinishRecording to obtain an
// immutable Recording.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	world.Render(ms, t, 4.0/3.0, rec)
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	calls         []scene.DrawCall
}

var _ scene.Renderer = (*Recorder)(nil)

// NewRecorder creates a Recorder for a frame of the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:  width,
		height: height,
		calls:  make([]scene.DrawCall, 0, 16),
	}
}

// Draw records call. The vertex slice is copied, so the caller may reuse
// its geometry.
func (r *Recorder) Draw(call scene.DrawCall) error {
	call.Vertices = slices.Clone(call.Vertices)
	r.calls = append(r.calls, call)
	return nil
}

// Len returns the number of calls recorded so far.
func (r *Recorder) Len() int {
	return len(r.calls)
}

// Reset drops every recorded call, keeping the dimensions.
func (r *Recorder) Reset() {
	r.calls = r.calls[:0]
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// FinishRecording returns an immutable Recording of every call so far.
// The Recorder may keep recording afterwards; the Recording does not see
// later calls.
func (r *Recorder) FinishRecording() *Recording {
	rec := &Recording{
		width:  r.width,
		height: r.height,
		calls:  slices.Clone(r.calls),
	}
	mvp.Logger().Debug("recording: finished", "calls", len(rec.calls), "width", r.width, "height", r.height)
	return rec
}

// Recording is an immutable list of draw calls.
// It can be replayed to any Backend implementation.
type Recording struct {
	width, height int
	calls         []scene.DrawCall
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Calls returns a copy of the recorded calls.
func (r *Recording) Calls() []scene.DrawCall {
	return slices.Clone(r.calls)
}

// Playback replays the recording to backend: Begin, every call in order,
// then End. The first error stops the playback.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return fmt.Errorf("recording: begin: %w", err)
	}
	for i, call := range r.calls {
		if err := backend.Draw(call); err != nil {
			return fmt.Errorf("recording: call %d (%s): %w", i, call.Name, err)
		}
	}
	if err := backend.End(); err != nil {
		return fmt.Errorf("recording: end: %w", err)
	}
	return nil
}
