package recording

import (
	"image"
	"io"

	"github.com/gogpu/mvp/scene"
)

// Backend is the interface that all playback backends must implement.
// Backends receive draw calls with their transform uniforms already
// resolved and translate them to their output format.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
type Backend interface {
	// Begin initializes the backend for a frame of the given dimensions.
	// It must be called before Draw.
	Begin(width, height int) error

	// Draw renders one draw call. An error aborts the playback.
	Draw(call scene.DrawCall) error

	// End finalizes the frame. After End, output methods can be used.
	End() error
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered frame to w. It should only be called after End.
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered frame to path. It should only be called after End.
	SaveToFile(path string) error
}

// ImageBackend extends Backend with access to the rendered pixels.
type ImageBackend interface {
	Backend

	// Image returns the rendered frame, or nil before Begin.
	Image() *image.RGBA
}
