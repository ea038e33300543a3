// Package recording captures the draw calls of a frame so they can be
// played back to different backends.
//
// A frame driver such as scene.World emits scene.DrawCall values, each
// carrying a snapshot of the Model, View and Projection uniforms taken at
// the moment of the draw. A Recorder stores those calls; the resulting
// Recording is immutable and can be replayed any number of times.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(800, 600)
//	if err := world.Render(ms, t, 800.0/600.0, rec); err != nil {
//	    return err
//	}
//	r := rec.FinishRecording()
//
//	backend, err := recording.NewBackend("raster")
//	if err != nil {
//	    return err
//	}
//	if err := r.Playback(backend); err != nil {
//	    return err
//	}
//	backend.(recording.FileBackend).SaveToFile("frame.png")
//
// # Backend Registration
//
// Backends are registered using the database/sql driver pattern. Import a
// backend package with a blank identifier to register it:
//
//	import _ "github.com/gogpu/mvp/recording/backends/raster"
//
// # Custom Backends
//
// Implement [Backend] and register a factory with [Register]:
//
//	func init() {
//	    recording.Register("wireframe", func() recording.Backend {
//	        return newWireframe()
//	    })
//	}
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. A Recording is immutable after
// FinishRecording and may be played back from multiple goroutines, each
// to its own Backend. The registry is safe for concurrent use.
package recording
