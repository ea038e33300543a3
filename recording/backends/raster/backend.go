// Package raster provides a software backend for the recording system.
// It projects each draw call through its Model, View and Projection
// uniforms and fills the result into an *image.RGBA using
// golang.org/x/image/vector.
//
// The backend follows the GPU pipeline of the mvp shader on the CPU:
//
//	clip   = projection * view * model * (x, y, z, 1)
//	ndc    = clip.xyz / clip.w
//	screen = ((ndc.x + 1) / 2 * width, (1 - ndc.y) / 2 * height)
//
// # Limitations
//
// There is no depth buffer: calls are painted in playback order. A
// primitive with any vertex at or behind the eye plane (clip.w <= 0), or
// with normalized coordinates beyond GuardBand, is skipped rather than
// clipped.
//
// # Example
//
//	import _ "github.com/gogpu/mvp/recording/backends/raster"
//
//	backend, _ := recording.NewBackend("raster")
//	rec.Playback(backend)
//	backend.(*raster.Backend).SavePNG("frame.png")
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/gogpu/mvp"
	"github.com/gogpu/mvp/recording"
	"github.com/gogpu/mvp/scene"
	"golang.org/x/image/vector"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

// DefaultLineWidth is the width, in pixels, of Lines primitives.
const DefaultLineWidth = 1.5

// GuardBand bounds normalized device coordinates accepted by the
// rasterizer; primitives reaching further out are culled.
const GuardBand = 16.0

// minW is the smallest clip-space w accepted before the perspective divide.
const minW = 1e-6

// ErrNotStarted is returned by Draw and the output methods before Begin.
var ErrNotStarted = errors.New("raster: backend not started")

// Stats counts the primitives handled by the last playback.
type Stats struct {
	Triangles int
	Lines     int
	Culled    int
}

// Backend renders draw calls to an *image.RGBA.
type Backend struct {
	img        *image.RGBA
	rast       *vector.Rasterizer
	width      int
	height     int
	background color.RGBA
	lineWidth  float32
	stats      Stats
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
)

// NewBackend creates a raster backend with an opaque black background.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{
		background: color.RGBA{A: 0xff},
		lineWidth:  DefaultLineWidth,
	}
}

// SetBackground sets the clear color used by the next Begin.
func (b *Backend) SetBackground(c color.RGBA) {
	b.background = c
}

// SetLineWidth sets the pixel width of Lines primitives.
func (b *Backend) SetLineWidth(w float64) {
	if w > 0 {
		b.lineWidth = float32(w)
	}
}

// Begin allocates and clears the frame.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	b.width = width
	b.height = height
	b.img = image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(b.background), image.Point{}, draw.Src)
	if b.rast == nil {
		b.rast = vector.NewRasterizer(width, height)
	}
	b.stats = Stats{}
	return nil
}

// Draw projects call and paints its primitives.
func (b *Backend) Draw(call scene.DrawCall) error {
	if b.img == nil {
		return ErrNotStarted
	}
	m := call.MVP()
	src := image.NewUniform(toRGBA(call.Color))

	switch call.Primitive {
	case scene.Triangles:
		for i := 0; i+2 < len(call.Vertices); i += 3 {
			pts, ok := b.project(m, call.Vertices[i:i+3])
			if !ok {
				b.stats.Culled++
				continue
			}
			b.fillTriangle(pts, src)
			b.stats.Triangles++
		}
	case scene.Lines:
		for i := 0; i+1 < len(call.Vertices); i += 2 {
			pts, ok := b.project(m, call.Vertices[i:i+2])
			if !ok {
				b.stats.Culled++
				continue
			}
			b.fillLine(pts[0], pts[1], src)
			b.stats.Lines++
		}
	default:
		return fmt.Errorf("raster: unsupported primitive %v", call.Primitive)
	}
	return nil
}

// End logs the frame statistics.
func (b *Backend) End() error {
	if b.img == nil {
		return ErrNotStarted
	}
	mvp.Logger().Debug("raster: frame done",
		"triangles", b.stats.Triangles, "lines", b.stats.Lines, "culled", b.stats.Culled)
	return nil
}

// Width returns the frame width.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the frame height.
func (b *Backend) Height() int {
	return b.height
}

// Stats returns the primitive counts since the last Begin.
func (b *Backend) Stats() Stats {
	return b.stats
}

// Image returns the rendered frame, or nil before Begin.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// WriteTo writes the frame as PNG to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.img == nil {
		return 0, ErrNotStarted
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.img)
	return cw.n, err
}

// SaveToFile saves the frame as PNG to path.
func (b *Backend) SaveToFile(path string) error {
	return b.SavePNG(path)
}

// SavePNG saves the frame as PNG to path.
func (b *Backend) SavePNG(path string) (err error) {
	if b.img == nil {
		return ErrNotStarted
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("raster: %w", cerr)
		}
	}()
	if err := png.Encode(f, b.img); err != nil {
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	return nil
}

// project maps vertices to screen space. It fails if any vertex lies at
// or behind the eye plane or outside the guard band.
func (b *Backend) project(m mvp.Matrix4, verts []mvp.Vec3) ([3][2]float32, bool) {
	var out [3][2]float32
	for i, v := range verts {
		clip := m.TransformVec4([4]float64{v.X, v.Y, v.Z, 1})
		if clip[3] <= minW || math.IsNaN(clip[3]) {
			return out, false
		}
		x := clip[0] / clip[3]
		y := clip[1] / clip[3]
		if math.Abs(x) > GuardBand || math.Abs(y) > GuardBand {
			return out, false
		}
		out[i] = [2]float32{
			float32((x + 1) / 2 * float64(b.width)),
			float32((1 - y) / 2 * float64(b.height)),
		}
	}
	return out, true
}

func (b *Backend) fillTriangle(p [3][2]float32, src image.Image) {
	b.rast.Reset(b.width, b.height)
	b.rast.MoveTo(p[0][0], p[0][1])
	b.rast.LineTo(p[1][0], p[1][1])
	b.rast.LineTo(p[2][0], p[2][1])
	b.rast.ClosePath()
	b.rast.Draw(b.img, b.img.Bounds(), src, image.Point{})
}

// fillLine paints the segment a-b as a quad lineWidth pixels wide.
func (b *Backend) fillLine(a, c [2]float32, src image.Image) {
	dx, dy := c[0]-a[0], c[1]-a[1]
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	nx := -dy / length * b.lineWidth / 2
	ny := dx / length * b.lineWidth / 2

	b.rast.Reset(b.width, b.height)
	b.rast.MoveTo(a[0]+nx, a[1]+ny)
	b.rast.LineTo(c[0]+nx, c[1]+ny)
	b.rast.LineTo(c[0]-nx, c[1]-ny)
	b.rast.LineTo(a[0]-nx, a[1]-ny)
	b.rast.ClosePath()
	b.rast.Draw(b.img, b.img.Bounds(), src, image.Point{})
}

func toRGBA(c scene.RGB) color.RGBA {
	return color.RGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: 0xff}
}

func channel(v float64) uint8 {
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= 1:
		return 0xff
	default:
		return uint8(math.Round(v * 0xff))
	}
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
