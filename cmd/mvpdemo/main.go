// Command mvpdemo renders a frame of the coordinate transform demo to PNG.
//
// The scene is advanced at a fixed 60 Hz with the held keys applied every
// frame, the last frame is recorded and played back to the raster backend.
//
//	mvpdemo -time 50 -output frame.png
//	mvpdemo -config scene.yaml -keys w,left -frames 120 -verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/mvp"
	"github.com/gogpu/mvp/recording"
	_ "github.com/gogpu/mvp/recording/backends/raster"
	"github.com/gogpu/mvp/scene"
	"github.com/gogpu/mvp/shader"
	"github.com/schollz/progressbar/v3"
)

// maxFrames bounds a run computed from -time.
const maxFrames = 1 << 20

type options struct {
	config   string
	output   string
	backend  string
	keys     string
	width    int
	height   int
	until    float64
	frames   int
	verbose  bool
	spirv    bool
	progress bool
}

func main() {
	var opts options
	flag.StringVar(&opts.config, "config", "", "YAML scene file (defaults to the built-in scene)")
	flag.StringVar(&opts.output, "output", "mvp.png", "output file")
	flag.StringVar(&opts.backend, "backend", "raster", "playback backend")
	flag.StringVar(&opts.keys, "keys", "", "comma separated keys held every frame, e.g. w,left")
	flag.IntVar(&opts.width, "width", 800, "image width")
	flag.IntVar(&opts.height, "height", 600, "image height")
	flag.Float64Var(&opts.until, "time", scene.StagePaddle2Draw+scene.StageDuration, "animation time of the rendered frame in seconds")
	flag.IntVar(&opts.frames, "frames", 0, "number of frames to simulate (overrides -time)")
	flag.BoolVar(&opts.verbose, "verbose", false, "log debug output to stderr")
	flag.BoolVar(&opts.spirv, "spirv", false, "compile the shader to SPIR-V and report its size")
	flag.BoolVar(&opts.progress, "progress", false, "show a progress bar while simulating frames")
	flag.Parse()

	if err := run(opts, os.Stderr); err != nil {
		log.Fatalf("mvpdemo: %v", err)
	}
}

func run(opts options, stderr io.Writer) error {
	if opts.verbose {
		mvp.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("invalid size %dx%d", opts.width, opts.height)
	}

	if opts.spirv {
		words, err := shader.CompileSPIRV()
		if err != nil {
			return fmt.Errorf("compile shader: %w", err)
		}
		log.Printf("shader compiled to %d SPIR-V words (%d bytes)", len(words), len(words)*4)
	}

	cfg := scene.DefaultConfig()
	if opts.config != "" {
		var err error
		if cfg, err = scene.LoadConfig(opts.config); err != nil {
			return err
		}
	}
	keys, err := scene.ParseKeySet(opts.keys)
	if err != nil {
		return err
	}

	world := cfg.World()
	clock := cfg.Clock()
	ms := mvp.NewMatrixStack()
	aspect := float64(opts.width) / float64(opts.height)

	n := opts.frames
	if n <= 0 {
		n = framesUntil(clock, opts.until)
	}
	if err := simulate(world, ms, clock, keys, aspect, n-1, opts.progress, stderr); err != nil {
		return err
	}
	rec := recording.NewRecorder(opts.width, opts.height)
	if err := world.Step(ms, clock, keys, aspect, rec); err != nil {
		return err
	}

	backend, err := recording.NewBackend(opts.backend)
	if err != nil {
		return err
	}
	out, ok := backend.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("backend %q cannot write files", opts.backend)
	}
	if err := rec.FinishRecording().Playback(out); err != nil {
		return err
	}
	if err := out.SaveToFile(opts.output); err != nil {
		return err
	}

	log.Printf("frame %d at t=%.2fs saved to %s (%dx%d, %d draw calls)",
		ms.Frame(), clock.Time, opts.output, opts.width, opts.height, rec.Len())
	return nil
}

// simulate steps n frames without drawing anything.
func simulate(world *scene.World, ms *mvp.MatrixStack, clock *scene.Clock, keys scene.Input,
	aspect float64, n int, progress bool, stderr io.Writer) error {
	var bar *progressbar.ProgressBar
	if progress && n > 0 {
		bar = progressbar.NewOptions(n,
			progressbar.OptionSetWriter(stderr),
			progressbar.OptionSetDescription("simulating"),
		)
		defer bar.Close()
	}
	for range n {
		if err := world.Step(ms, clock, keys, aspect, scene.Discard); err != nil {
			return err
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	return nil
}

// framesUntil returns how many 60 Hz frames it takes clock to reach t.
// At least one frame is always rendered.
func framesUntil(clock *scene.Clock, t float64) int {
	if clock.Paused || clock.Time >= t {
		return 1
	}
	step := scene.FrameDuration * clock.Multiplier
	n := math.Ceil((t-clock.Time)/step - 1e-9)
	if n < 1 {
		return 1
	}
	if n > maxFrames {
		return maxFrames
	}
	return int(n)
}
