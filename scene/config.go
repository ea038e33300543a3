package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/gogpu/mvp"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a scene configuration fails validation.
var ErrInvalidConfig = errors.New("scene: invalid config")

// maxConfigSize bounds the size of a scene file.
const maxConfigSize = 1 << 20

// Config is the on-disk description of a World. Angles are in degrees.
type Config struct {
	Camera     CameraConfig     `yaml:"camera"`
	Projection ProjectionConfig `yaml:"projection"`
	Paddle1    PaddleConfig     `yaml:"paddle1"`
	Paddle2    PaddleConfig     `yaml:"paddle2"`
	Square     SquareConfig     `yaml:"square"`
	Ground     GroundConfig     `yaml:"ground"`
	Cube       CubeConfig       `yaml:"ndc_cube"`
	Animation  AnimationConfig  `yaml:"animation"`

	VirtualCamera VirtualCameraConfig `yaml:"virtual_camera"`

	EnlargedAxis bool `yaml:"enlarged_axis"`
}

// CameraConfig places the orbiting camera.
type CameraConfig struct {
	Radius float64 `yaml:"radius"`
	RotX   float64 `yaml:"rot_x"`
	RotY   float64 `yaml:"rot_y"`
}

// ProjectionConfig holds the perspective parameters.
type ProjectionConfig struct {
	FOV  float64 `yaml:"fov"`
	Near float64 `yaml:"near"`
	Far  float64 `yaml:"far"`
}

// PaddleConfig places one paddle.
type PaddleConfig struct {
	Color    [3]float64 `yaml:"color,flow"`
	Position [2]float64 `yaml:"position,flow"`
	Rotation float64    `yaml:"rotation"`
}

// SquareConfig places the square relative to paddle 1.
type SquareConfig struct {
	Color    [3]float64 `yaml:"color,flow"`
	Orbit    float64    `yaml:"orbit"`
	Rotation float64    `yaml:"rotation"`
}

// GroundConfig shapes the ground grid.
type GroundConfig struct {
	Extent  float64 `yaml:"extent"`
	Spacing float64 `yaml:"spacing"`
	Height  float64 `yaml:"height"`
}

// CubeConfig sizes the NDC cube drawn at the origin and at the virtual
// camera.
type CubeConfig struct {
	Scale float64 `yaml:"scale"`
}

// VirtualCameraConfig places the camera shown during the view stages.
type VirtualCameraConfig struct {
	Position [3]float64 `yaml:"position,flow"`
	RotX     float64    `yaml:"rot_x"`
	RotY     float64    `yaml:"rot_y"`
}

// AnimationConfig sets the initial clock state.
type AnimationConfig struct {
	Multiplier float64 `yaml:"multiplier"`
	Paused     bool    `yaml:"paused"`
	Start      float64 `yaml:"start"`
}

// DefaultConfig returns the scene of the coordinate visualization demo.
func DefaultConfig() Config {
	return Config{
		Camera:     CameraConfig{Radius: 250, RotX: 35.264, RotY: 45},
		Projection: ProjectionConfig{FOV: 45, Near: 0.1, Far: 10000},
		Paddle1: PaddleConfig{
			Color:    [3]float64{0.578123, 0, 1},
			Position: [2]float64{-90, 10},
			Rotation: 45,
		},
		Paddle2: PaddleConfig{
			Color:    [3]float64{1, 0, 0},
			Position: [2]float64{90, 5},
			Rotation: -20,
		},
		Square:       SquareConfig{Color: [3]float64{0, 0, 1}, Orbit: 30, Rotation: 90},
		Ground:       GroundConfig{Extent: 200, Spacing: 20, Height: -50},
		Cube:         CubeConfig{Scale: 5},
		Animation:    AnimationConfig{Multiplier: 1},
		EnlargedAxis: true,
		VirtualCamera: VirtualCameraConfig{
			Position: [3]float64{-40, 0, 80},
			RotX:     15,
			RotY:     -30,
		},
	}
}

// ParseConfig decodes YAML on top of DefaultConfig, so a file only needs
// the fields it changes. Unknown fields are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("scene: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML scene file.
func LoadConfig(path string) (Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("scene: load config: %w", err)
	}
	if info.Size() > maxConfigSize {
		return Config{}, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrInvalidConfig, path, info.Size(), maxConfigSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("scene: load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	mvp.Logger().Info("scene: loaded config", "path", path, "size", info.Size())
	return cfg, nil
}

// Validate checks ranges the demo relies on. Every number must be finite.
// The projection is checked with an aspect ratio of 1; the real aspect
// comes from the viewport.
func (c Config) Validate() error {
	fields := []struct {
		name string
		vs   []float64
	}{
		{"camera", []float64{c.Camera.Radius, c.Camera.RotX, c.Camera.RotY}},
		{"paddle1", append(c.Paddle1.Color[:], c.Paddle1.Position[0], c.Paddle1.Position[1], c.Paddle1.Rotation)},
		{"paddle2", append(c.Paddle2.Color[:], c.Paddle2.Position[0], c.Paddle2.Position[1], c.Paddle2.Rotation)},
		{"square", append(c.Square.Color[:], c.Square.Orbit, c.Square.Rotation)},
		{"ground", []float64{c.Ground.Extent, c.Ground.Spacing, c.Ground.Height}},
		{"ndc_cube", []float64{c.Cube.Scale}},
		{"animation", []float64{c.Animation.Multiplier, c.Animation.Start}},
		{"virtual_camera", append(c.VirtualCamera.Position[:], c.VirtualCamera.RotX, c.VirtualCamera.RotY)},
	}
	for _, f := range fields {
		if !finite(f.vs...) {
			return fmt.Errorf("%w: %s has a non-finite value %v", ErrInvalidConfig, f.name, f.vs)
		}
	}

	if c.Camera.Radius < MinCameraRadius || c.Camera.Radius > MaxCameraRadius {
		return fmt.Errorf("%w: camera radius %g outside [%g, %g]",
			ErrInvalidConfig, c.Camera.Radius, MinCameraRadius, MaxCameraRadius)
	}
	if _, err := mvp.PerspectiveMatrix(c.Projection.FOV, 1, c.Projection.Near, c.Projection.Far); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Animation.Multiplier < MinMultiplier || c.Animation.Multiplier > MaxMultiplier {
		return fmt.Errorf("%w: animation multiplier %g outside [%g, %g]",
			ErrInvalidConfig, c.Animation.Multiplier, MinMultiplier, MaxMultiplier)
	}
	if c.Animation.Start < 0 {
		return fmt.Errorf("%w: animation start %g is negative", ErrInvalidConfig, c.Animation.Start)
	}
	if GroundLines(c.Ground.Extent, c.Ground.Spacing) == 0 {
		return fmt.Errorf("%w: ground extent %g spacing %g (at most %d lines)",
			ErrInvalidConfig, c.Ground.Extent, c.Ground.Spacing, MaxGroundLines)
	}
	if c.Cube.Scale <= 0 {
		return fmt.Errorf("%w: ndc_cube scale %g must be positive", ErrInvalidConfig, c.Cube.Scale)
	}
	colors := map[string][3]float64{
		"paddle1": c.Paddle1.Color,
		"paddle2": c.Paddle2.Color,
		"square":  c.Square.Color,
	}
	for name, col := range colors {
		for _, v := range col {
			if v < 0 || v > 1 {
				return fmt.Errorf("%w: %s color %v outside [0, 1]", ErrInvalidConfig, name, col)
			}
		}
	}
	return nil
}

// World builds the scene described by c.
func (c Config) World() *World {
	return &World{
		Paddle1: NewPaddle("paddle1", rgb(c.Paddle1.Color),
			mvp.V(c.Paddle1.Position[0], c.Paddle1.Position[1]), radians(c.Paddle1.Rotation)),
		Paddle2: NewPaddle("paddle2", rgb(c.Paddle2.Color),
			mvp.V(c.Paddle2.Position[0], c.Paddle2.Position[1]), radians(c.Paddle2.Rotation)),
		Square: NewSquare(rgb(c.Square.Color), radians(c.Square.Orbit), radians(c.Square.Rotation)),
		Ground: NewRenderable("ground", Lines,
			GroundGeometry(c.Ground.Extent, c.Ground.Spacing, c.Ground.Height), RGB{R: 0.1, G: 0.1, B: 0.1}),
		Cube: NewNDCCube(c.Cube.Scale),
		Axis: NewAxis(c.EnlargedAxis),
		Camera: Camera{
			Radius: c.Camera.Radius,
			RotX:   radians(c.Camera.RotX),
			RotY:   radians(c.Camera.RotY),
		},
		Projection: Projection{FOV: c.Projection.FOV, Near: c.Projection.Near, Far: c.Projection.Far},
		VirtualCamera: VirtualCamera{
			Position: mvp.Vec3{X: c.VirtualCamera.Position[0], Y: c.VirtualCamera.Position[1], Z: c.VirtualCamera.Position[2]},
			RotX:     radians(c.VirtualCamera.RotX),
			RotY:     radians(c.VirtualCamera.RotY),
		},
	}
}

// Clock returns a clock in the configured initial state.
func (c Config) Clock() *Clock {
	return &Clock{
		Time:       c.Animation.Start,
		Multiplier: c.Animation.Multiplier,
		Paused:     c.Animation.Paused,
	}
}

func rgb(c [3]float64) RGB {
	return RGB{R: c[0], G: c[1], B: c[2]}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
