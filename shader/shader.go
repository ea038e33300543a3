// Package shader holds the GPU side of the model/view/projection pipeline:
// the WGSL program that consumes MatrixStack uniforms, its compilation to
// SPIR-V, and the buffer layouts a renderer binds it with.
//
// The package never creates GPU resources. A renderer passes the layouts
// returned here to its device and uploads PackUniforms output once per
// drawable, immediately before the draw call.
package shader

import (
	_ "embed"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/mvp"
	"github.com/gogpu/naga"
)

//go:embed mvp.wgsl
var mvpShaderWGSL string

// Entry point names in the WGSL source.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// Buffer layout constants.
const (
	// MatrixSize is the byte size of one column-major mat4x4<f32>.
	MatrixSize = 16 * 4

	// UniformSize is the byte size of the Transforms uniform struct.
	UniformSize = 3 * MatrixSize

	// VertexStride is the byte size of one interleaved vertex:
	// position (float32x3) followed by color (float32x3).
	VertexStride = 6 * 4
)

// ErrInvalidSPIRV is returned when the compiler output is not a whole
// number of 32-bit words.
var ErrInvalidSPIRV = errors.New("shader: SPIR-V output is not word aligned")

// Source returns the WGSL source of the MVP pipeline.
func Source() string {
	return mvpShaderWGSL
}

// CompileSPIRV compiles the WGSL source to SPIR-V words.
func CompileSPIRV() ([]uint32, error) {
	spirvBytes, err := naga.Compile(mvpShaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("shader: failed to compile mvp.wgsl: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSPIRV, len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	mvp.Logger().Debug("shader: compiled mvp.wgsl", "words", len(words))
	return words, nil
}

// BindGroupLayoutEntries describes group 0: the Transforms uniform buffer,
// read by the vertex stage only.
func BindGroupLayoutEntries() []gputypes.BindGroupLayoutEntry {
	return []gputypes.BindGroupLayoutEntry{
		{
			Binding:    0,
			Visibility: gputypes.ShaderStageVertex,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
		},
	}
}

// VertexBufferLayouts describes the interleaved position/color vertex
// buffer consumed by vs_main.
func VertexBufferLayouts() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{
					Format:         gputypes.VertexFormatFloat32x3,
					Offset:         0,
					ShaderLocation: 0,
				},
				{
					Format:         gputypes.VertexFormatFloat32x3,
					Offset:         3 * 4,
					ShaderLocation: 1,
				},
			},
		},
	}
}

// UniformBufferUsage returns the usage flags for the Transforms buffer.
func UniformBufferUsage() gputypes.BufferUsage {
	return gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst
}

// PackUniforms lays out model, view and projection back to back as
// little-endian float32, matching the Transforms struct.
func PackUniforms(model, view, projection [16]float32) []byte {
	buf := make([]byte, UniformSize)
	for i, m := range [3][16]float32{model, view, projection} {
		putMatrix(buf[i*MatrixSize:], m)
	}
	return buf
}

// PackStack packs the current Model, View and Projection matrices of ms.
// It reads through MatrixStack.Uniform, so every mode must be initialized
// for the current frame.
func PackStack(ms *mvp.MatrixStack) []byte {
	return PackUniforms(ms.Uniform(mvp.Model), ms.Uniform(mvp.View), ms.Uniform(mvp.Projection))
}

// PackVertices interleaves positions with a single color into the layout
// described by VertexBufferLayouts.
func PackVertices(positions []mvp.Vec3, r, g, b float32) []byte {
	buf := make([]byte, len(positions)*VertexStride)
	for i, p := range positions {
		off := i * VertexStride
		for j, v := range [6]float32{float32(p.X), float32(p.Y), float32(p.Z), r, g, b} {
			binary.LittleEndian.PutUint32(buf[off+j*4:], math.Float32bits(v))
		}
	}
	return buf
}

func putMatrix(dst []byte, m [16]float32) {
	for i, v := range m {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(v))
	}
}
