package shader

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/mvp"
)

func TestSourceContainsExpectedContent(t *testing.T) {
	source := Source()
	required := []string{
		"@vertex",
		"@fragment",
		VertexEntryPoint,
		FragmentEntryPoint,
		"struct Transforms",
		"mat4x4<f32>",
		"var<uniform> transforms",
		"transforms.projection * transforms.view",
	}
	for _, req := range required {
		if !strings.Contains(source, req) {
			t.Errorf("mvp shader missing required element: %q", req)
		}
	}
}

func TestCompileSPIRV(t *testing.T) {
	words, err := CompileSPIRV()
	if err != nil {
		if strings.Contains(err.Error(), "not yet implemented") || strings.Contains(err.Error(), "not supported") {
			t.Skipf("Skipping: naga feature not yet implemented: %v", err)
		}
		t.Fatalf("CompileSPIRV() error = %v", err)
	}
	if len(words) == 0 {
		t.Fatal("SPIR-V output is empty")
	}
	if words[0] != 0x07230203 {
		t.Errorf("invalid SPIR-V magic: 0x%08X, want 0x07230203", words[0])
	}
}

func TestBindGroupLayoutEntries(t *testing.T) {
	entries := BindGroupLayoutEntries()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Binding != 0 {
		t.Errorf("Binding = %d, want 0", e.Binding)
	}
	if e.Visibility != gputypes.ShaderStageVertex {
		t.Errorf("Visibility = %v, want vertex", e.Visibility)
	}
	if e.Buffer == nil || e.Buffer.Type != gputypes.BufferBindingTypeUniform {
		t.Errorf("Buffer = %+v, want uniform binding", e.Buffer)
	}
}

func TestVertexBufferLayouts(t *testing.T) {
	layouts := VertexBufferLayouts()
	if len(layouts) != 1 {
		t.Fatalf("got %d layouts, want 1", len(layouts))
	}
	l := layouts[0]
	if l.ArrayStride != VertexStride {
		t.Errorf("ArrayStride = %d, want %d", l.ArrayStride, VertexStride)
	}
	if len(l.Attributes) != 2 {
		t.Fatalf("got %d attributes, want 2", len(l.Attributes))
	}
	for i, a := range l.Attributes {
		if a.Format != gputypes.VertexFormatFloat32x3 {
			t.Errorf("attribute %d format = %v, want float32x3", i, a.Format)
		}
		if int(a.ShaderLocation) != i {
			t.Errorf("attribute %d location = %d", i, a.ShaderLocation)
		}
	}
	if l.Attributes[1].Offset != 12 {
		t.Errorf("color offset = %d, want 12", l.Attributes[1].Offset)
	}
}

func TestUniformBufferUsage(t *testing.T) {
	u := UniformBufferUsage()
	if u&gputypes.BufferUsageUniform == 0 {
		t.Error("usage lacks Uniform")
	}
	if u&gputypes.BufferUsageCopyDst == 0 {
		t.Error("usage lacks CopyDst")
	}
}

func readFloat(t *testing.T, buf []byte, index int) float32 {
	t.Helper()
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[index*4:]))
}

func TestPackUniforms(t *testing.T) {
	model := mvp.Translation(10, 20, 30).ColumnMajor()
	view := mvp.Scaling(2, 2, 2).ColumnMajor()
	projection := mvp.Identity4().ColumnMajor()

	buf := PackUniforms(model, view, projection)
	if len(buf) != UniformSize {
		t.Fatalf("len = %d, want %d", len(buf), UniformSize)
	}

	// Model translation sits in the fourth column.
	for i, want := range []float32{10, 20, 30, 1} {
		if got := readFloat(t, buf, 12+i); got != want {
			t.Errorf("model[%d] = %v, want %v", 12+i, got, want)
		}
	}
	// View starts right after model.
	if got := readFloat(t, buf, 16); got != 2 {
		t.Errorf("view[0] = %v, want 2", got)
	}
	// Projection identity diagonal.
	for _, i := range []int{0, 5, 10, 15} {
		if got := readFloat(t, buf, 32+i); got != 1 {
			t.Errorf("projection[%d] = %v, want 1", i, got)
		}
	}
}

func TestPackStack(t *testing.T) {
	ms := mvp.NewMatrixStack()
	ms.BeginFrame()
	for _, mode := range mvp.Modes {
		ms.SetIdentity(mode)
	}
	ms.Translate(mvp.Model, 5, 0, 0)

	got := PackStack(ms)
	want := PackUniforms(ms.Uniform(mvp.Model), ms.Uniform(mvp.View), ms.Uniform(mvp.Projection))
	if string(got) != string(want) {
		t.Error("PackStack differs from PackUniforms of the current matrices")
	}
	if v := readFloat(t, got, 12); v != 5 {
		t.Errorf("model tx = %v, want 5", v)
	}
}

func TestPackVertices(t *testing.T) {
	buf := PackVertices([]mvp.Vec3{{X: 1, Y: 2, Z: 3}, {X: -1, Y: -2, Z: -3}}, 0.5, 0.25, 1)
	if len(buf) != 2*VertexStride {
		t.Fatalf("len = %d, want %d", len(buf), 2*VertexStride)
	}
	want := []float32{1, 2, 3, 0.5, 0.25, 1, -1, -2, -3, 0.5, 0.25, 1}
	for i, w := range want {
		if got := readFloat(t, buf, i); got != w {
			t.Errorf("float %d = %v, want %v", i, got, w)
		}
	}
}
