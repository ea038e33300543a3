package mvp

import (
	"fmt"
	"math"
)

// Matrix4 is a 4x4 homogeneous transformation matrix, indexed [row][col].
//
// Construction follows the row-major textbook convention, so a point is
// a column vector multiplied on the right:
//
//	| m00 m01 m02 m03 |   | x |
//	| m10 m11 m12 m13 | * | y |
//	| m20 m21 m22 m23 |   | z |
//	| m30 m31 m32 m33 |   | 1 |
//
// Translation lives in the last column. Graphics APIs that expect
// column-major storage read the matrix through ColumnMajor.
type Matrix4 [4][4]float64

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translation creates a translation matrix.
func Translation(tx, ty, tz float64) Matrix4 {
	return Matrix4{
		{1, 0, 0, tx},
		{0, 1, 0, ty},
		{0, 0, 1, tz},
		{0, 0, 0, 1},
	}
}

// Scaling creates a scaling matrix.
func Scaling(sx, sy, sz float64) Matrix4 {
	return Matrix4{
		{sx, 0, 0, 0},
		{0, sy, 0, 0},
		{0, 0, sz, 0},
		{0, 0, 0, 1},
	}
}

// RotationX creates a counter-clockwise rotation about the X axis
// (angle in radians).
func RotationX(angle float64) Matrix4 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix4{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationY creates a counter-clockwise rotation about the Y axis
// (angle in radians).
func RotationY(angle float64) Matrix4 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix4{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ creates a counter-clockwise rotation about the Z axis
// (angle in radians). Restricted to the XY plane it matches Vertex.Rotate.
func RotationZ(angle float64) Matrix4 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix4{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// PerspectiveMatrix builds a symmetric perspective projection from a
// vertical field of view in degrees, the viewport aspect ratio
// (width/height) and the distances to the near and far clip planes.
//
// The result maps the view frustum onto the OpenGL clip cube: the camera
// looks down -Z and z=-near, z=-far land on NDC depth -1 and +1.
//
// Returns an error wrapping ErrInvalidPerspective when fov is outside
// (0, 180), aspect is not positive, near is not positive or far is not
// greater than near.
func PerspectiveMatrix(fov, aspect, near, far float64) (Matrix4, error) {
	switch {
	case !isFinite(fov, aspect, near, far):
		return Matrix4{}, fmt.Errorf("%w: non-finite argument (fov=%g aspect=%g near=%g far=%g)",
			ErrInvalidPerspective, fov, aspect, near, far)
	case fov <= 0 || fov >= 180:
		return Matrix4{}, fmt.Errorf("%w: field of view %g outside (0, 180) degrees", ErrInvalidPerspective, fov)
	case aspect <= 0:
		return Matrix4{}, fmt.Errorf("%w: aspect ratio %g must be positive", ErrInvalidPerspective, aspect)
	case near <= 0:
		return Matrix4{}, fmt.Errorf("%w: near plane %g must be positive", ErrInvalidPerspective, near)
	case far <= near:
		return Matrix4{}, fmt.Errorf("%w: far plane %g must be greater than near plane %g", ErrInvalidPerspective, far, near)
	}

	top := near * math.Tan(fov*math.Pi/360.0)
	right := top * aspect
	return Matrix4{
		{near / right, 0, 0, 0},
		{0, near / top, 0, 0},
		{0, 0, -(far + near) / (far - near), -2 * far * near / (far - near)},
		{0, 0, -1, 0},
	}, nil
}

// OrthoMatrix builds an orthographic projection mapping the box
// [left,right]x[bottom,top]x[-near,-far] onto the OpenGL clip cube.
//
// Returns an error wrapping ErrInvalidOrtho when any extent is empty.
func OrthoMatrix(left, right, bottom, top, near, far float64) (Matrix4, error) {
	if !isFinite(left, right, bottom, top, near, far) {
		return Matrix4{}, fmt.Errorf("%w: non-finite argument", ErrInvalidOrtho)
	}
	if right == left || top == bottom || far == near {
		return Matrix4{}, fmt.Errorf("%w: empty extent (x %g..%g, y %g..%g, z %g..%g)",
			ErrInvalidOrtho, left, right, bottom, top, near, far)
	}
	return Matrix4{
		{2 / (right - left), 0, 0, -(right + left) / (right - left)},
		{0, 2 / (top - bottom), 0, -(top + bottom) / (top - bottom)},
		{0, 0, -2 / (far - near), -(far + near) / (far - near)},
		{0, 0, 0, 1},
	}, nil
}

// Multiply multiplies two matrices (m * other).
//
// Applied to a point, the result transforms by other first and m second.
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var r Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = m[i][0]*other[0][j] +
				m[i][1]*other[1][j] +
				m[i][2]*other[2][j] +
				m[i][3]*other[3][j]
		}
	}
	return r
}

// TransformVec4 multiplies the matrix by the homogeneous column vector v.
func (m Matrix4) TransformVec4(v [4]float64) [4]float64 {
	var r [4]float64
	for i := 0; i < 4; i++ {
		r[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2] + m[i][3]*v[3]
	}
	return r
}

// TransformPoint applies the transformation to a point (w = 1).
// When the resulting w is neither 0 nor 1 the point is divided by w.
func (m Matrix4) TransformPoint(p Vec3) Vec3 {
	r := m.TransformVec4([4]float64{p.X, p.Y, p.Z, 1})
	if r[3] != 1 && r[3] != 0 {
		return Vec3{X: r[0] / r[3], Y: r[1] / r[3], Z: r[2] / r[3]}
	}
	return Vec3{X: r[0], Y: r[1], Z: r[2]}
}

// Transpose returns the transposed matrix.
func (m Matrix4) Transpose() Matrix4 {
	var t Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			t[j][i] = m[i][j]
		}
	}
	return t
}

// ColumnMajor flattens the matrix into the column-major float32 layout
// expected by glUniformMatrix4fv and WGSL mat4x4<f32> uniforms.
func (m Matrix4) ColumnMajor() [16]float32 {
	var out [16]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col*4+row] = float32(m[row][col])
		}
	}
	return out
}

// FromColumnMajor rebuilds a matrix from a column-major float32 array.
// It is the inverse of ColumnMajor up to float32 precision.
func FromColumnMajor(a [16]float32) Matrix4 {
	var m Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			m[row][col] = float64(a[col*4+row])
		}
	}
	return m
}

// IsIdentity returns true if the matrix is exactly the identity matrix.
func (m Matrix4) IsIdentity() bool {
	return m == Identity4()
}

// ApproxEqual reports whether every entry differs by at most eps.
func (m Matrix4) ApproxEqual(other Matrix4, eps float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(m[i][j]-other[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

func isFinite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
