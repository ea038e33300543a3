package mvp

import "fmt"

// MatrixMode selects which logical transform a stack operation targets.
type MatrixMode uint8

const (
	// Model transforms object geometry from model space into world space.
	Model MatrixMode = iota
	// View re-expresses world space relative to the camera.
	View
	// Projection maps camera space into clip space.
	Projection

	numModes
)

// Modes lists every matrix mode in declaration order.
var Modes = [...]MatrixMode{Model, View, Projection}

// String returns the mode name.
func (m MatrixMode) String() string {
	switch m {
	case Model:
		return "Model"
	case View:
		return "View"
	case Projection:
		return "Projection"
	default:
		return fmt.Sprintf("MatrixMode(%d)", m)
	}
}

// Valid reports whether m is one of Model, View or Projection.
func (m MatrixMode) Valid() bool {
	return m < numModes
}
