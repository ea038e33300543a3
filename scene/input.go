package scene

import (
	"fmt"
	"math"
	"strings"
)

// Key identifies a keyboard key the demo reacts to.
type Key uint8

const (
	KeyW Key = iota
	KeyS
	KeyA
	KeyD
	KeyI
	KeyK
	KeyJ
	KeyL
	KeyQ
	KeyE
	KeyLeft
	KeyRight
	KeyUp
	KeyDown

	numKeys
)

var keyNames = [numKeys]string{
	KeyW: "W", KeyS: "S", KeyA: "A", KeyD: "D",
	KeyI: "I", KeyK: "K", KeyJ: "J", KeyL: "L",
	KeyQ: "Q", KeyE: "E",
	KeyLeft: "Left", KeyRight: "Right", KeyUp: "Up", KeyDown: "Down",
}

// String returns the key name.
func (k Key) String() string {
	if k < numKeys {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", k)
}

// ParseKey parses a key name, case-insensitively.
func ParseKey(s string) (Key, error) {
	for k, name := range keyNames {
		if strings.EqualFold(name, s) {
			return Key(k), nil
		}
	}
	return 0, fmt.Errorf("scene: unknown key %q", s)
}

// Input reports key states for the current frame.
type Input interface {
	Pressed(Key) bool
}

// KeySet is an Input with a fixed set of held keys.
type KeySet map[Key]bool

// Pressed reports whether k is held.
func (s KeySet) Pressed(k Key) bool {
	return s[k]
}

// ParseKeySet parses a comma separated list of key names.
func ParseKeySet(list string) (KeySet, error) {
	set := KeySet{}
	for _, f := range strings.Split(list, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		k, err := ParseKey(f)
		if err != nil {
			return nil, err
		}
		set[k] = true
	}
	return set, nil
}

// Per-frame input steps.
const (
	MoveStep   = 10.0
	RotateStep = 0.1
	CameraStep = math.Pi / 180
)

// ApplyInput updates w from the keys held this frame.
//
//	W/S  paddle 1 up/down      A/D  rotate paddle 1
//	I/K  paddle 2 up/down      J/L  rotate paddle 2
//	Q    spin the square       E    orbit the square around paddle 1
//	arrows orbit the camera
func ApplyInput(in Input, w *World) {
	if in.Pressed(KeyE) {
		w.Square.Orbit += RotateStep
	}
	if in.Pressed(KeyQ) {
		w.Square.Rotation += RotateStep
	}

	if in.Pressed(KeyRight) {
		w.Camera.RotY -= CameraStep
	}
	if in.Pressed(KeyLeft) {
		w.Camera.RotY += CameraStep
	}
	if in.Pressed(KeyUp) {
		w.Camera.RotX -= CameraStep
	}
	if in.Pressed(KeyDown) {
		w.Camera.RotX += CameraStep
	}

	if in.Pressed(KeyS) {
		w.Paddle1.Position = w.Paddle1.Position.Translate(0, -MoveStep)
	}
	if in.Pressed(KeyW) {
		w.Paddle1.Position = w.Paddle1.Position.Translate(0, MoveStep)
	}
	if in.Pressed(KeyK) {
		w.Paddle2.Position = w.Paddle2.Position.Translate(0, -MoveStep)
	}
	if in.Pressed(KeyI) {
		w.Paddle2.Position = w.Paddle2.Position.Translate(0, MoveStep)
	}

	if in.Pressed(KeyA) {
		w.Paddle1.Rotation += RotateStep
	}
	if in.Pressed(KeyD) {
		w.Paddle1.Rotation -= RotateStep
	}
	if in.Pressed(KeyJ) {
		w.Paddle2.Rotation += RotateStep
	}
	if in.Pressed(KeyL) {
		w.Paddle2.Rotation -= RotateStep
	}
}
