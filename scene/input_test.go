package scene

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		want    Key
		wantErr bool
	}{
		{"W", KeyW, false},
		{"w", KeyW, false},
		{"left", KeyLeft, false},
		{"DOWN", KeyDown, false},
		{"space", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseKey(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKey(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKey(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestKeyString(t *testing.T) {
	for k := KeyW; k < numKeys; k++ {
		back, err := ParseKey(k.String())
		if err != nil || back != k {
			t.Errorf("ParseKey(%q) = %v, %v", k.String(), back, err)
		}
	}
	if got := Key(200).String(); got != "Key(200)" {
		t.Errorf("Key(200).String() = %q", got)
	}
}

func TestParseKeySet(t *testing.T) {
	set, err := ParseKeySet(" w, Left ,,e")
	if err != nil {
		t.Fatal(err)
	}
	want := KeySet{KeyW: true, KeyLeft: true, KeyE: true}
	if diff := cmp.Diff(want, set); diff != "" {
		t.Errorf("ParseKeySet mismatch (-want +got):\n%s", diff)
	}

	if _, err := ParseKeySet("w,x"); err == nil {
		t.Error("ParseKeySet with unknown key: error = nil")
	}

	empty, err := ParseKeySet("")
	if err != nil || len(empty) != 0 {
		t.Errorf("ParseKeySet(\"\") = %v, %v", empty, err)
	}
}

func TestApplyInput(t *testing.T) {
	base := DefaultConfig().World()

	tests := []struct {
		key   Key
		check func(w *World) bool
	}{
		{KeyW, func(w *World) bool { return w.Paddle1.Position.Y == base.Paddle1.Position.Y+MoveStep }},
		{KeyS, func(w *World) bool { return w.Paddle1.Position.Y == base.Paddle1.Position.Y-MoveStep }},
		{KeyI, func(w *World) bool { return w.Paddle2.Position.Y == base.Paddle2.Position.Y+MoveStep }},
		{KeyK, func(w *World) bool { return w.Paddle2.Position.Y == base.Paddle2.Position.Y-MoveStep }},
		{KeyA, func(w *World) bool { return w.Paddle1.Rotation == base.Paddle1.Rotation+RotateStep }},
		{KeyD, func(w *World) bool { return w.Paddle1.Rotation == base.Paddle1.Rotation-RotateStep }},
		{KeyJ, func(w *World) bool { return w.Paddle2.Rotation == base.Paddle2.Rotation+RotateStep }},
		{KeyL, func(w *World) bool { return w.Paddle2.Rotation == base.Paddle2.Rotation-RotateStep }},
		{KeyQ, func(w *World) bool { return w.Square.Rotation == base.Square.Rotation+RotateStep }},
		{KeyE, func(w *World) bool { return w.Square.Orbit == base.Square.Orbit+RotateStep }},
		{KeyLeft, func(w *World) bool { return w.Camera.RotY == base.Camera.RotY+CameraStep }},
		{KeyRight, func(w *World) bool { return w.Camera.RotY == base.Camera.RotY-CameraStep }},
		{KeyUp, func(w *World) bool { return w.Camera.RotX == base.Camera.RotX-CameraStep }},
		{KeyDown, func(w *World) bool { return w.Camera.RotX == base.Camera.RotX+CameraStep }},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			w := DefaultConfig().World()
			ApplyInput(KeySet{tt.key: true}, w)
			if !tt.check(w) {
				t.Errorf("key %v had no effect", tt.key)
			}
		})
	}
}

func TestApplyInputNoKeys(t *testing.T) {
	w := DefaultConfig().World()
	ApplyInput(KeySet{}, w)
	if diff := cmp.Diff(DefaultConfig().World(), w); diff != "" {
		t.Errorf("world changed without input (-want +got):\n%s", diff)
	}
}

func TestClock(t *testing.T) {
	c := NewClock()
	c.Advance(1)
	if c.Time != 1 {
		t.Errorf("Time = %v, want 1", c.Time)
	}

	c.Multiplier = 2.5
	c.Advance(2)
	if c.Time != 6 {
		t.Errorf("Time = %v, want 6", c.Time)
	}

	c.Paused = true
	c.Advance(100)
	if c.Time != 6 {
		t.Errorf("paused clock moved to %v", c.Time)
	}

	c.Seek(30)
	if c.Time != 30 {
		t.Errorf("Seek: Time = %v", c.Time)
	}
	c.Restart()
	if c.Time != 0 {
		t.Errorf("Restart: Time = %v", c.Time)
	}

	if math.Abs(FrameDuration*TargetFrameRate-1) > 1e-12 {
		t.Errorf("FrameDuration = %v", FrameDuration)
	}
}
