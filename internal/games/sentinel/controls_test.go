package sentinel

import (
	"testing"

	"github.com/vovakirdan/f47-sentinel/internal/core"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in, expected string
	}{
		{"ace", "ACE"},
		{"  maverick  ", "MAVERICK"},
		{"goose-the-great", "GOOSE-TH"},
		{"   ", ""},
		{"", ""},
		{"åsa", "ÅSA"},
	}
	for _, tc := range tests {
		if got := SanitizeName(tc.in); got != tc.expected {
			t.Errorf("SanitizeName(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestTouchDragTarget(t *testing.T) {
	start := core.V3(0, 0, -12)

	got := TouchDragTarget(start, 50, -25)
	if !approx(got.X, 2) || !approx(got.Z, -11) {
		t.Errorf("TouchDragTarget = %+v, expected (2, -11)", got)
	}

	got = TouchDragTarget(start, 10000, 10000)
	if got.X != core.PlayerMaxX || got.Z != core.PlayerMinZ {
		t.Errorf("far drag = %+v, expected clamp to the interior", got)
	}
}

func TestGyroTarget(t *testing.T) {
	center := GyroTarget(0, 0)
	if !approx(center.X, 0) || !approx(center.Z, -9.5) {
		t.Errorf("rest pose = %+v, expected (0, -9.5)", center)
	}

	full := GyroTarget(90, 90)
	if !approx(full.X, core.PlayerMaxX) || !approx(full.Z, core.PlayerMaxZ) {
		t.Errorf("full tilt = %+v, expected (%f, %f)", full, core.PlayerMaxX, core.PlayerMaxZ)
	}

	back := GyroTarget(-MaxTilt, -MaxTilt)
	if !approx(back.X, core.PlayerMinX) || !approx(back.Z, core.PlayerMinZ) {
		t.Errorf("full back tilt = %+v", back)
	}
}

func TestInputSetters(t *testing.T) {
	e, _ := newTestEngine(t)

	e.SetKey(core.KeyFire, true)
	e.SetKey(core.KeyA, true)
	e.SetKey(core.KeyA, false)
	e.SetControlMode(core.ControlGyro)
	e.SetTilt(3, -4)
	e.SetTouchTarget(100, 100)

	in := e.Input()
	if !in.Keys[core.KeyFire] || in.Keys[core.KeyA] {
		t.Errorf("keys = %v", in.Keys)
	}
	if in.ControlMode != core.ControlGyro || in.TiltX != 3 || in.TiltY != -4 {
		t.Errorf("input = %+v", in)
	}
	if in.Touch == nil || in.Touch.X != core.PlayerMaxX || in.Touch.Z != core.PlayerMaxZ {
		t.Errorf("touch = %+v, expected clamp", in.Touch)
	}

	// Returned input is a copy
	in.Keys[core.KeyS] = true
	in.Touch.X = -50
	again := e.Input()
	if again.Keys[core.KeyS] || again.Touch.X == -50 {
		t.Error("Input() shares state with the engine")
	}

	e.ReleaseAllKeys()
	e.ClearTouchTarget()
	in = e.Input()
	if len(in.Keys) != 0 || in.Touch != nil {
		t.Errorf("input after release = %+v", in)
	}
}
