package core

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected float64
	}{
		{"same point", V3(1, 2, 3), V3(1, 2, 3), 0},
		{"unit x", V3(0, 0, 0), V3(1, 0, 0), 1},
		{"3-4-5 on xz", V3(0, 0, 0), V3(3, 0, 4), 5},
		{"uses y", V3(0, 0, 0), V3(0, 2, 0), 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Distance(tc.a, tc.b)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Distance() = %f, expected %f", got, tc.expected)
			}
			if rev := Distance(tc.b, tc.a); math.Abs(rev-got) > 1e-12 {
				t.Errorf("Distance() not symmetric: %f vs %f", got, rev)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        Vec3
		ra       float64
		b        Vec3
		rb       float64
		expected bool
	}{
		{"clear overlap", V3(0, 0, 0), 0.5, V3(0.5, 0, 0), 0.5, true},
		{"touching does not overlap", V3(0, 0, 0), 0.5, V3(1, 0, 0), 0.5, false},
		{"far apart", V3(0, 0, 0), 0.4, V3(5, 0, 5), 0.4, false},
		{"concentric", V3(2, 0, 2), 0.1, V3(2, 0, 2), 0.1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.ra, tc.b, tc.rb); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := Overlaps(tc.b, tc.rb, tc.a, tc.ra); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestIsOutOfBounds(t *testing.T) {
	tests := []struct {
		name     string
		pos      Vec3
		margin   float64
		expected bool
	}{
		{"origin", V3(0, 0, 0), 0, false},
		{"on edge", V3(12, 0, 18), 0, false},
		{"past x", V3(12.1, 0, 0), 0, true},
		{"inside margin", V3(14, 0, 0), 3, false},
		{"past margin", V3(15.5, 0, 0), 3, true},
		{"past negative z", V3(0, 0, -21.5), 3, true},
		{"within small margin", V3(0, 0, 19.9), 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsOutOfBounds(tc.pos, tc.margin); got != tc.expected {
				t.Errorf("IsOutOfBounds(%v, %f) = %v, expected %v", tc.pos, tc.margin, got, tc.expected)
			}
		})
	}
}

func TestVec3IsFinite(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		expected bool
	}{
		{"zero", V3(0, 0, 0), true},
		{"regular", V3(-9.5, 1, 18), true},
		{"nan x", V3(math.NaN(), 0, 0), false},
		{"inf z", V3(0, 0, math.Inf(1)), false},
		{"negative inf y", V3(0, math.Inf(-1), 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.IsFinite(); got != tc.expected {
				t.Errorf("IsFinite(%v) = %v, expected %v", tc.v, got, tc.expected)
			}
		})
	}
}

func TestClampToPlayer(t *testing.T) {
	got := ClampToPlayer(V3(20, 0, 0))
	if got.X != PlayerMaxX || got.Z != PlayerMaxZ {
		t.Errorf("ClampToPlayer() = %v, expected (%f, %f)", got, PlayerMaxX, PlayerMaxZ)
	}
	got = ClampToPlayer(V3(-20, 0, -30))
	if got.X != PlayerMinX || got.Z != PlayerMinZ {
		t.Errorf("ClampToPlayer() = %v, expected (%f, %f)", got, PlayerMinX, PlayerMinZ)
	}
}

func TestPlanarDir(t *testing.T) {
	dx, dz, dist := V3(0, 0, 0).PlanarDir(V3(3, 0, 4))
	if math.Abs(dist-5) > 1e-9 || math.Abs(dx-0.6) > 1e-9 || math.Abs(dz-0.8) > 1e-9 {
		t.Errorf("PlanarDir() = (%f, %f, %f), expected (0.6, 0.8, 5)", dx, dz, dist)
	}

	dx, dz, dist = V3(1, 0, 1).PlanarDir(V3(1, 0, 1))
	if dist != 1 || dx != 0 || dz != 0 {
		t.Errorf("PlanarDir() on same point = (%f, %f, %f), expected (0, 0, 1)", dx, dz, dist)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
	if got := ClampF(-5.5, 0, 10); got != 0 {
		t.Errorf("ClampF(-5.5, 0, 10) = %f, expected 0", got)
	}
}
