// Package core provides fundamental types and utilities for the sentinel simulation.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec3 is a position or velocity in the shared world frame.
// Y is carried for renderers but gameplay only uses X and Z.
type Vec3 struct {
	X float64 `msgpack:"x" json:"x"`
	Y float64 `msgpack:"y" json:"y"`
	Z float64 `msgpack:"z" json:"z"`
}

// V3 builds a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Scale returns v * k.
func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}

// IsFinite reports whether every component is neither NaN nor infinite.
func (v Vec3) IsFinite() bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// PlanarDir returns the unit direction from v to target on the XZ plane
// and the planar distance. A zero distance is reported as 1 so callers
// never divide by zero.
func (v Vec3) PlanarDir(target Vec3) (dx, dz, dist float64) {
	dx = target.X - v.X
	dz = target.Z - v.Z
	dist = math.Sqrt(dx*dx + dz*dz)
	if dist == 0 {
		dist = 1
	}
	return dx / dist, dz / dist, dist
}

// Lerp moves a fraction t of the way from a to b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
