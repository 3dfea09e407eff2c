package core

import "math"

// Play field extents. Entities are culled when they leave this rectangle
// expanded by a margin.
const (
	FieldMinX = -12.0
	FieldMaxX = 12.0
	FieldMinZ = -18.0
	FieldMaxZ = 18.0
)

// Player movement interior. The ship never leaves this box.
const (
	PlayerMinX = -9.5
	PlayerMaxX = 9.5
	PlayerMinZ = -14.0
	PlayerMaxZ = -5.0
)

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec3) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Overlaps reports whether two spheres intersect.
// Touching spheres (distance == radius sum) do not overlap.
func Overlaps(posA Vec3, radiusA float64, posB Vec3, radiusB float64) bool {
	return Distance(posA, posB) < radiusA+radiusB
}

// IsOutOfBounds reports whether pos lies outside the play field expanded by margin.
func IsOutOfBounds(pos Vec3, margin float64) bool {
	return pos.X < FieldMinX-margin || pos.X > FieldMaxX+margin ||
		pos.Z < FieldMinZ-margin || pos.Z > FieldMaxZ+margin
}

// ClampToPlayer restricts a position to the player movement interior.
func ClampToPlayer(pos Vec3) Vec3 {
	pos.X = ClampF(pos.X, PlayerMinX, PlayerMaxX)
	pos.Z = ClampF(pos.Z, PlayerMinZ, PlayerMaxZ)
	return pos
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
