package sentinel

import (
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/f47-sentinel/internal/core"
)

// Controller tuning.
const (
	TouchSensitivity = 0.04 // world units per pixel of drag
	MaxTilt          = 25.0 // degrees of tilt mapped to the full field
	MaxNameLength    = 8
)

// TouchDragTarget converts a drag of (dxPixels, dyPixels) that started while
// the ship was at start into an absolute target. Dragging up moves forward.
func TouchDragTarget(start core.Vec3, dxPixels, dyPixels float64) core.Vec3 {
	return core.ClampToPlayer(core.V3(
		start.X+dxPixels*TouchSensitivity,
		0,
		start.Z-dyPixels*TouchSensitivity,
	))
}

// GyroTarget maps tilt deltas from the calibrated rest pose into a target.
// dGamma is left/right tilt and dBeta is forward/back, both in degrees.
func GyroTarget(dGamma, dBeta float64) core.Vec3 {
	dx := core.ClampF(dGamma, -MaxTilt, MaxTilt)
	dz := core.ClampF(dBeta, -MaxTilt, MaxTilt)

	centerZ := (core.PlayerMinZ + core.PlayerMaxZ) / 2
	rangeZ := (core.PlayerMaxZ - core.PlayerMinZ) / 2
	return core.V3(dx/MaxTilt*core.PlayerMaxX, 0, centerZ+dz/MaxTilt*rangeZ)
}

// SanitizeName trims, upper-cases and truncates a pilot name for the leaderboard.
func SanitizeName(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	if utf8.RuneCountInString(name) <= MaxNameLength {
		return name
	}
	runes := []rune(name)
	return string(runes[:MaxNameLength])
}
