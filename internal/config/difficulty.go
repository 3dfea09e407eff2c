package config

import "strings"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *SentinelConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.LevelScaling = 0.2
		cfg.Player.Lives = 5
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.LevelScaling = 0.4
		cfg.Player.Lives = 2
		cfg.Player.MaxShield = 2
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
	cfg.Normalize()
}

// LevelMultiplier returns the enemy stat multiplier for a game level:
// 1 + scaling*(level-1). HP, speed, score and XP grow by it and the
// shoot interval shrinks by it.
func (d DifficultyConfig) LevelMultiplier(level int) float64 {
	if !d.Enabled || level <= 1 {
		return 1
	}
	return 1 + float64(level-1)*d.LevelScaling
}
