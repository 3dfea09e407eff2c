// Package config provides YAML-based configuration loading and
// difficulty management for the sentinel engine and its shells.
package config

// SentinelConfig contains all tunables for a run.
type SentinelConfig struct {
	Engine     EngineConfig     `yaml:"engine"`
	Player     PlayerConfig     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Storage    StorageConfig    `yaml:"storage"`
}

// EngineConfig defines tick timing. All durations are in seconds.
type EngineConfig struct {
	MaxDelta       float64 `yaml:"max_delta"`
	SpawnInterval  float64 `yaml:"spawn_interval"`
	WaveStartDelay float64 `yaml:"wave_start_delay"`
	ComboWindow    float64 `yaml:"combo_window"`
	InvincibleTime float64 `yaml:"invincible_time"`
	BossWarning    float64 `yaml:"boss_warning"`
	NukeFlash      float64 `yaml:"nuke_flash"`
	AutoFire       bool    `yaml:"auto_fire"`
}

// PlayerConfig defines the ship a run starts with and its upgrade caps.
type PlayerConfig struct {
	StartX    float64 `yaml:"start_x"`
	StartZ    float64 `yaml:"start_z"`
	Speed     float64 `yaml:"speed"`
	SpeedCap  float64 `yaml:"speed_cap"`
	Lives     int     `yaml:"lives"`
	LivesCap  int     `yaml:"lives_cap"`
	MaxShield int     `yaml:"max_shield"`
	ShieldCap int     `yaml:"shield_cap"`
}

// DifficultyConfig defines how enemy stats scale with the game level.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	LevelScaling float64 `yaml:"level_scaling"`
}

// StorageConfig selects where scores are kept.
type StorageConfig struct {
	Backend         string `yaml:"backend"` // "sqlite", "gdata" or "memory"
	Path            string `yaml:"path"`    // sqlite database path
	AppName         string `yaml:"app_name"`
	LeaderboardSize int    `yaml:"leaderboard_size"`
}

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendGdata  = "gdata"
	BackendMemory = "memory"
)

// Normalize replaces out-of-range values with defaults or clamps them.
// Configuration is never rejected for bad numbers.
func (c *SentinelConfig) Normalize() {
	def := DefaultSentinelConfig()

	positive := func(v *float64, fallback float64) {
		if *v <= 0 {
			*v = fallback
		}
	}
	positive(&c.Engine.MaxDelta, def.Engine.MaxDelta)
	positive(&c.Engine.SpawnInterval, def.Engine.SpawnInterval)
	positive(&c.Engine.ComboWindow, def.Engine.ComboWindow)
	positive(&c.Engine.NukeFlash, def.Engine.NukeFlash)
	if c.Engine.WaveStartDelay < 0 {
		c.Engine.WaveStartDelay = 0
	}
	if c.Engine.InvincibleTime < 0 {
		c.Engine.InvincibleTime = 0
	}
	if c.Engine.BossWarning < 0 {
		c.Engine.BossWarning = 0
	}

	positive(&c.Player.Speed, def.Player.Speed)
	if c.Player.SpeedCap < c.Player.Speed {
		c.Player.SpeedCap = c.Player.Speed
	}
	if c.Player.LivesCap <= 0 {
		c.Player.LivesCap = def.Player.LivesCap
	}
	// The defaults are hard ceilings for the caps.
	c.Player.LivesCap = min(c.Player.LivesCap, def.Player.LivesCap)
	c.Player.Lives = clampInt(c.Player.Lives, 1, c.Player.LivesCap)
	if c.Player.ShieldCap <= 0 {
		c.Player.ShieldCap = def.Player.ShieldCap
	}
	c.Player.ShieldCap = min(c.Player.ShieldCap, def.Player.ShieldCap)
	c.Player.MaxShield = clampInt(c.Player.MaxShield, 0, c.Player.ShieldCap)

	if c.Difficulty.LevelScaling < 0 {
		c.Difficulty.LevelScaling = 0
	}

	switch c.Storage.Backend {
	case BackendSQLite, BackendGdata, BackendMemory:
	default:
		c.Storage.Backend = def.Storage.Backend
	}
	if c.Storage.Path == "" {
		c.Storage.Path = def.Storage.Path
	}
	if c.Storage.AppName == "" {
		c.Storage.AppName = def.Storage.AppName
	}
	if c.Storage.LeaderboardSize <= 0 {
		c.Storage.LeaderboardSize = def.Storage.LeaderboardSize
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
