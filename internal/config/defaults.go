package config

import (
	_ "embed"
)

//go:embed defaults/sentinel.yaml
var defaultSentinelYAML []byte

// DefaultSentinelConfig returns the built-in configuration.
// It mirrors defaults/sentinel.yaml and is used when the embedded file cannot be parsed.
func DefaultSentinelConfig() SentinelConfig {
	return SentinelConfig{
		Engine: EngineConfig{
			MaxDelta:       0.05,
			SpawnInterval:  0.3,
			WaveStartDelay: 0.5,
			ComboWindow:    2.0,
			InvincibleTime: 2.0,
			BossWarning:    2.0,
			NukeFlash:      0.5,
			AutoFire:       true,
		},
		Player: PlayerConfig{
			StartX:    0,
			StartZ:    -12,
			Speed:     8,
			SpeedCap:  16,
			Lives:     3,
			LivesCap:  5,
			MaxShield: 3,
			ShieldCap: 6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			LevelScaling: 0.3,
		},
		Storage: StorageConfig{
			Backend:         BackendSQLite,
			Path:            "~/.sentinel/scores.db",
			AppName:         "f47-sentinel",
			LeaderboardSize: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSentinelYAML
}
