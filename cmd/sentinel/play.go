package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/f47-sentinel/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start flying immediately.

Controls:
  Left/Right, A/D  - Strafe
  Up/Down, W/S     - Advance / retreat
  Space            - Fire (hold)
  F                - Toggle auto-fire
  P/Esc            - Pause
  R/Enter          - New run (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Five lives, gentle level scaling
  normal - Default scaling
  hard   - Two lives, smaller shield, steep scaling
  fixed  - Enemy stats never scale with the level

Examples:
  sentinel play
  sentinel play --difficulty easy
  sentinel play --seed 42 --fps 30
  sentinel play --config ./my-sentinel.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	scores, closeScores := openScores(cfg, logger)
	defer closeScores()

	_, err = tui.Run(engineFactory(cfg, scores, logger), runtimeConfig())
	return err
}
