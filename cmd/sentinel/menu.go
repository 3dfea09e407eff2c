package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/f47-sentinel/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start at the main menu",
	Long: `Start in interactive menu mode.

Launch a run, browse the leaderboard or quit. Going back from a paused or
finished run returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  sentinel menu
  sentinel menu --fps 30
  sentinel menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
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

	newEngine := engineFactory(cfg, scores, logger)
	rc := runtimeConfig()

	// Menu loop
	for {
		result, err := tui.RunMenu(scores.HighScore(), rc)
		if err != nil {
			return err
		}
		rc = result.Config

		switch result.Choice {
		case tui.ChoiceLaunch:
			back, err := tui.Run(newEngine, rc)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		case tui.ChoiceLeaderboard:
			back, err := tui.RunScoreboard(scores, rc.ScreenW, rc.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		default:
			return nil
		}
	}
}
