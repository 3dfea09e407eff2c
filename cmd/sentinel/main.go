// sentinel is the F47 Sentinel arcade shooter for the terminal.
//
// Usage:
//
//	sentinel play             - Fly a sortie straight away
//	sentinel menu             - Start at the main menu
//	sentinel serve            - Start SSH server for remote play
//	sentinel scores           - Show the leaderboard
//	sentinel sim              - Let the autopilot fly a headless run
//	sentinel replay <file>    - Verify or inspect a recorded run
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load tunables from a YAML file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--backend <name>      - Score storage: sqlite, gdata or memory
//	--db <path>           - Set sqlite database path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagBackend    string
	flagDBPath     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sentinel",
	Short: "F47 Sentinel - hold the line in your terminal",
	Long: `F47 Sentinel is a top-down arcade shooter. Enemy waves descend from
the far edge of the field; destroy them before they slip past, collect
power-ups and survive the boss at the end of every level.

Available commands:
  play     - Start a run directly
  menu     - Main menu with leaderboard
  serve    - Start SSH server for remote play
  scores   - Print the leaderboard
  sim      - Headless autopilot run, optionally recorded
  replay   - Verify or inspect a recorded run

Examples:
  sentinel play
  sentinel play --difficulty hard
  sentinel menu --backend gdata
  sentinel serve --ssh :2222
  sentinel sim --seconds 120 --record run.f47`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom sentinel config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Score storage backend: sqlite, gdata, memory")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (sqlite backend)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (interactive commands log nowhere by default)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replayCmd)
}
