package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/f47-sentinel/internal/config"
	"github.com/vovakirdan/f47-sentinel/internal/storage"
)

var flagStats bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the stored leaderboard and the best score.

With --stats, also print aggregate statistics and the most recent runs
(sqlite backend only).

Examples:
  sentinel scores
  sentinel scores --stats
  sentinel scores --backend gdata`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show run history statistics")
}

func runScores(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	kv, err := storage.OpenBackend(cfg.Storage)
	if err != nil {
		return fmt.Errorf("opening score storage: %w", err)
	}
	defer kv.Close()

	scores := storage.NewScores(kv,
		storage.WithLimit(cfg.Storage.LeaderboardSize),
		storage.WithLogger(logger),
	)

	out := cmd.OutOrStdout()
	board := scores.Leaderboard()

	fmt.Fprintln(out, "F47 Sentinel - Leaderboard")
	fmt.Fprintln(out)

	if len(board) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'sentinel play' to set the first high score!")
	} else {
		fmt.Fprintf(out, "  %-4s  %-8s  %-10s  %-7s  %s\n", "Rank", "Pilot", "Score", "Lv-Wave", "Date")
		fmt.Fprintf(out, "  %-4s  %-8s  %-10s  %-7s  %s\n", "----", "-----", "-----", "-------", "----")
		for i, e := range board {
			fmt.Fprintf(out, "  %-4d  %-8s  %-10d  %-7s  %s\n",
				i+1, e.Name, e.Score, fmt.Sprintf("%d-%d", e.Level, e.Wave), e.Date.Local().Format("2006-01-02 15:04"))
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d\n", scores.HighScore())

	if !flagStats {
		return nil
	}
	return printStats(cmd, scores, cfg)
}

func printStats(cmd *cobra.Command, scores *storage.Scores, cfg config.SentinelConfig) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out)

	hist := scores.History()
	if hist == nil {
		fmt.Fprintf(out, "The %s backend keeps no run history.\n", cfg.Storage.Backend)
		return nil
	}

	stats, err := hist.RunStats()
	if err != nil {
		return err
	}
	if stats.Runs == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintln(out, "Service record")
	fmt.Fprintf(out, "  Runs:        %d\n", stats.Runs)
	fmt.Fprintf(out, "  Best score:  %d\n", stats.BestScore)
	fmt.Fprintf(out, "  Avg score:   %.1f\n", stats.AvgScore)
	fmt.Fprintf(out, "  Total kills: %d\n", stats.TotalKills)
	fmt.Fprintf(out, "  Best level:  %d\n", stats.BestLevel)
	if !stats.LastPlayed.IsZero() {
		fmt.Fprintf(out, "  Last played: %s\n", stats.LastPlayed.Local().Format("2006-01-02 15:04"))
	}

	runs, err := hist.RecentRuns(10)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Recent runs")
	fmt.Fprintf(out, "  %-10s  %-7s  %-5s  %-8s  %s\n", "Score", "Lv-Wave", "Kills", "Time", "Seed")
	for _, r := range runs {
		fmt.Fprintf(out, "  %-10d  %-7s  %-5d  %-8s  %d\n",
			r.Score, fmt.Sprintf("%d-%d", r.Level, r.Wave), r.Kills, fmt.Sprintf("%.0fs", r.DurationSecs), r.Seed)
	}
	return nil
}
