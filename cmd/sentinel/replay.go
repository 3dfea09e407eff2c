package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/f47-sentinel/internal/games/sentinel"
	"github.com/vovakirdan/f47-sentinel/internal/replay"
)

var (
	flagReplayVerify bool
	flagReplayTrace  float64
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Verify or inspect a recorded run",
	Long: `Load a replay file, re-simulate it from its seed and inputs, and check
that the outcome matches what was recorded.

With --trace the state is printed every given number of simulated seconds.

Examples:
  sentinel replay run.f47
  sentinel replay run.f47 --trace 10
  sentinel replay run.f47 --verify=false`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayVerify, "verify", true, "Check the re-simulated outcome against the recording")
	replayCmd.Flags().Float64Var(&flagReplayTrace, "trace", 0, "Print state every N simulated seconds (0 = off)")
}

func runReplay(cmd *cobra.Command, args []string) error {
	rec, err := replay.Load(args[0])
	if err != nil {
		return err
	}

	if len(rec.Frames) == 0 {
		return errNoReplay
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Replay %s\n", args[0])
	fmt.Fprintf(out, "  Recorded: %s\n", rec.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(out, "  Seed:     %d\n", rec.Seed)
	fmt.Fprintf(out, "  Frames:   %d (%s)\n", len(rec.Frames), rec.Duration().Round(time.Millisecond))
	fmt.Fprintln(out)

	ctx, cancel := verifyContext(cmd.Context())
	defer cancel()

	if flagReplayVerify && flagReplayTrace <= 0 {
		if err := replay.Verify(ctx, rec); err != nil {
			return err
		}
		printSummary(out, rec.Final)
		fmt.Fprintln(out, "Verified: replay matches the recording")
		return nil
	}

	var onFrame func(int, *sentinel.Snapshot)
	if flagReplayTrace > 0 {
		next := flagReplayTrace
		onFrame = func(_ int, s *sentinel.Snapshot) {
			if s.Elapsed < next {
				return
			}
			next += flagReplayTrace
			fmt.Fprintf(out, "  t=%6.1fs  score %-8d lv %d-%d  lives %d  kills %d\n",
				s.Elapsed, s.Score, s.Level, s.Wave, s.Player.Lives, s.TotalKills)
		}
	}

	final, err := replay.Play(ctx, rec, onFrame)
	if err != nil {
		return err
	}
	printSummary(out, replay.SummaryOf(final))

	if !flagReplayVerify {
		return nil
	}
	if got := replay.SummaryOf(final); got != rec.Final {
		return fmt.Errorf("%w: recorded %+v, replayed %+v", replay.ErrMismatch, rec.Final, got)
	}
	fmt.Fprintln(out, "Verified: replay matches the recording")
	return nil
}

func printSummary(out io.Writer, s replay.Summary) {
	fmt.Fprintf(out, "  Phase:  %v\n", s.Phase)
	fmt.Fprintf(out, "  Score:  %d\n", s.Score)
	fmt.Fprintf(out, "  Kills:  %d\n", s.Kills)
	fmt.Fprintf(out, "  Level:  %d  Wave %d  XP level %d\n", s.Level, s.Wave, s.XPLevel)
	fmt.Fprintf(out, "  Lives:  %d\n", s.Lives)
}

// errNoReplay is reported when the replay file has no frames.
var errNoReplay = errors.New("replay has no frames")

// verifyTimeout bounds re-simulation of a replay file.
const verifyTimeout = 5 * time.Minute

func verifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, verifyTimeout)
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	return ctx, func() {
		stop()
		cancel()
	}
}
