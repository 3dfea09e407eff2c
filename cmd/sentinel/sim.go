package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/f47-sentinel/internal/autopilot"
	"github.com/vovakirdan/f47-sentinel/internal/games/sentinel"
	"github.com/vovakirdan/f47-sentinel/internal/replay"
	"github.com/vovakirdan/f47-sentinel/internal/storage"
)

var (
	flagSimSeconds float64
	flagSimRecord  string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Fly a headless run with the autopilot",
	Long: `Run the simulation without a terminal UI, steered by the built-in
autopilot, as fast as the machine allows. Scores are not saved.

With --record the run is written to a replay file that 'sentinel replay'
can verify.

Examples:
  sentinel sim
  sentinel sim --seconds 300 --seed 7
  sentinel sim --record ~/.sentinel/replays/run.f47`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Float64Var(&flagSimSeconds, "seconds", 0, "Simulated seconds to fly (0 = until game over)")
	simCmd.Flags().StringVar(&flagSimRecord, "record", "", "Write a replay of the run to this file")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e := sentinel.New(
		sentinel.WithConfig(cfg),
		sentinel.WithSeed(seed),
		sentinel.WithScores(storage.NewScores(nil)),
		sentinel.WithLogger(logger),
	)

	opts := autopilot.Options{
		DT:       1.0 / float64(max(flagFPS, 1)),
		Duration: flagSimSeconds,
	}
	var rec *replay.Recorder
	if flagSimRecord != "" {
		rec = replay.NewRecorder(e)
		opts.Step = rec.Update
	} else {
		e.StartGame()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	start := time.Now()
	final, err := autopilot.Fly(ctx, e, autopilot.New(), opts)
	if err != nil && ctx.Err() == nil {
		return err
	}
	if ctx.Err() != nil {
		logger.Warn("simulation interrupted", "tick", final.Tick)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Seed %d, %.1fs simulated in %s\n", seed, final.Elapsed, time.Since(start).Round(time.Millisecond))
	printSummary(out, replay.SummaryOf(final))

	if rec == nil {
		return nil
	}
	recording := rec.Finish()
	if err := replay.Save(flagSimRecord, recording); err != nil {
		return err
	}
	fmt.Fprintf(out, "Replay saved to %s (%d frames)\n", flagSimRecord, rec.Frames())
	return nil
}
