package cli

import (
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/plus3/blockfall/sim"
)

// benchFrameRate is the simulated frame rate of the headless run.
const benchFrameRate = 60

// newBenchCmd creates the bench command: a headless run of the rule engine
// with random input, reporting frame timings and allocation behavior.
func newBenchCmd() *cobra.Command {
	var (
		configPath string
		seed       uint64
		duration   time.Duration
		output     string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a headless benchmark of the rule engine",
		Long: `Run a headless benchmark of the rule engine.

The simulation is stepped at a fixed frame rate with randomized input for
the given simulated duration, without any rendering. A Markdown report
with frame timings, per-stage statistics and memory usage is written to
stdout or to --output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}

			logger.Info("starting benchmark",
				"duration", duration,
				"width", cfg.Board.Width,
				"height", cfg.Board.Height,
				"seed", cfg.Seed,
			)

			report := runBench(cfg, duration)

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create report %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}
			if err := report.Generate(w); err != nil {
				return fmt.Errorf("generate report: %w", err)
			}
			if output != "" {
				logger.Info("report written", "path", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to TOML config file")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for piece selection and input")
	cmd.Flags().DurationVarP(&duration, "duration", "d", time.Minute, "simulated duration")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the report to a file instead of stdout")

	return cmd
}

// runBench steps a game at the bench frame rate for the given simulated
// duration, pressing random directions, and collects a Report.
func runBench(cfg Config, duration time.Duration) *Report {
	game := sim.NewGame(cfg.simConfig())
	rng := rand.New(rand.NewPCG(cfg.Seed, ^cfg.Seed))

	frames := int64(duration.Seconds() * benchFrameRate)
	dt := 1.0 / benchFrameRate

	report := &Report{
		Duration: duration,
		Width:    cfg.Board.Width,
		Height:   cfg.Board.Height,
		Seed:     cfg.Seed,
	}
	report.UpdateTime.Samples = make([]time.Duration, 0, frames)

	runtime.GC()
	runtime.ReadMemStats(&report.MemStatsStart)

	start := time.Now()
	for i := int64(0); i < frames; i++ {
		// Roughly two presses per second of simulated time.
		if rng.IntN(benchFrameRate/2) == 0 {
			game.Press(sim.Direction(1 + rng.IntN(4)))
		}

		frameStart := time.Now()
		game.Update(dt)
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(frameStart))

		if game.Over() {
			report.GamesFinished++
			report.LinesCleared += game.Lines()
			game.Reset()
		}
	}
	report.TotalTime = time.Since(start)
	report.TotalFrames = frames
	report.LinesCleared += game.Lines()
	report.UpdateTime.Finalize()
	report.StageStats = game.Stats().Stages

	runtime.ReadMemStats(&report.MemStatsEnd)

	return report
}
