package cli

import (
	"github.com/spf13/cobra"

	"github.com/plus3/blockfall/internal/tui"
	"github.com/plus3/blockfall/sim"
)

// newPlayCmd creates the play command running the terminal frontend.
func newPlayCmd() *cobra.Command {
	var (
		configPath string
		seed       uint64
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play blockfall in the terminal",
		Long: `Play blockfall in the terminal.

Controls:
  left/right or h/l   move the piece
  down or j           soft drop (held)
  up or k             rise
  r                   restart
  q, esc or ctrl-c    quit`,
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

			logger.Debug("starting game",
				"width", cfg.Board.Width,
				"height", cfg.Board.Height,
				"tick_period", cfg.Timing.TickPeriod,
				"seed", cfg.Seed,
			)

			game := sim.NewGame(cfg.simConfig())
			return tui.Run(cmd.Context(), game, logger)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to TOML config file")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for piece selection")

	return cmd
}
