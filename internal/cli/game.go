package cli

import (
	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/connectfour-backend/internal"
)

func newReplayCmd(rt *settings) *cobra.Command {
	var moves []int

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay a list of column moves and report the outcome",
		Long: `Start a game and drop pieces into the given columns, alternating players.

Moves that land in a full or out-of-range column, or that follow the end of
the game, are reported as ignored.`,
		Example: "  connectfour replay --moves 3,3,4,4,5,5,6",
		RunE: func(cmd *cobra.Command, _ []string) error {
			summaries, err := application.RunApp(cmd.Context(), rt.logger, rt.conf, application.Mode{Moves: moves})
			NewOutput(rt.output, cmd.OutOrStdout()).PrintSummaries(summaries)

			return err
		},
	}

	cmd.Flags().IntSliceVarP(&moves, "moves", "m", nil, "Comma-separated column indexes, 0-based")
	_ = cmd.MarkFlagRequired("moves")

	return cmd
}

func newSelfPlayCmd(rt *settings) *cobra.Command {
	var (
		seed  int64
		games int
	)

	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Let a random bot play both sides until the game ends",
		Long: `Let a random bot play both sides until the game ends.

With --games N the same session is reset after each game and played again.`,
		Example: "  connectfour selfplay --seed 42 -o json\n  connectfour selfplay --games 3",
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode := application.Mode{SelfPlay: true, Seed: seed, Games: games}

			summaries, err := application.RunApp(cmd.Context(), rt.logger, rt.conf, mode)
			NewOutput(rt.output, cmd.OutOrStdout()).PrintSummaries(summaries)

			return err
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed for the bot")
	cmd.Flags().IntVarP(&games, "games", "g", 1, "Number of games to play, resetting the board in between")

	return cmd
}
