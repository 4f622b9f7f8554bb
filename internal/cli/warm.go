package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/epl-stats/internal/app"
	"github.com/riskibarqy/epl-stats/internal/usecase"
)

type warmOptions struct {
	players  []string
	table    bool
	fixtures bool
	results  bool
	all      bool
	workers  int
}

func (o warmOptions) input() usecase.WarmupInput {
	players := make([]string, 0, len(o.players))
	for _, name := range o.players {
		if name = strings.TrimSpace(name); name != "" {
			players = append(players, name)
		}
	}
	return usecase.WarmupInput{
		Players:    players,
		Table:      o.table || o.all,
		Fixtures:   o.fixtures || o.all,
		Results:    o.results || o.all,
		MaxWorkers: o.workers,
	}
}

func newWarmCommand(opts *rootOptions) *cobra.Command {
	warm := warmOptions{}
	cmd := &cobra.Command{
		Use:   "warm [--players a,b] [--table] [--fixtures] [--results] [--all]",
		Short: "Fills the result cache ahead of traffic.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return opts.withRuntime(ctx, func(rt *app.Runtime) error {
				result, err := rt.Warmup.Warm(ctx, warm.input())
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), result)
			})
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&warm.players, "players", nil, "Player names to search, comma separated.")
	flags.BoolVar(&warm.table, "table", false, "Warm the league table.")
	flags.BoolVar(&warm.fixtures, "fixtures", false, "Warm the fixtures list.")
	flags.BoolVar(&warm.results, "results", false, "Warm the results list.")
	flags.BoolVar(&warm.all, "all", false, "Warm the table, fixtures and results.")
	flags.IntVar(&warm.workers, "workers", 0, "Concurrent pages. Defaults to WARMUP_WORKERS.")
	return cmd
}
