package cli

import (
	"github.com/spf13/cobra"

	"github.com/riskibarqy/epl-stats/internal/app"
)

func newExportCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Scrapes results and the league table and writes them to Postgres under a new run id.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return opts.withRuntime(ctx, func(rt *app.Runtime) error {
				svc, err := rt.NewExportService(ctx)
				if err != nil {
					return err
				}
				result, err := svc.Export(ctx)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), result)
			})
		},
	}
}
