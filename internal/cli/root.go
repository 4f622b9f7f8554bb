// Package cli holds the eplctl commands. Command output goes to stdout as
// JSON; logs go to stderr.
package cli

import (
	"context"
	"io"

	sonic "github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/epl-stats/internal/app"
	"github.com/riskibarqy/epl-stats/internal/config"
	"github.com/riskibarqy/epl-stats/internal/platform/logging"
)

type rootOptions struct {
	logLevel string
}

func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "eplctl",
		Short:         "eplctl scrapes Premier League stats and manages the export database.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error). Defaults to APP_LOG_LEVEL.")

	cmd.AddCommand(
		newExportCommand(opts),
		newWarmCommand(opts),
		newExtractCommand(opts),
		newMigrateCommand(opts),
	)
	return cmd
}

func (o *rootOptions) logger(cfg config.Config) *logging.Logger {
	level := cfg.LogLevel
	if o.logLevel != "" {
		level = logging.ParseLevel(o.logLevel)
	}
	return logging.NewConsole(level)
}

// withRuntime loads the config, builds the runtime and closes it after fn.
func (o *rootOptions) withRuntime(ctx context.Context, fn func(rt *app.Runtime) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := o.logger(cfg)
	defer func() { _ = logger.Sync() }()

	rt, err := app.NewRuntime(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := rt.Close(); err != nil {
			logger.Warn("close runtime", "error", err)
		}
	}()
	return fn(rt)
}

func writeJSON(w io.Writer, v any) error {
	enc := sonic.ConfigDefault.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
