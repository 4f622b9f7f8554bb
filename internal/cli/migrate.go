package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/epl-stats/internal/app"
	"github.com/riskibarqy/epl-stats/internal/config"
	"github.com/riskibarqy/epl-stats/internal/platform/logging"
)

type migrateOptions struct {
	dir string
}

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	m := &migrateOptions{}
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manages the export database schema.",
	}
	cmd.PersistentFlags().StringVar(&m.dir, "dir", "", "Migrations directory. Defaults to MIGRATIONS_DIR or ./db/migrations.")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Applies all pending migrations.",
			Args:  cobra.NoArgs,
			RunE: m.run(opts, func(mg *migrate.Migrate, logger *logging.Logger, _ []string, _ *cobra.Command) error {
				if err := ignoreNoChange(mg.Up(), logger); err != nil {
					return err
				}
				logger.Info("migrations applied")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "Rolls back migrations, one by default.",
			Args:  cobra.MaximumNArgs(1),
			RunE: m.run(opts, func(mg *migrate.Migrate, logger *logging.Logger, args []string, _ *cobra.Command) error {
				steps, err := parseSteps(args)
				if err != nil {
					return err
				}
				if err := ignoreNoChange(mg.Steps(-steps), logger); err != nil {
					return err
				}
				logger.Info("migrations rolled back", "steps", steps)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Prints the current schema version.",
			Args:  cobra.NoArgs,
			RunE: m.run(opts, func(mg *migrate.Migrate, _ *logging.Logger, _ []string, cmd *cobra.Command) error {
				version, dirty, err := mg.Version()
				if errors.Is(err, migrate.ErrNilVersion) {
					return writeJSON(cmd.OutOrStdout(), schemaVersion{})
				}
				if err != nil {
					return fmt.Errorf("read version: %w", err)
				}
				return writeJSON(cmd.OutOrStdout(), schemaVersion{Version: &version, Dirty: dirty})
			}),
		},
		&cobra.Command{
			Use:   "force <version>",
			Short: "Sets the schema version without running migrations.",
			Args:  cobra.ExactArgs(1),
			RunE: m.run(opts, func(mg *migrate.Migrate, logger *logging.Logger, args []string, _ *cobra.Command) error {
				version, err := parseVersion(args[0])
				if err != nil {
					return err
				}
				if err := mg.Force(version); err != nil {
					return fmt.Errorf("force version %d: %w", version, err)
				}
				logger.Info("forced version", "version", version)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "goto <version>",
			Short: "Migrates up or down to a version.",
			Args:  cobra.ExactArgs(1),
			RunE: m.run(opts, func(mg *migrate.Migrate, logger *logging.Logger, args []string, _ *cobra.Command) error {
				target, err := parseTarget(args[0])
				if err != nil {
					return err
				}
				if err := ignoreNoChange(mg.Migrate(target), logger); err != nil {
					return err
				}
				logger.Info("migrated", "version", target)
				return nil
			}),
		},
	)
	return cmd
}

type schemaVersion struct {
	Version *uint `json:"version"`
	Dirty   bool  `json:"dirty"`
}

type migrateFunc func(mg *migrate.Migrate, logger *logging.Logger, args []string, cmd *cobra.Command) error

func (m *migrateOptions) run(opts *rootOptions, fn migrateFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger := opts.logger(cfg)
		defer func() { _ = logger.Sync() }()

		dir, err := resolveMigrationsDir(m.dir)
		if err != nil {
			return err
		}
		sourceURL := "file://" + filepath.ToSlash(dir)
		mg, err := migrate.New(sourceURL, app.DatabaseURL(cfg))
		if err != nil {
			return fmt.Errorf("create migrator: %w", err)
		}
		defer closeMigrator(mg, logger)

		logger.Debug("migration source", "source", sourceURL)
		return fn(mg, logger, args, cmd)
	}
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}

	steps, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid down steps %q: %w", args[0], err)
	}
	if steps <= 0 {
		return 0, fmt.Errorf("down steps must be > 0")
	}

	return steps, nil
}

func parseVersion(raw string) (int, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", raw, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("version must be >= 0")
	}
	if value > int64(^uint(0)>>1) {
		return 0, fmt.Errorf("version is too large for this platform")
	}

	return int(value), nil
}

func parseTarget(raw string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid target version %q: %w", raw, err)
	}
	return uint(value), nil
}

func ignoreNoChange(err error, logger *logging.Logger) error {
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return nil
	}
	return err
}

func closeMigrator(m *migrate.Migrate, logger *logging.Logger) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Warn("close migration source", "error", srcErr)
	}
	if dbErr != nil {
		logger.Warn("close migration db", "error", dbErr)
	}
}

func resolveMigrationsDir(flag string) (string, error) {
	candidates := []string{
		strings.TrimSpace(flag),
		strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")),
		"./db/migrations",
		"/app/db/migrations",
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			continue
		}
		return abs, nil
	}

	return "", fmt.Errorf("migration directory not found (checked --dir, MIGRATIONS_DIR, ./db/migrations, /app/db/migrations)")
}
