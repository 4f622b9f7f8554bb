package app

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/epl-stats/internal/config"
	"github.com/riskibarqy/epl-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/epl-stats/internal/platform/id"
	"github.com/riskibarqy/epl-stats/internal/usecase"
)

const (
	dbPingTimeout        = 5 * time.Second
	maxTracedQueryLength = 512
)

var queryWhitespaceRegex = regexp.MustCompile(`\s+`)

// DatabaseURL is the configured DB_URL with driver flags applied.
func DatabaseURL(cfg config.Config) string {
	return normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinaryResult)
}

// OpenDB connects to the export database. The connection is closed with the
// runtime.
func (rt *Runtime) OpenDB(ctx context.Context) (*sqlx.DB, error) {
	dsn := DatabaseURL(rt.Config)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %v", usecase.ErrDependencyUnavailable, err)
	}
	db.SetMaxOpenConns(4)
	db.SetConnMaxIdleTime(time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping database: %v", usecase.ErrDependencyUnavailable, err)
	}

	otelsql.ReportDBStatsMetrics(db.DB, otelsql.WithDBName(dbNameFromURL(dsn)))
	rt.closers = append(rt.closers, db.Close)
	rt.Logger.InfoContext(ctx, "database connected", "db_name", dbNameFromURL(dsn))
	return db, nil
}

func (rt *Runtime) NewExportService(ctx context.Context) (*usecase.ExportService, error) {
	db, err := rt.OpenDB(ctx)
	if err != nil {
		return nil, err
	}
	return usecase.NewExportService(
		rt.Matches,
		rt.Table,
		postgres.NewMatchResultRepository(db),
		postgres.NewLeagueTableRepository(db),
		id.NewUUIDGenerator(),
		rt.Logger,
	), nil
}

// formatDBQueryForTrace collapses whitespace in the batch insert statements
// and caps their length so spans stay readable.
func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := queryWhitespaceRegex.ReplaceAllString(query, " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	return normalized[:maxTracedQueryLength] + "..."
}
