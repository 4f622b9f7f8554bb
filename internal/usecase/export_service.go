package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/epl-stats/internal/domain/fixture"
	"github.com/riskibarqy/epl-stats/internal/domain/leaguestanding"
	"github.com/riskibarqy/epl-stats/internal/platform/id"
	"github.com/riskibarqy/epl-stats/internal/platform/logging"
)

type ExportResult struct {
	RunID      string `json:"run_id"`
	Results    int    `json:"results"`
	TableRows  int    `json:"table_rows"`
	DurationMs int64  `json:"duration_ms"`
}

// ExportService scrapes match results and the league table and stores both
// under one run id.
type ExportService struct {
	matches     *MatchService
	table       *LeagueTableService
	resultRepo  fixture.ResultRepository
	tableRepo   leaguestanding.Repository
	idGenerator id.Generator
	logger      *logging.Logger
}

func NewExportService(
	matches *MatchService,
	table *LeagueTableService,
	resultRepo fixture.ResultRepository,
	tableRepo leaguestanding.Repository,
	idGenerator id.Generator,
	logger *logging.Logger,
) *ExportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ExportService{
		matches:     matches,
		table:       table,
		resultRepo:  resultRepo,
		tableRepo:   tableRepo,
		idGenerator: idGenerator,
		logger:      logger.With("component", "export_service"),
	}
}

func (s *ExportService) Export(ctx context.Context) (ExportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExportService.Export")
	defer span.End()

	if s.resultRepo == nil || s.tableRepo == nil {
		return ExportResult{}, fmt.Errorf("%w: export storage is not configured", ErrDependencyUnavailable)
	}

	runID, err := s.idGenerator.NewID()
	if err != nil {
		return ExportResult{}, fmt.Errorf("generate run id: %w", err)
	}

	start := time.Now()
	out := ExportResult{RunID: runID}

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		items, err := s.matches.Results(ctx)
		if err != nil {
			return err
		}
		n, err := s.resultRepo.InsertResults(ctx, runID, items)
		if err != nil {
			return fmt.Errorf("store results: %w", err)
		}
		out.Results = n
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rows, err := s.table.Table(ctx)
		if err != nil {
			return err
		}
		n, err := s.tableRepo.InsertSnapshot(ctx, runID, rows)
		if err != nil {
			return fmt.Errorf("store league table: %w", err)
		}
		out.TableRows = n
		return nil
	})
	if err := p.Wait(); err != nil {
		return ExportResult{}, fmt.Errorf("export run %s: %w", runID, err)
	}

	out.DurationMs = time.Since(start).Milliseconds()
	s.logger.InfoContext(ctx, "export finished",
		"run_id", runID,
		"results", out.Results,
		"table_rows", out.TableRows,
	)
	return out, nil
}
