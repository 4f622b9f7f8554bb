package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/epl-stats/internal/domain/fixture"
)

const insertMatchResultQuery = `INSERT INTO match_results (run_id, ordinal, home_team, away_team, score)
VALUES (:run_id, :ordinal, :home_team, :away_team, :score)`

const listMatchResultsQuery = `SELECT id, run_id, ordinal, home_team, away_team, score, created_at
FROM match_results
WHERE run_id = $1
ORDER BY ordinal, id`

type MatchResultRepository struct {
	db *sqlx.DB
}

func NewMatchResultRepository(db *sqlx.DB) *MatchResultRepository {
	return &MatchResultRepository{db: db}
}

func (r *MatchResultRepository) InsertResults(ctx context.Context, runID string, results []fixture.Result) (int, error) {
	runID, err := validRunID(runID)
	if err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}

	rows := matchResultInsertModels(runID, results)
	inserted := 0
	err = withTx(ctx, r.db, "insert match results", func(tx *sqlx.Tx) error {
		n, err := insertNamed(ctx, tx, insertMatchResultQuery, rows)
		if err != nil {
			return fmt.Errorf("insert match results run=%s: %w", runID, err)
		}
		inserted = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func (r *MatchResultRepository) ListResultsByRun(ctx context.Context, runID string) ([]fixture.Result, error) {
	var rows []matchResultTableModel
	if err := r.db.SelectContext(ctx, &rows, listMatchResultsQuery, runID); err != nil {
		return nil, fmt.Errorf("list match results run=%s: %w", runID, err)
	}

	out := make([]fixture.Result, 0, len(rows))
	for _, row := range rows {
		out = append(out, fixture.Result{
			Home:  row.HomeTeam,
			Away:  row.AwayTeam,
			Score: row.Score,
		})
	}
	return out, nil
}

func matchResultInsertModels(runID string, results []fixture.Result) []matchResultInsertModel {
	out := make([]matchResultInsertModel, 0, len(results))
	for i, item := range results {
		out = append(out, matchResultInsertModel{
			RunID:    runID,
			Ordinal:  i,
			HomeTeam: item.Home,
			AwayTeam: item.Away,
			Score:    item.Score,
		})
	}
	return out
}
