package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/epl-stats/internal/domain/leaguestanding"
)

const insertLeagueTableSnapshotQuery = `INSERT INTO league_table_snapshots (
    run_id, ordinal, position, club, played, won, drawn, lost,
    goals_for, goals_against, goal_difference, points, form
) VALUES (
    :run_id, :ordinal, :position, :club, :played, :won, :drawn, :lost,
    :goals_for, :goals_against, :goal_difference, :points, :form
)`

const listLeagueTableSnapshotQuery = `SELECT id, run_id, ordinal, position, club, played, won, drawn, lost,
    goals_for, goals_against, goal_difference, points, form, created_at
FROM league_table_snapshots
WHERE run_id = $1
ORDER BY ordinal, id`

type LeagueTableRepository struct {
	db *sqlx.DB
}

func NewLeagueTableRepository(db *sqlx.DB) *LeagueTableRepository {
	return &LeagueTableRepository{db: db}
}

func (r *LeagueTableRepository) InsertSnapshot(ctx context.Context, runID string, rows []leaguestanding.TableRow) (int, error) {
	runID, err := validRunID(runID)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	models := leagueTableInsertModels(runID, rows)
	inserted := 0
	err = withTx(ctx, r.db, "insert league table snapshot", func(tx *sqlx.Tx) error {
		n, err := insertNamed(ctx, tx, insertLeagueTableSnapshotQuery, models)
		if err != nil {
			return fmt.Errorf("insert league table snapshot run=%s: %w", runID, err)
		}
		inserted = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func (r *LeagueTableRepository) ListSnapshot(ctx context.Context, runID string) ([]leaguestanding.TableRow, error) {
	var rows []leagueTableSnapshotTableModel
	if err := r.db.SelectContext(ctx, &rows, listLeagueTableSnapshotQuery, runID); err != nil {
		return nil, fmt.Errorf("list league table snapshot run=%s: %w", runID, err)
	}

	out := make([]leaguestanding.TableRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, leaguestanding.TableRow{
			Position: row.Position,
			Club:     row.Club,
			Played:   row.Played,
			Won:      row.Won,
			Drawn:    row.Drawn,
			Lost:     row.Lost,
			GF:       row.GoalsFor,
			GA:       row.GoalsAgainst,
			GD:       row.GoalDifference,
			Points:   row.Points,
			Form:     row.Form,
		})
	}
	return out, nil
}

func leagueTableInsertModels(runID string, rows []leaguestanding.TableRow) []leagueTableSnapshotInsertModel {
	out := make([]leagueTableSnapshotInsertModel, 0, len(rows))
	for i, row := range rows {
		out = append(out, leagueTableSnapshotInsertModel{
			RunID:          runID,
			Ordinal:        i,
			Position:       row.Position,
			Club:           row.Club,
			Played:         row.Played,
			Won:            row.Won,
			Drawn:          row.Drawn,
			Lost:           row.Lost,
			GoalsFor:       row.GF,
			GoalsAgainst:   row.GA,
			GoalDifference: row.GD,
			Points:         row.Points,
			Form:           leaguestanding.CleanForm(row.Form),
		})
	}
	return out
}
