package leaguestanding

import "context"

type Repository interface {
	InsertSnapshot(ctx context.Context, runID string, rows []TableRow) (int, error)
	ListSnapshot(ctx context.Context, runID string) ([]TableRow, error)
}
