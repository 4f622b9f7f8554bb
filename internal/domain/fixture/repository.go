package fixture

import "context"

// ResultRepository persists exported results.
type ResultRepository interface {
	InsertResults(ctx context.Context, runID string, results []Result) (int, error)
	ListResultsByRun(ctx context.Context, runID string) ([]Result, error)
}
