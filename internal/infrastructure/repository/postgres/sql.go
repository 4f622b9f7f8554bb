package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// insertBatchSize keeps a single multi-row insert well below the postgres
// limit of 65535 bind parameters.
const insertBatchSize = 500

// withTx runs fn in a transaction and commits when it returns nil.
func withTx(ctx context.Context, db *sqlx.DB, name string, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx %s: %w", name, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s tx: %w", name, err)
	}
	return nil
}

// insertNamed inserts rows with one named multi-row statement per batch.
func insertNamed[T any](ctx context.Context, tx *sqlx.Tx, query string, rows []T) (int, error) {
	inserted := 0
	for start := 0; start < len(rows); start += insertBatchSize {
		end := min(start+insertBatchSize, len(rows))
		res, err := tx.NamedExecContext(ctx, query, rows[start:end])
		if err != nil {
			return inserted, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			n = int64(end - start)
		}
		inserted += int(n)
	}
	return inserted, nil
}

func validRunID(runID string) (string, error) {
	runID = strings.TrimSpace(runID)
	if runID == "" {
		return "", fmt.Errorf("run id is required")
	}
	return runID, nil
}
