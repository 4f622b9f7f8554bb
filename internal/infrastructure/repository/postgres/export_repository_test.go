package postgres

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/riskibarqy/epl-stats/internal/domain/fixture"
	"github.com/riskibarqy/epl-stats/internal/domain/leaguestanding"
)

func TestMatchResultInsertModels(t *testing.T) {
	t.Parallel()

	got := matchResultInsertModels("run-1", []fixture.Result{
		{Home: "Arsenal", Away: "Chelsea", Score: "2-1"},
		{Home: "Everton", Away: "Fulham", Score: "0-0"},
	})
	want := []matchResultInsertModel{
		{RunID: "run-1", Ordinal: 0, HomeTeam: "Arsenal", AwayTeam: "Chelsea", Score: "2-1"},
		{RunID: "run-1", Ordinal: 1, HomeTeam: "Everton", AwayTeam: "Fulham", Score: "0-0"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("models mismatch (-want +got):\n%s", diff)
	}
}

func TestLeagueTableInsertModels_TruncatesForm(t *testing.T) {
	t.Parallel()

	got := leagueTableInsertModels("run-1", []leaguestanding.TableRow{
		{Position: "1", Club: "Liverpool", Played: "30", GD: "+42", Points: "73", Form: "WDLWDLWW"},
	})
	if len(got) != 1 {
		t.Fatalf("unexpected model count: %d", len(got))
	}
	if got[0].Form != "LWDLWW" || got[0].GoalDifference != "+42" || got[0].RunID != "run-1" {
		t.Fatalf("unexpected model: %+v", got[0])
	}
}

func TestValidRunID(t *testing.T) {
	t.Parallel()

	if _, err := validRunID("  "); err == nil {
		t.Fatalf("expected error for blank run id")
	}
	got, err := validRunID(" abc ")
	if err != nil || got != "abc" {
		t.Fatalf("unexpected run id: %q err=%v", got, err)
	}
}

// TestExportRepositories_Postgres runs against a migrated database named by
// TEST_DB_URL and is skipped without one.
func TestExportRepositories_Postgres(t *testing.T) {
	dsn := strings.TrimSpace(os.Getenv("TEST_DB_URL"))
	if dsn == "" {
		t.Skip("TEST_DB_URL not set")
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	runID := uuid.NewString()

	results := []fixture.Result{
		{Home: "Arsenal", Away: "Chelsea", Score: "2-1"},
		{Home: "Everton", Away: "Fulham", Score: "0-0"},
	}
	resultRepo := NewMatchResultRepository(db)
	n, err := resultRepo.InsertResults(ctx, runID, results)
	if err != nil {
		t.Fatalf("insert results: %v", err)
	}
	if n != len(results) {
		t.Fatalf("unexpected inserted count: %d", n)
	}
	gotResults, err := resultRepo.ListResultsByRun(ctx, runID)
	if err != nil {
		t.Fatalf("list results: %v", err)
	}
	if diff := cmp.Diff(results, gotResults); diff != "" {
		t.Fatalf("results mismatch (-want +got):\n%s", diff)
	}

	rows := []leaguestanding.TableRow{
		{Position: "1", Club: "Liverpool", Played: "30", Won: "22", Drawn: "7", Lost: "1", GF: "69", GA: "27", GD: "+42", Points: "73", Form: "LWDLWW"},
	}
	tableRepo := NewLeagueTableRepository(db)
	if _, err := tableRepo.InsertSnapshot(ctx, runID, rows); err != nil {
		t.Fatalf("insert snapshot: %v", err)
	}
	gotRows, err := tableRepo.ListSnapshot(ctx, runID)
	if err != nil {
		t.Fatalf("list snapshot: %v", err)
	}
	if diff := cmp.Diff(rows, gotRows); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}
