package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/epl-stats/internal/platform/logging"
)

func tableSite(t *testing.T) *fakePage {
	t.Helper()

	page := newFakePage()
	page.pages[testBaseURL+"/tables"] = loadMarkup(t, "league_table.html")
	return page
}

func TestLeagueTableService_Table(t *testing.T) {
	t.Parallel()

	page := tableSite(t)
	opener := &fakeOpener{page: page}
	results := testCache()
	service := NewLeagueTableService(opener, testSite(), results, logging.NewNop())

	rows, err := service.Table(context.Background())
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("unexpected row count: got=%d want=2", len(rows))
	}
	if rows[0].Club != "Liverpool" || rows[0].Position != "1" || rows[0].Form != "LWDLWW" {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}

	// Cookie banner and first-team tab are both clicked before reading.
	if len(page.clicks) != 2 || page.clicks[0] != "#onetrust-accept-btn-handler" || page.clicks[1] != "li.first-team" {
		t.Fatalf("unexpected clicks: %v", page.clicks)
	}

	again, err := service.Table(context.Background())
	if err != nil {
		t.Fatalf("cached table: %v", err)
	}
	if len(again) != len(rows) {
		t.Fatalf("cached table differs: got=%d want=%d", len(again), len(rows))
	}
	if opens := opener.opens.Load(); opens != 1 {
		t.Fatalf("cache hit should not open a page, opens=%d", opens)
	}
	if stats := results.Stats(); stats.Hits != 1 || stats.Misses != 1 {
		t.Fatalf("unexpected cache stats: %+v", stats)
	}
}

func TestLeagueTableService_Table_MissingTable(t *testing.T) {
	t.Parallel()

	page := newFakePage()
	page.pages[testBaseURL+"/tables"] = `<html><body><p>down for maintenance</p></body></html>`
	service := NewLeagueTableService(&fakeOpener{page: page}, testSite(), testCache(), logging.NewNop())

	_, err := service.Table(context.Background())
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestLeagueTableService_Table_TabNeverAppears(t *testing.T) {
	t.Parallel()

	page := tableSite(t)
	page.missing["li.first-team"] = true
	service := NewLeagueTableService(&fakeOpener{page: page}, testSite(), nil, logging.NewNop())

	_, err := service.Table(context.Background())
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}
