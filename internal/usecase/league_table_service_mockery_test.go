package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/epl-stats/internal/extraction"
	usecasemock "github.com/riskibarqy/epl-stats/internal/mocks/usecase"
	"github.com/riskibarqy/epl-stats/internal/platform/logging"
	"github.com/riskibarqy/epl-stats/internal/usecase"
)

func TestLeagueTableService_Table_UpstreamFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	opener := usecasemock.NewPageOpener(t)
	page := usecasemock.NewPage(t)

	released := 0
	opener.
		On("OpenPage", mock.Anything).
		Return(page, func() { released++ }, nil).
		Once()
	page.
		On("Goto", mock.Anything, "https://example.test/tables").
		Return(fmt.Errorf("%w: net::ERR_NAME_NOT_RESOLVED", usecase.ErrUpstream)).
		Once()

	service := usecase.NewLeagueTableService(opener, usecase.SiteLayout{
		BaseURL:   "https://example.test",
		TablesURL: "https://example.test/tables",
	}, nil, logging.NewNop())

	_, err := service.Table(ctx)
	if !errors.Is(err, usecase.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if released != 1 {
		t.Fatalf("page released %d times", released)
	}
}

func TestMatchService_Fixtures_NoTabUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	opener := usecasemock.NewPageOpener(t)
	page := usecasemock.NewPage(t)

	opener.
		On("OpenPage", mock.Anything).
		Return(page, func() {}, nil).
		Once()
	page.On("Goto", mock.Anything, "https://example.test/fixtures").Return(nil).Once()
	page.On("WaitForSelector", mock.Anything, "li.match-fixture").Return(nil).Once()
	page.
		On("Content", mock.Anything).
		Return(`<ul><li class="match-fixture" data-home="Leeds" data-away="Spurs" data-time="20:00"></li></ul>`, nil).
		Once()

	service := usecase.NewMatchService(opener, usecase.SiteLayout{
		FixturesURL:  "https://example.test/fixtures",
		MatchesReady: "li.match-fixture",
		Fixtures: extraction.MatchSelectors{
			Item:    "li.match-fixture",
			HomeKey: "data-home",
			AwayKey: "data-away",
			TimeKey: "data-time",
		},
	}, nil, logging.NewNop())

	got, err := service.Fixtures(ctx)
	if err != nil {
		t.Fatalf("fixtures: %v", err)
	}
	if len(got) != 1 || got[0].Home != "Leeds" || got[0].Time != "20:00" {
		t.Fatalf("unexpected fixtures: %+v", got)
	}
}
