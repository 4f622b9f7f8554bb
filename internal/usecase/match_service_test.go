package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/riskibarqy/epl-stats/internal/domain/fixture"
	"github.com/riskibarqy/epl-stats/internal/platform/logging"
)

func matchSite(t *testing.T) *fakePage {
	t.Helper()

	page := newFakePage()
	markup := loadMarkup(t, "matches.html")
	page.pages[testBaseURL+"/fixtures"] = markup
	page.pages[testBaseURL+"/results"] = markup
	return page
}

func TestMatchService_Fixtures(t *testing.T) {
	t.Parallel()

	service := NewMatchService(&fakeOpener{page: matchSite(t)}, testSite(), testCache(), logging.NewNop())

	got, err := service.Fixtures(context.Background())
	if err != nil {
		t.Fatalf("fixtures: %v", err)
	}
	want := []fixture.Fixture{
		{Home: "Arsenal", Away: "Chelsea", Time: "15:00"},
		{Home: "Everton", Away: "Fulham", Time: "17:30"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fixtures mismatch (-want +got):\n%s", diff)
	}
}

func TestMatchService_Results_Cached(t *testing.T) {
	t.Parallel()

	page := matchSite(t)
	opener := &fakeOpener{page: page}
	service := NewMatchService(opener, testSite(), testCache(), logging.NewNop())

	want := []fixture.Result{
		{Home: "Arsenal", Away: "Chelsea", Score: "2-1"},
		{Home: "Everton", Away: "Fulham", Score: "0 - 0"},
	}
	for i := 0; i < 2; i++ {
		got, err := service.Results(context.Background())
		if err != nil {
			t.Fatalf("results %d: %v", i, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("results mismatch (-want +got):\n%s", diff)
		}
	}
	if n := page.visited(testBaseURL + "/results"); n != 1 {
		t.Fatalf("results page fetched %d times", n)
	}
}

func TestMatchService_Results_NavigationFailure(t *testing.T) {
	t.Parallel()

	page := newFakePage()
	page.gotoErrs[testBaseURL+"/results"] = ErrDependencyUnavailable
	service := NewMatchService(&fakeOpener{page: page}, testSite(), testCache(), logging.NewNop())

	_, err := service.Results(context.Background())
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
