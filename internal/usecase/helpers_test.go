package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/epl-stats/internal/extraction"
	"github.com/riskibarqy/epl-stats/internal/platform/cache"
	"github.com/riskibarqy/epl-stats/internal/platform/logging"
)

const testBaseURL = "https://www.premierleague.com"

// fakePage serves canned markup per URL. Selectors in missing never appear.
type fakePage struct {
	mu       sync.Mutex
	pages    map[string]string
	search   map[string]string
	missing  map[string]bool
	url      string
	content  string
	filled   string
	visits   []string
	clicks   []string
	gotoErrs map[string]error
}

func newFakePage() *fakePage {
	return &fakePage{
		pages:    map[string]string{},
		search:   map[string]string{},
		missing:  map[string]bool{},
		gotoErrs: map[string]error{},
	}
}

func (p *fakePage) Goto(ctx context.Context, url string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	p.visits = append(p.visits, url)
	if err, ok := p.gotoErrs[url]; ok {
		return err
	}
	markup, ok := p.pages[url]
	if !ok {
		return fmt.Errorf("%w: navigate %s: 404", ErrUpstream, url)
	}
	p.url = url
	p.content = markup
	return nil
}

func (p *fakePage) WaitForSelector(ctx context.Context, selector string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.missing[selector] {
		return fmt.Errorf("%w: wait for %s: %v", ErrUpstream, selector, context.DeadlineExceeded)
	}
	return ctx.Err()
}

func (p *fakePage) Fill(_ context.Context, _ string, text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.filled = text
	return nil
}

func (p *fakePage) Click(_ context.Context, selector string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.clicks = append(p.clicks, selector)
	return nil
}

func (p *fakePage) PressKey(_ context.Context, key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if key != KeyEnter {
		return fmt.Errorf("unexpected key %q", key)
	}
	if markup, ok := p.search[p.filled]; ok {
		p.content = markup
	}
	return nil
}

func (p *fakePage) Content(context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.content, nil
}

func (p *fakePage) visited(url string) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, v := range p.visits {
		if v == url {
			n++
		}
	}
	return n
}

type fakeOpener struct {
	page     Page
	err      error
	opens    atomic.Int32
	releases atomic.Int32
}

func (o *fakeOpener) OpenPage(context.Context) (Page, func(), error) {
	o.opens.Add(1)
	if o.err != nil {
		return nil, nil, o.err
	}
	return o.page, func() { o.releases.Add(1) }, nil
}

func loadMarkup(t *testing.T, name string) string {
	t.Helper()

	raw, err := os.ReadFile(filepath.Join("..", "extraction", "testdata", name))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return string(raw)
}

func testSite() SiteLayout {
	return SiteLayout{
		BaseURL:     testBaseURL,
		PlayersURL:  testBaseURL + "/players",
		TablesURL:   testBaseURL + "/tables",
		FixturesURL: testBaseURL + "/fixtures",
		ResultsURL:  testBaseURL + "/results",

		CookieAccept: "#onetrust-accept-btn-handler",
		SearchInput:  "input.search",
		ListingReady: "tbody.dataContainer.indexSection",
		FirstTeamTab: "li.first-team",
		TableReady:   "table tbody",
		MatchesReady: "li.match-fixture",
		StatsReady:   "div.player-stats__top-stats",

		Listing: extraction.ListingSelectors{
			Container:   "tbody.dataContainer.indexSection",
			Row:         "tr.player",
			Name:        "a.player__name",
			Position:    "td.player__position",
			Nationality: "span.player__country",
			LinkFrom:    "overview",
			LinkTo:      "stats",
		},
		Table: extraction.TableSelectors{
			Body:     "#mainContent div.league-table__all-tables-container.allTablesContainer table tbody",
			Row:      "tr",
			Cell:     "td",
			ClubName: "span.league-table__team-name--long",
			Form:     "td.league-table__form",
		},
		Fixtures: extraction.MatchSelectors{
			Item:    "li.match-fixture",
			HomeKey: "data-home",
			AwayKey: "data-away",
			TimeKey: "data-time",
			Time:    "time",
		},
		Results: extraction.MatchSelectors{
			Item:    "li.match-fixture",
			HomeKey: "data-home",
			AwayKey: "data-away",
			Score:   ".match-fixture__score",
		},
	}
}

func testExtractor(t *testing.T) *extraction.PlayerExtractor {
	t.Helper()

	extractor, err := extraction.NewPlayerExtractor(extraction.PlayerSelectors{
		SummarySection: "div.player-stats__top-stats",
		SummaryItem:    "span",
		SummaryPrefix:  "stat",
		StatSection:    "li.player-stats__stat",
		SectionHeading: "div",
		StatItem:       "div.player-stats__stat-value",
		StatValue:      "span.allStatContainer",
	})
	if err != nil {
		t.Fatalf("new extractor: %v", err)
	}
	return extractor
}

func testCache() *cache.ResultCache {
	return cache.NewResultCache(cache.NewMemoryBackend(), cache.Options{
		TTL:                time.Minute,
		SingleFlight:       true,
		MaterializeStreams: true,
		Logger:             logging.NewNop(),
	})
}

// salahSite wires a page where searching "Salah" lists two players, only the
// first of whom has a stats page with data.
func salahSite(t *testing.T) *fakePage {
	t.Helper()

	page := newFakePage()
	page.pages[testBaseURL+"/players"] = `<html><body><input class="search"></body></html>`
	page.search["Salah"] = loadMarkup(t, "player_listing.html")
	page.pages[testBaseURL+"/players/5178/Mohamed-Salah/stats"] = loadMarkup(t, "player_stats.html")
	page.pages[testBaseURL+"/players/65970/Salah-Eddine/stats"] = `<html><body><p>maintenance</p></body></html>`
	page.missing["#onetrust-accept-btn-handler"] = true
	return page
}
