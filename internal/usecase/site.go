package usecase

import "github.com/riskibarqy/epl-stats/internal/extraction"

// SiteLayout is what the scraping services need to know about the source
// website: page addresses, the selectors to wait on or click, and the parser
// selectors for each page.
type SiteLayout struct {
	BaseURL     string
	PlayersURL  string
	TablesURL   string
	FixturesURL string
	ResultsURL  string

	CookieAccept string
	SearchInput  string
	ListingReady string
	FirstTeamTab string
	TableReady   string
	MatchesReady string
	StatsReady   string

	Listing  extraction.ListingSelectors
	Table    extraction.TableSelectors
	Fixtures extraction.MatchSelectors
	Results  extraction.MatchSelectors
}
