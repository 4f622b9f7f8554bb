package app

import (
	"github.com/riskibarqy/epl-stats/internal/config"
	"github.com/riskibarqy/epl-stats/internal/usecase"
)

func siteLayout(site config.Site) usecase.SiteLayout {
	return usecase.SiteLayout{
		BaseURL:     site.BaseURL,
		PlayersURL:  site.URL(site.Paths.Players),
		TablesURL:   site.URL(site.Paths.Tables),
		FixturesURL: site.URL(site.Paths.Fixtures),
		ResultsURL:  site.URL(site.Paths.Results),

		CookieAccept: site.Navigation.CookieAccept,
		SearchInput:  site.Navigation.SearchInput,
		ListingReady: site.Navigation.ListingReady,
		FirstTeamTab: site.Navigation.FirstTeamTab,
		TableReady:   site.Navigation.TableReady,
		MatchesReady: site.Navigation.MatchesReady,
		StatsReady:   site.Navigation.StatsReady,

		Listing:  site.Listing,
		Table:    site.Table,
		Fixtures: site.Fixtures,
		Results:  site.Results,
	}
}
