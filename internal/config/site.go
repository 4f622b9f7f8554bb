package config

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/riskibarqy/epl-stats/internal/extraction"
)

//go:embed site.yaml
var defaultSite []byte

// Site describes where pages live on the source website and how to read them.
type Site struct {
	BaseURL    string                      `yaml:"base_url"`
	Paths      SitePaths                   `yaml:"paths"`
	Navigation Navigation                  `yaml:"navigation"`
	Listing    extraction.ListingSelectors `yaml:"listing"`
	Player     extraction.PlayerSelectors  `yaml:"player"`
	Table      extraction.TableSelectors   `yaml:"table"`
	Fixtures   extraction.MatchSelectors   `yaml:"fixtures"`
	Results    extraction.MatchSelectors   `yaml:"results"`
}

type SitePaths struct {
	Players  string `yaml:"players"`
	Tables   string `yaml:"tables"`
	Fixtures string `yaml:"fixtures"`
	Results  string `yaml:"results"`
}

// Navigation holds the selectors the browser waits for or interacts with.
type Navigation struct {
	CookieAccept string `yaml:"cookie_accept"`
	SearchInput  string `yaml:"search_input"`
	ListingReady string `yaml:"listing_ready"`
	FirstTeamTab string `yaml:"first_team_tab"`
	TableReady   string `yaml:"table_ready"`
	MatchesReady string `yaml:"matches_ready"`
	StatsReady   string `yaml:"stats_ready"`
}

func (s Site) URL(path string) string {
	return strings.TrimRight(s.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// LoadSite returns the embedded site description, overlaid with the YAML file
// at path when one is given. A non-empty baseURL replaces the configured one.
func LoadSite(path, baseURL string) (Site, error) {
	var site Site
	if err := yaml.Unmarshal(defaultSite, &site); err != nil {
		return Site{}, fmt.Errorf("parse embedded site config: %w", err)
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Site{}, fmt.Errorf("read SITE_SELECTORS_FILE: %w", err)
		}
		if err := yaml.Unmarshal(raw, &site); err != nil {
			return Site{}, fmt.Errorf("parse SITE_SELECTORS_FILE: %w", err)
		}
	}

	if strings.TrimSpace(baseURL) != "" {
		site.BaseURL = strings.TrimSpace(baseURL)
	}
	if err := site.validate(); err != nil {
		return Site{}, err
	}
	return site, nil
}

func (s Site) validate() error {
	required := map[string]string{
		"base_url":                s.BaseURL,
		"paths.players":           s.Paths.Players,
		"paths.tables":            s.Paths.Tables,
		"paths.fixtures":          s.Paths.Fixtures,
		"paths.results":           s.Paths.Results,
		"navigation.search_input": s.Navigation.SearchInput,
		"listing.container":       s.Listing.Container,
		"listing.row":             s.Listing.Row,
		"listing.name":            s.Listing.Name,
		"player.stat_section":     s.Player.StatSection,
		"player.stat_item":        s.Player.StatItem,
		"table.body":              s.Table.Body,
		"table.row":               s.Table.Row,
		"fixtures.item":           s.Fixtures.Item,
		"results.item":            s.Results.Item,
	}
	missing := make([]string, 0)
	for key, value := range required {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return fmt.Errorf("site config is missing %s", strings.Join(missing, ", "))
	}
	return nil
}
