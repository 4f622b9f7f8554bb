package extraction

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/riskibarqy/epl-stats/internal/domain/fixture"
	"github.com/riskibarqy/epl-stats/internal/domain/leaguestanding"
	"github.com/riskibarqy/epl-stats/internal/domain/playerstats"
)

var ErrContainerNotFound = errors.New("container not found")

type ListingSelectors struct {
	Container   string `yaml:"container"`
	Row         string `yaml:"row"`
	Name        string `yaml:"name"`
	Position    string `yaml:"position"`
	Nationality string `yaml:"nationality"`
	LinkFrom    string `yaml:"link_from"`
	LinkTo      string `yaml:"link_to"`
}

// ParseListing reads the player search results. Links are resolved against
// baseURL and rewritten from the overview page to the stats page.
func ParseListing(doc *goquery.Selection, sel ListingSelectors, baseURL string) ([]playerstats.Listing, error) {
	container := doc.Find(sel.Container).First()
	if container.Length() == 0 {
		return nil, fmt.Errorf("player listing %q: %w", sel.Container, ErrContainerNotFound)
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	out := make([]playerstats.Listing, 0)
	container.Find(sel.Row).Each(func(_ int, row *goquery.Selection) {
		anchor := row.Find(sel.Name).First()
		name := CollapseSpace(anchor.Text())
		if name == "" {
			return
		}

		link := ""
		if href, ok := anchor.Attr("href"); ok && strings.TrimSpace(href) != "" {
			link = resolveLink(base, strings.TrimSpace(href))
			if sel.LinkFrom != "" {
				link = strings.Replace(link, sel.LinkFrom, sel.LinkTo, 1)
			}
		}

		out = append(out, playerstats.Listing{
			Name:        name,
			Link:        link,
			Position:    CollapseSpace(row.Find(sel.Position).First().Text()),
			Nationality: CollapseSpace(row.Find(sel.Nationality).First().Text()),
		})
	})
	return out, nil
}

func resolveLink(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

type TableSelectors struct {
	Body     string `yaml:"body"`
	Row      string `yaml:"row"`
	Cell     string `yaml:"cell"`
	ClubName string `yaml:"club_name"`
	Form     string `yaml:"form"`
}

// ParseLeagueTable reads the table rows. Cells are positional: position, club,
// played, won, drawn, lost, gf, ga, gd, points, form. Rows with fewer than ten
// cells are expansion rows and are skipped.
func ParseLeagueTable(doc *goquery.Selection, sel TableSelectors) ([]leaguestanding.TableRow, error) {
	body := doc.Find(sel.Body).First()
	if body.Length() == 0 {
		return nil, fmt.Errorf("league table %q: %w", sel.Body, ErrContainerNotFound)
	}

	cellSelector := sel.Cell
	if cellSelector == "" {
		cellSelector = "td"
	}

	out := make([]leaguestanding.TableRow, 0, 20)
	body.Find(sel.Row).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find(cellSelector)
		if cells.Length() < 10 {
			return
		}
		text := func(i int) string {
			return CollapseSpace(cells.Eq(i).Text())
		}

		club := text(1)
		if sel.ClubName != "" {
			if name := CollapseSpace(cells.Eq(1).Find(sel.ClubName).First().Text()); name != "" {
				club = name
			}
		}

		form := ""
		switch {
		case sel.Form != "" && row.Find(sel.Form).Length() > 0:
			form = row.Find(sel.Form).First().Text()
		case cells.Length() > 10:
			form = cells.Eq(10).Text()
		}

		position := text(0)
		if fields := strings.Fields(position); len(fields) > 0 {
			position = fields[0]
		}

		out = append(out, leaguestanding.TableRow{
			Position: position,
			Club:     club,
			Played:   text(2),
			Won:      text(3),
			Drawn:    text(4),
			Lost:     text(5),
			GF:       text(6),
			GA:       text(7),
			GD:       text(8),
			Points:   text(9),
			Form:     leaguestanding.CleanForm(form),
		})
	})
	return out, nil
}

type MatchSelectors struct {
	Item    string `yaml:"item"`
	HomeKey string `yaml:"home_attr"`
	AwayKey string `yaml:"away_attr"`
	TimeKey string `yaml:"time_attr"`
	Score   string `yaml:"score"`
	Time    string `yaml:"time"`
}

// ParseFixtures reads upcoming matches. Team names come from item attributes;
// kickoff time from the time attribute, or the time element when the
// attribute is absent.
func ParseFixtures(doc *goquery.Selection, sel MatchSelectors) []fixture.Fixture {
	out := make([]fixture.Fixture, 0)
	doc.Find(sel.Item).Each(func(_ int, item *goquery.Selection) {
		home, away, ok := teams(item, sel)
		if !ok {
			return
		}
		kickoff := attr(item, sel.TimeKey)
		if kickoff == "" && sel.Time != "" {
			kickoff = CollapseSpace(item.Find(sel.Time).First().Text())
		}
		out = append(out, fixture.Fixture{Home: home, Away: away, Time: kickoff})
	})
	return out
}

// ParseResults reads played matches and their scores.
func ParseResults(doc *goquery.Selection, sel MatchSelectors) []fixture.Result {
	out := make([]fixture.Result, 0)
	doc.Find(sel.Item).Each(func(_ int, item *goquery.Selection) {
		home, away, ok := teams(item, sel)
		if !ok {
			return
		}
		score := CollapseSpace(item.Find(sel.Score).First().Text())
		out = append(out, fixture.Result{Home: home, Away: away, Score: score})
	})
	return out
}

func teams(item *goquery.Selection, sel MatchSelectors) (string, string, bool) {
	home := attr(item, sel.HomeKey)
	away := attr(item, sel.AwayKey)
	return home, away, home != "" && away != ""
}

func attr(item *goquery.Selection, name string) string {
	if name == "" {
		return ""
	}
	value, _ := item.Attr(name)
	return CollapseSpace(value)
}
