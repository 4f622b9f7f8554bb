package extraction

import (
	"fmt"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/bytedance/sonic"

	"github.com/riskibarqy/epl-stats/internal/domain/playerstats"
)

// PlayerSelectors locate the parts of a player stats page.
type PlayerSelectors struct {
	SummarySection string         `yaml:"summary_section"`
	SummaryItem    string         `yaml:"summary_item"`
	SummaryPrefix  string         `yaml:"summary_class_prefix"`
	StatSection    string         `yaml:"stat_section"`
	SectionHeading string         `yaml:"section_heading"`
	StatItem       string         `yaml:"stat_item"`
	StatValue      string         `yaml:"stat_value"`
	Sections       []SectionLabel `yaml:"sections"`
}

// SectionLabel ties a record section to the heading text used on the page.
type SectionLabel struct {
	Name  string `yaml:"name"`
	Label string `yaml:"label"`
}

type PlayerExtractor struct {
	pipeline Pipeline
	sections []SectionSpec
}

func NewPlayerExtractor(sel PlayerSelectors) (*PlayerExtractor, error) {
	sections := PlayerSections()
	if len(sel.Sections) > 0 {
		sections = make([]SectionSpec, 0, len(sel.Sections))
		for _, item := range sel.Sections {
			shape, ok := ShapeByName(item.Name)
			if !ok || shape == SummaryShape {
				return nil, fmt.Errorf("unknown player section %q", item.Name)
			}
			sections = append(sections, SectionSpec{Name: item.Name, Label: item.Label, Shape: shape})
		}
	}

	prefix := sel.SummaryPrefix
	if prefix == "" {
		prefix = "stat"
	}

	return &PlayerExtractor{
		pipeline: Pipeline{
			Locator: Locator{
				SectionSelector: sel.StatSection,
				HeadingSelector: sel.SectionHeading,
			},
			Mapper: Mapper{
				StatSelector:  sel.StatItem,
				ValueSelector: sel.StatValue,
			},
			SummarySelector: sel.SummarySection,
			SummaryItem:     sel.SummaryItem,
			SummaryKey:      StatKey(prefix),
			SummaryShape:    SummaryShape,
		},
		sections: sections,
	}, nil
}

func (e *PlayerExtractor) Composite(doc *goquery.Selection) Composite {
	return e.pipeline.ExtractEntity(doc, e.sections)
}

// Extract builds the typed stats for the player described by listing from a
// parsed stats page.
func (e *PlayerExtractor) Extract(doc *goquery.Selection, listing playerstats.Listing) (playerstats.PlayerStats, error) {
	composite := e.Composite(doc)

	out := playerstats.PlayerStats{
		PlayerName:  listing.Name,
		Position:    listing.Position,
		Nationality: listing.Nationality,
		Appearances: atoi(composite.Summary.Get("appearances")),
		Goals:       atoi(composite.Summary.Get("goals")),
		Wins:        atoi(composite.Summary.Get("wins")),
		Losses:      atoi(composite.Summary.Get("losses")),
	}

	targets := map[string]any{
		AttackShape.Name:     &out.Attack,
		TeamPlayShape.Name:   &out.TeamPlay,
		DisciplineShape.Name: &out.Discipline,
		DefenceShape.Name:    &out.Defence,
	}
	for name, target := range targets {
		rec, ok := composite.Section(name)
		if !ok {
			shape, _ := ShapeByName(name)
			rec = shape.Defaults()
		}
		if err := decodeRecord(rec, target); err != nil {
			return playerstats.PlayerStats{}, fmt.Errorf("decode %s section: %w", name, err)
		}
	}

	return out, nil
}

// ExtractMarkup is Extract over raw page markup.
func (e *PlayerExtractor) ExtractMarkup(markup string, listing playerstats.Listing) (playerstats.PlayerStats, error) {
	doc, err := ParseDocument(markup)
	if err != nil {
		return playerstats.PlayerStats{}, err
	}
	return e.Extract(doc, listing)
}

func decodeRecord(rec Record, target any) error {
	raw, err := sonic.Marshal(rec.Map())
	if err != nil {
		return err
	}
	return sonic.Unmarshal(raw, target)
}

func atoi(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
