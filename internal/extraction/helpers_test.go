package extraction

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func loadFixture(t *testing.T, name string) *goquery.Selection {
	t.Helper()

	raw, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return parseMarkup(t, string(raw))
}

func parseMarkup(t *testing.T, markup string) *goquery.Selection {
	t.Helper()

	doc, err := ParseDocument(markup)
	if err != nil {
		t.Fatalf("parse markup: %v", err)
	}
	return doc
}

func testPlayerSelectors() PlayerSelectors {
	return PlayerSelectors{
		SummarySection: "div.player-stats__top-stats",
		SummaryItem:    "span",
		SummaryPrefix:  "stat",
		StatSection:    "li.player-stats__stat",
		SectionHeading: "div",
		StatItem:       "div.player-stats__stat-value",
		StatValue:      "span.allStatContainer",
	}
}

func testLocator() Locator {
	sel := testPlayerSelectors()
	return Locator{SectionSelector: sel.StatSection, HeadingSelector: sel.SectionHeading}
}

func testMapper() Mapper {
	sel := testPlayerSelectors()
	return Mapper{StatSelector: sel.StatItem, ValueSelector: sel.StatValue}
}
