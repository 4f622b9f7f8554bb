package extraction

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type SectionSpec struct {
	Name  string
	Label string
	Shape *Shape
}

type SectionRecord struct {
	Name   string
	Record Record
	Found  bool
}

// Composite is one entity's records: the summary counters plus one record per
// declared section, in declared order.
type Composite struct {
	Summary  Record
	Sections []SectionRecord
}

func (c Composite) Section(name string) (Record, bool) {
	for _, section := range c.Sections {
		if section.Name == name {
			return section.Record, true
		}
	}
	return Record{}, false
}

type Pipeline struct {
	Locator Locator
	Mapper  Mapper

	SummarySelector string
	SummaryItem     string
	SummaryKey      func(*goquery.Selection) string
	SummaryShape    *Shape
}

// ExtractEntity locates and maps every declared section of doc. Sections are
// processed in the order given; an absent section contributes its defaults.
func (p Pipeline) ExtractEntity(doc *goquery.Selection, sections []SectionSpec) Composite {
	out := Composite{Sections: make([]SectionRecord, 0, len(sections))}

	summaryShape := p.SummaryShape
	if summaryShape == nil {
		summaryShape = SummaryShape
	}
	out.Summary = p.extractSummary(doc, summaryShape)

	for _, spec := range sections {
		section := p.Locator.FindSection(doc, spec.Label)
		out.Sections = append(out.Sections, SectionRecord{
			Name:   spec.Name,
			Record: p.Mapper.MapSection(section, spec.Shape),
			Found:  section != nil,
		})
	}
	return out
}

func (p Pipeline) extractSummary(doc *goquery.Selection, shape *Shape) Record {
	if doc == nil || p.SummarySelector == "" {
		return shape.Defaults()
	}
	section := doc.Find(p.SummarySelector).First()
	if section.Length() == 0 {
		return shape.Defaults()
	}

	keyOf := p.SummaryKey
	if keyOf == nil {
		keyOf = StatKey("stat")
	}
	item := p.SummaryItem
	if item == "" {
		item = "*"
	}
	return p.Mapper.MapKeyed(section, item, shape, keyOf)
}

// ParseDocument parses page markup into a goquery selection rooted at the
// document.
func ParseDocument(markup string) (*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return doc.Selection, nil
}
