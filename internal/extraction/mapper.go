package extraction

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Mapper turns the loose label/value pairs of a section into a Record.
type Mapper struct {
	// StatSelector matches one label/value element inside a section.
	StatSelector string
	// ValueSelector matches the element holding the value, either inside the
	// stat element or as its next sibling.
	ValueSelector string
}

// MapSection maps a located section onto shape. It never fails: a nil section
// yields the shape defaults, and missing or malformed stats fall back field by
// field.
func (m Mapper) MapSection(section *goquery.Selection, shape *Shape) Record {
	if section == nil || section.Length() == 0 {
		return shape.Defaults()
	}
	return resolve(shape, m.collect(section))
}

// MapKeyed maps a section whose items carry their key in markup (an attribute
// or class) rather than in leading text.
func (m Mapper) MapKeyed(section *goquery.Selection, itemSelector string, shape *Shape, keyOf func(*goquery.Selection) string) Record {
	if section == nil || section.Length() == 0 || keyOf == nil {
		return shape.Defaults()
	}

	pairs := make(map[string]string)
	section.Find(itemSelector).Each(func(_ int, item *goquery.Selection) {
		key := keyOf(item)
		if key == "" {
			return
		}
		if _, seen := pairs[key]; seen {
			return
		}
		pairs[key] = item.Text()
	})
	return resolve(shape, pairs)
}

func (m Mapper) collect(section *goquery.Selection) map[string]string {
	pairs := make(map[string]string)
	section.Find(m.StatSelector).Each(func(_ int, item *goquery.Selection) {
		container := m.valueContainer(item)
		if container == nil {
			return
		}

		label := leadingText(item)
		if label == "" {
			label = CollapseSpace(strings.Replace(item.Text(), container.Text(), "", 1))
		}
		key := CanonicalFieldName(label)
		if key == "" {
			return
		}
		if _, seen := pairs[key]; seen {
			return
		}
		pairs[key] = container.Text()
	})
	return pairs
}

func (m Mapper) valueContainer(item *goquery.Selection) *goquery.Selection {
	if m.ValueSelector != "" {
		if inner := item.Find(m.ValueSelector).First(); inner.Length() > 0 {
			return inner
		}
		if next := item.NextFiltered(m.ValueSelector); next.Length() > 0 {
			return next
		}
		return nil
	}
	if next := item.Next(); next.Length() > 0 {
		return next
	}
	return nil
}

func resolve(shape *Shape, pairs map[string]string) Record {
	rec := shape.Defaults()
	for i, field := range shape.Fields {
		for _, label := range field.candidates() {
			raw, ok := pairs[label]
			if !ok {
				continue
			}
			if value, ok := NormalizeValue(raw, field.Kind); ok {
				rec.values[i] = value
				break
			}
		}
	}
	return rec
}

// StatKey reads an item's key from its data-stat attribute, or from a class
// token carrying prefix ("statgoals" with prefix "stat" gives "goals").
func StatKey(prefix string) func(*goquery.Selection) string {
	return func(item *goquery.Selection) string {
		if key, ok := item.Attr("data-stat"); ok && strings.TrimSpace(key) != "" {
			return CanonicalFieldName(key)
		}
		class, _ := item.Attr("class")
		for _, token := range strings.Fields(class) {
			if prefix != "" && strings.HasPrefix(token, prefix) && len(token) > len(prefix) {
				return CanonicalFieldName(strings.TrimPrefix(token, prefix))
			}
		}
		return ""
	}
}
