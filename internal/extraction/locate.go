package extraction

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Locator finds labeled stat sections in a parsed page.
type Locator struct {
	SectionSelector string
	HeadingSelector string
}

// FindSection returns the first section, in document order, that has a heading
// whose text matches label. The label is a case-sensitive regular expression
// and is matched literally when it does not compile. A nil return means the
// section is absent from the page.
func (l Locator) FindSection(doc *goquery.Selection, label string) *goquery.Selection {
	if doc == nil || l.SectionSelector == "" || strings.TrimSpace(label) == "" {
		return nil
	}

	pattern := compileLabel(label)
	var found *goquery.Selection
	doc.Find(l.SectionSelector).EachWithBreak(func(_ int, section *goquery.Selection) bool {
		if l.headingMatches(section, pattern) {
			found = section
			return false
		}
		return true
	})
	return found
}

func (l Locator) headingMatches(section *goquery.Selection, pattern *regexp.Regexp) bool {
	headings := section.Children()
	if l.HeadingSelector != "" {
		headings = section.Find(l.HeadingSelector)
	}

	matched := false
	headings.EachWithBreak(func(_ int, heading *goquery.Selection) bool {
		text, ok := soleText(heading)
		if ok && pattern.MatchString(text) {
			matched = true
			return false
		}
		return true
	})
	return matched
}

func compileLabel(label string) *regexp.Regexp {
	if re, err := regexp.Compile(label); err == nil {
		return re
	}
	return regexp.MustCompile(regexp.QuoteMeta(label))
}

// soleText returns the text of an element whose only children are text nodes.
// Elements with nested markup are stat rows, not headings.
func soleText(sel *goquery.Selection) (string, bool) {
	if sel.Length() == 0 {
		return "", false
	}
	var b strings.Builder
	for child := sel.Nodes[0].FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.TextNode:
			b.WriteString(child.Data)
		case html.CommentNode:
		default:
			return "", false
		}
	}
	text := strings.TrimSpace(b.String())
	return text, text != ""
}

// leadingText returns the text nodes that precede the first child element.
func leadingText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	var b strings.Builder
	for child := sel.Nodes[0].FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			break
		}
		if child.Type == html.TextNode {
			b.WriteString(child.Data)
		}
	}
	return CollapseSpace(b.String())
}
