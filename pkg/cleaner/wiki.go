package cleaner

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// wikiCruftSelectors matches the editorial chrome MediaWiki injects into
// rendered page HTML: section edit links, inline citation markers, citation
// back-links, and the table of contents. The class and id names follow
// English Wikipedia and Fandom conventions; wikis using different CSS
// conventions simply pass through unchanged.
var wikiCruftSelectors = []string{
	".mw-editsection",
	"sup.reference",
	"span.mw-cite-backlink",
	"#toc",
}

// WikiCleaner strips MediaWiki editorial cruft from rendered page HTML.
// Matching is structural (tag name plus class/id), never textual.
//
// Cleaning is best-effort: if the HTML cannot be parsed or re-serialized the
// input is returned unchanged. A no-op is acceptable degraded behavior here,
// not an error.
type WikiCleaner struct{}

// NewWiki creates a new MediaWiki cruft cleaner.
func NewWiki() *WikiCleaner {
	return &WikiCleaner{}
}

// Clean removes edit links, reference markers, citation back-links and the
// TOC block, then sweeps out superscripts left empty by those removals
// (e.g. bracket-only reference artifacts).
func (c *WikiCleaner) Clean(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html, nil
	}

	for _, sel := range wikiCruftSelectors {
		doc.Find(sel).Remove()
	}

	doc.Find("sup").Each(func(_ int, s *goquery.Selection) {
		if strings.TrimSpace(s.Text()) == "" {
			s.Remove()
		}
	})

	return serialize(doc, html), nil
}

// Name returns the cleaner type.
func (c *WikiCleaner) Name() string {
	return "wiki"
}

// serialize renders the document back to an HTML string.
// Uses the body children to skip the html/head wrapper goquery adds around
// fragments; falls back to the original input if rendering fails.
func serialize(doc *goquery.Document, original string) string {
	html, err := doc.Find("body").Html()
	if err != nil {
		html, err = doc.Html()
		if err != nil {
			return original
		}
	}
	return html
}
