package cleaner

import (
	"bytes"
	"strings"

	readability "codeberg.org/readeck/go-readability/v2"
	"github.com/yosssi/gohtml"
	"golang.org/x/net/html"
)

// ReadabilityConfig configures the Readability cleaner.
type ReadabilityConfig struct {
	// CharThreshold is the minimum character count for valid content.
	// Zero uses the library default (500). MediaWiki stubs can be short,
	// so callers may want to lower this.
	CharThreshold int
	// ClassesToPreserve specifies CSS classes to keep on elements.
	ClassesToPreserve []string
}

// ReadabilityCleaner extracts the main article content from a page using
// go-readability (a port of Mozilla's Readability.js). It emits HTML so it
// can be chained in front of other cleaners and the markdown converter.
//
// Like the other cleaners it degrades to a no-op: if extraction fails or
// produces nothing, the original HTML is returned.
type ReadabilityCleaner struct {
	parser readability.Parser
}

// NewReadability creates a new Readability cleaner.
// Pass nil for default configuration.
func NewReadability(cfg *ReadabilityConfig) *ReadabilityCleaner {
	if cfg == nil {
		cfg = &ReadabilityConfig{}
	}

	parser := readability.NewParser()
	if cfg.CharThreshold > 0 {
		parser.CharThresholds = cfg.CharThreshold
	}
	if len(cfg.ClassesToPreserve) > 0 {
		parser.ClassesToPreserve = cfg.ClassesToPreserve
	}

	return &ReadabilityCleaner{parser: parser}
}

// Clean extracts the main content from HTML and returns it as HTML.
func (c *ReadabilityCleaner) Clean(htmlContent string) (string, error) {
	article, err := c.parser.Parse(strings.NewReader(htmlContent), nil)
	if err != nil {
		return htmlContent, nil
	}
	if article.Node == nil {
		return htmlContent, nil
	}

	var buf bytes.Buffer
	if err := article.RenderHTML(&buf); err != nil {
		// Fall back to rendering the node directly
		var nodeBuf bytes.Buffer
		if err := html.Render(&nodeBuf, article.Node); err != nil {
			return htmlContent, nil
		}
		return gohtml.Format(nodeBuf.String()), nil
	}

	result := buf.String()
	if result == "" {
		return htmlContent, nil
	}
	return gohtml.Format(result), nil
}

// Name returns the cleaner type.
func (c *ReadabilityCleaner) Name() string {
	return "readability"
}
