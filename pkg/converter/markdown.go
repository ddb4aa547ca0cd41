package converter

import (
	"fmt"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// MarkdownStrategy is the preferred conversion strategy. It uses the
// configurable html-to-markdown converter with ATX-style headings and
// script/style elements removed before emission.
//
// If the configured converter fails, the same library is retried with
// default options for maximum compatibility before giving up and letting
// the chain fall through.
type MarkdownStrategy struct {
	conv    *md.Converter
	minimal *md.Converter
}

// NewMarkdown creates the preferred markdown conversion strategy.
func NewMarkdown() *MarkdownStrategy {
	conv := md.NewConverter("", true, &md.Options{
		HeadingStyle: "atx",
	})
	conv.Remove("script", "style")

	return &MarkdownStrategy{
		conv:    conv,
		minimal: md.NewConverter("", true, nil),
	}
}

// Convert transforms HTML into Markdown.
func (s *MarkdownStrategy) Convert(html string) (string, error) {
	out, err := s.conv.ConvertString(html)
	if err == nil {
		return out, nil
	}

	// Minimal call, no custom options
	out, minErr := s.minimal.ConvertString(html)
	if minErr != nil {
		return "", fmt.Errorf("markdown conversion failed: %w (minimal retry: %v)", err, minErr)
	}
	return out, nil
}

// Name returns the strategy type.
func (s *MarkdownStrategy) Name() string {
	return "markdown"
}

// Available reports whether the strategy can run.
func (s *MarkdownStrategy) Available() bool {
	return true
}
