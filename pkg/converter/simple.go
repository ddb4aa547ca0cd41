package converter

import (
	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// SimpleStrategy is the first fallback: a one-shot conversion that keeps
// hyperlinks and images in Markdown syntax and never hard-wraps lines.
// It trades the configurability of MarkdownStrategy for robustness.
type SimpleStrategy struct{}

// NewSimple creates the fallback conversion strategy.
func NewSimple() *SimpleStrategy {
	return &SimpleStrategy{}
}

// Convert transforms HTML into Markdown.
func (s *SimpleStrategy) Convert(html string) (string, error) {
	return htmltomarkdown.ConvertString(html)
}

// Name returns the strategy type.
func (s *SimpleStrategy) Name() string {
	return "simple"
}

// Available reports whether the strategy can run.
func (s *SimpleStrategy) Available() bool {
	return true
}
