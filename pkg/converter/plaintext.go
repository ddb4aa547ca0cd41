package converter

import (
	stdhtml "html"
	"regexp"
)

var (
	brTagRe  = regexp.MustCompile(`(?i)<\s*br\s*/?\s*>`)
	anyTagRe = regexp.MustCompile(`<[^>]+>`)
)

// plainText degrades HTML to text: <br> tags become newlines, every other
// tag is stripped by pattern matching, and entities are decoded. Total on
// any string input.
//
// This is intentionally crude. It exists precisely so that conversion can
// succeed without any parser, so no attempt is made to be structurally
// correct.
func plainText(html string) string {
	text := brTagRe.ReplaceAllString(html, "\n")
	text = anyTagRe.ReplaceAllString(text, "")
	return stdhtml.UnescapeString(text)
}

// PlainTextStrategy is the last-resort conversion strategy. It always
// succeeds, which is what guarantees the chain's output contract.
type PlainTextStrategy struct{}

// NewPlainText creates the last-resort conversion strategy.
func NewPlainText() *PlainTextStrategy {
	return &PlainTextStrategy{}
}

// Convert degrades HTML to plain text. The error is always nil.
func (s *PlainTextStrategy) Convert(html string) (string, error) {
	return plainText(html), nil
}

// Name returns the strategy type.
func (s *PlainTextStrategy) Name() string {
	return "plaintext"
}

// Available reports whether the strategy can run. Always true.
func (s *PlainTextStrategy) Available() bool {
	return true
}
