// Package converter turns cleaned HTML into Markdown text.
//
// Conversion is organized as a ranked chain of strategies. The chain is
// assembled once at startup; each call walks the strategies in order and
// returns the first successful result. The last strategy in the default
// chain cannot fail, so conversion as a whole never does.
package converter

import (
	"fmt"
	"strings"

	"github.com/x/wiki2md/internal/logger"
)

// Strategy converts an HTML string to Markdown. A strategy may fail; the
// chain treats failure as an expected outcome and moves on.
type Strategy interface {
	// Convert transforms HTML into Markdown.
	Convert(html string) (string, error)

	// Name returns the strategy type for logging/debugging.
	Name() string

	// Available reports whether the strategy can run in this build.
	Available() bool
}

// Chain tries an ordered list of strategies until one succeeds.
type Chain struct {
	strategies []Strategy
}

// NewChain creates a chain over the given strategies, most preferred first.
func NewChain(strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies}
}

// Default returns the standard chain: configured markdown conversion,
// then a default-configured second converter, then plain-text degradation.
func Default() *Chain {
	return NewChain(
		NewMarkdown(),
		NewSimple(),
		NewPlainText(),
	)
}

// Convert runs the chain and returns Markdown with leading and trailing
// whitespace trimmed. It cannot fail: if every strategy errors out, the
// plain-text degradation runs as the terminal fallback.
func (c *Chain) Convert(html string) string {
	for _, s := range c.strategies {
		if !s.Available() {
			logger.Debug("conversion strategy unavailable", "strategy", s.Name())
			continue
		}
		out, err := tryStrategy(s, html)
		if err != nil {
			logger.Debug("conversion strategy failed, falling back",
				"strategy", s.Name(),
				"error", err)
			continue
		}
		return strings.TrimSpace(out)
	}

	// Terminal fallback; plainText accepts any string input.
	return strings.TrimSpace(plainText(html))
}

// Name returns the names of all chained strategies.
func (c *Chain) Name() string {
	names := make([]string, len(c.strategies))
	for i, s := range c.strategies {
		names[i] = s.Name()
	}
	return "chain(" + strings.Join(names, "->") + ")"
}

// tryStrategy invokes a strategy, converting panics from the underlying
// conversion libraries into ordinary errors so the chain can keep going.
func tryStrategy(s Strategy, html string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("strategy %s panicked: %v", s.Name(), r)
		}
	}()
	return s.Convert(html)
}
