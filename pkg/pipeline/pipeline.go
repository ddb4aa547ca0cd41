// Package pipeline sequences the conversion stages: HTML cleanup, markdown
// conversion, and markdown post-processing.
package pipeline

import (
	"github.com/x/wiki2md/internal/logger"
	"github.com/x/wiki2md/pkg/cleaner"
	"github.com/x/wiki2md/pkg/converter"
	"github.com/x/wiki2md/pkg/postprocess"
)

// Pipeline converts rendered wiki HTML into Markdown.
// Each stage is a pure function of its input; a Pipeline holds only fixed
// configuration and is safe for reuse across pages.
type Pipeline struct {
	cleaner   cleaner.Cleaner
	converter *converter.Chain
	fixImages bool
}

// New creates a pipeline.
func New(opts ...Option) *Pipeline {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	cl := cfg.Cleaner
	if cl == nil {
		cl = cleaner.NewWiki()
	}

	conv := cfg.Converter
	if conv == nil {
		conv = converter.Default()
	}

	return &Pipeline{
		cleaner:   cl,
		converter: conv,
		fixImages: cfg.FixImages,
	}
}

// Run converts one page's HTML to Markdown. It never fails: cleaning
// degrades to a no-op and the converter chain guarantees output for any
// string input.
func (p *Pipeline) Run(html string) string {
	cleaned, err := p.cleaner.Clean(html)
	if err != nil {
		// Only possible with injected custom cleaners; the built-in
		// ones return their input instead of erroring.
		logger.Debug("cleaner failed, using raw HTML",
			"cleaner", p.cleaner.Name(),
			"error", err)
		cleaned = html
	} else {
		logger.Debug("content cleaned",
			"cleaner", p.cleaner.Name(),
			"input_size", len(html),
			"output_size", len(cleaned))
	}

	markdown := p.converter.Convert(cleaned)
	logger.Debug("content converted",
		"converter", p.converter.Name(),
		"output_size", len(markdown))

	return postprocess.FixImageURLs(markdown, p.fixImages)
}
