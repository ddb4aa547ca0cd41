package pipeline

import (
	"github.com/x/wiki2md/pkg/cleaner"
	"github.com/x/wiki2md/pkg/converter"
)

// Config holds pipeline configuration.
type Config struct {
	// Cleaner runs before conversion. Defaults to the wiki cruft cleaner.
	Cleaner cleaner.Cleaner

	// Converter is the conversion strategy chain. Defaults to the
	// standard chain.
	Converter *converter.Chain

	// FixImages enables Fandom/Wikia image URL trimming on the output.
	FixImages bool
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return Config{}
}

// Option configures the pipeline.
type Option func(*Config)

// WithCleaner sets the HTML cleaner run before conversion.
func WithCleaner(c cleaner.Cleaner) Option {
	return func(cfg *Config) {
		cfg.Cleaner = c
	}
}

// WithConverter sets the conversion strategy chain.
func WithConverter(c *converter.Chain) Option {
	return func(cfg *Config) {
		cfg.Converter = c
	}
}

// WithImageFix enables or disables Fandom/Wikia image URL trimming.
func WithImageFix(enabled bool) Option {
	return func(cfg *Config) {
		cfg.FixImages = enabled
	}
}
