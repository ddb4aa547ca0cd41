// Package cleaner provides interfaces and implementations for cleaning HTML
// content before markdown conversion. Cleaners strip editorial and
// navigational cruft while leaving article content intact.
package cleaner

// Cleaner transforms HTML content into a cleaner form for conversion.
// Implementations degrade gracefully: when the input cannot be processed
// they return it unchanged rather than failing.
type Cleaner interface {
	// Clean transforms the input HTML.
	Clean(html string) (string, error)

	// Name returns the cleaner type for logging/debugging.
	Name() string
}
