// Package postprocess applies targeted text-level fixups to converted
// Markdown output.
package postprocess

import (
	"regexp"
)

// Fandom/Wikia serves images from static.wikia.nocookie.net and appends
// revision paths, cache-buster queries, and display titles after the real
// filename, e.g.
//
//	https://static.wikia.nocookie.net/w/images/a/ab/Foo.png/revision/latest?cb=123
//
// The pattern captures the image reference up to the first recognized file
// extension and drops everything between there and the closing paren.
// The extension list is matched case-sensitively, and only this one
// hostname is rewritten; a general URL-rewriting mechanism is out of scope.
var wikiaImageRe = regexp.MustCompile(
	`(\!\[[^\]]*\]\(` +
		`https?://static\.wikia\.nocookie\.net/` +
		`[^\s)"]+?\.(?:png|jpe?g|gif|webp))` +
		`[^)]*\)`,
)

// FixImageURLs trims Fandom/Wikia image URLs in Markdown image references
// down to the base filename. When enabled is false the input is returned
// unchanged. Alt text and the surrounding ![alt](...) syntax are preserved;
// references on other hosts are left untouched.
func FixImageURLs(markdown string, enabled bool) string {
	if !enabled {
		return markdown
	}
	return wikiaImageRe.ReplaceAllString(markdown, "$1)")
}
