// Package output handles output path resolution and markdown document
// writing.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	invalidCharsRe = regexp.MustCompile(`[\\/:*?"<>|]+`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
)

// SanitizeFilename makes a page title safe to use as a file name.
// Runs of characters that are unsafe on common filesystems collapse to an
// underscore, whitespace is normalized, and an empty result falls back to
// "page".
func SanitizeFilename(name string) string {
	name = invalidCharsRe.ReplaceAllString(name, "_")
	name = strings.TrimSpace(whitespaceRe.ReplaceAllString(name, " "))
	if name == "" {
		return "page"
	}
	return name
}

// EnsureMarkdownSuffix appends ".md" unless the name already carries an
// extension. A user-provided extension is kept as given.
func EnsureMarkdownSuffix(name string) string {
	if filepath.Ext(name) != "" {
		return name
	}
	return name + ".md"
}

// Resolve decides the output path:
//   - out, when set, wins; a directory gets a derived file name inside it,
//     anything else is used verbatim as the file path.
//   - filename, when set, is used as given (only the .md suffix may be
//     added), rooted at outdir or the working directory.
//   - otherwise the path derives from the sanitized title.
func Resolve(out, title, outdir, filename string) (string, error) {
	if out != "" {
		p, err := absPath(out)
		if err != nil {
			return "", err
		}
		if info, statErr := os.Stat(p); statErr == nil && info.IsDir() {
			base := filename
			if base == "" {
				base = title
			}
			return filepath.Join(p, EnsureMarkdownSuffix(SanitizeFilename(base))), nil
		}
		// Explicit file path; honor whatever extension the user gave
		return p, nil
	}

	var root string
	var err error
	if outdir != "" {
		root, err = absPath(outdir)
	} else {
		root, err = os.Getwd()
	}
	if err != nil {
		return "", err
	}

	if filename != "" {
		// Accept whatever the user passed; don't sanitize
		return filepath.Join(root, EnsureMarkdownSuffix(filename)), nil
	}

	return filepath.Join(root, SanitizeFilename(title)+".md"), nil
}

// absPath expands a leading ~ and makes the path absolute.
func absPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}
