package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriteDocument writes the markdown document: a title heading, a blank
// line, then the body with trailing whitespace replaced by a single
// newline.
func WriteDocument(w io.Writer, title, markdown string) error {
	_, err := fmt.Fprintf(w, "# %s\n\n%s\n", title, strings.TrimRight(markdown, " \t\r\n"))
	return err
}

// SaveDocument writes the document to path, creating parent directories as
// needed.
func SaveDocument(path, title, markdown string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path) //#nosec G304 -- CLI tool writes to user-specified output file
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := WriteDocument(f, title, markdown); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return f.Close()
}
