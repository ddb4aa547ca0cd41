package pipeline

import (
	"errors"
	"strings"
	"testing"

	"github.com/x/wiki2md/pkg/cleaner"
)

func TestPipeline_Run(t *testing.T) {
	p := New()

	html := `<h2>History<span class="mw-editsection">[edit]</span></h2>` +
		`<p>Hello <sup class="reference">[1]</sup> world</p>`
	got := p.Run(html)

	if !strings.Contains(got, "## History") {
		t.Errorf("Run() = %q, want ATX heading for History", got)
	}
	if strings.Contains(got, "[1]") || strings.Contains(got, "[edit]") {
		t.Errorf("Run() = %q, cruft survived cleaning", got)
	}
	if !strings.Contains(got, "Hello") || !strings.Contains(got, "world") {
		t.Errorf("Run() = %q, content lost", got)
	}
	if got != strings.TrimSpace(got) {
		t.Errorf("Run() = %q, output must be trimmed", got)
	}
}

func TestPipeline_Run_NoCleanKeepsCruft(t *testing.T) {
	p := New(WithCleaner(cleaner.NewNoop()))

	got := p.Run(`<p>Hello <sup class="reference">[1]</sup> world</p>`)
	if !strings.Contains(got, "1") {
		t.Errorf("Run() = %q, noop cleaner should leave reference markers alone", got)
	}
}

func TestPipeline_Run_ImageFix(t *testing.T) {
	html := `<p><img src="https://static.wikia.nocookie.net/s/images/a/ab/Foo.png/revision/latest?cb=123" alt="x"></p>`

	fixed := New(WithImageFix(true)).Run(html)
	if !strings.Contains(fixed, "(https://static.wikia.nocookie.net/s/images/a/ab/Foo.png)") {
		t.Errorf("Run() = %q, wikia image URL should be trimmed", fixed)
	}

	unfixed := New().Run(html)
	if !strings.Contains(unfixed, "revision/latest") {
		t.Errorf("Run() = %q, image fix should be off by default", unfixed)
	}
}

// failingCleaner errors to exercise the raw-HTML fallback.
type failingCleaner struct{}

func (failingCleaner) Clean(string) (string, error) { return "", errors.New("boom") }
func (failingCleaner) Name() string                 { return "failing" }

func TestPipeline_Run_CleanerFailureFallsBackToRaw(t *testing.T) {
	p := New(WithCleaner(failingCleaner{}))

	got := p.Run("<p>still converted</p>")
	if got != "still converted" {
		t.Errorf("Run() = %q, want conversion of the raw input", got)
	}
}

func TestPipeline_Run_NeverEmptyHandling(t *testing.T) {
	p := New()

	for _, input := range []string{"", "   ", "<div><p>unclosed", "plain"} {
		got := p.Run(input)
		if got != strings.TrimSpace(got) {
			t.Errorf("Run(%q) = %q, output must be trimmed", input, got)
		}
	}
}
