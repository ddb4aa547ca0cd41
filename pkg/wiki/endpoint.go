package wiki

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// DefaultEndpoint is used when neither a page URL nor an explicit API
// endpoint is given.
const DefaultEndpoint = "https://en.wikipedia.org/w/api.php"

var titleQueryRe = regexp.MustCompile(`(?:^|&)title=([^&]+)`)

// Endpoints derives candidate API endpoints and the page title from a
// MediaWiki page URL. Both `/w/api.php` (Wikipedia and most MediaWiki
// installs) and `/api.php` (Fandom and others) are returned, in that order.
//
// The title comes from the `/wiki/<title>` path segment or, failing that,
// a `title=` query parameter. Percent-escapes are decoded and underscores
// become spaces.
func Endpoints(pageURL string) ([]string, string, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return nil, "", fmt.Errorf("invalid page URL: %w", err)
	}

	var title string
	if idx := strings.Index(parsed.Path, "/wiki/"); idx != -1 {
		title = parsed.Path[idx+len("/wiki/"):]
	} else if m := titleQueryRe.FindStringSubmatch(parsed.RawQuery); m != nil {
		title = m[1]
	}
	if title == "" {
		return nil, "", errors.New("could not infer page title from URL; pass --title explicitly")
	}

	if decoded, err := url.PathUnescape(title); err == nil {
		title = decoded
	}
	title = strings.ReplaceAll(title, "_", " ")

	base := parsed.Scheme + "://" + parsed.Host
	candidates := []string{
		base + "/w/api.php",
		base + "/api.php",
	}
	return candidates, title, nil
}
