package commands

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/x/wiki2md/internal/logger"
	"github.com/x/wiki2md/internal/output"
	"github.com/x/wiki2md/pkg/cleaner"
	"github.com/x/wiki2md/pkg/pipeline"
	"github.com/x/wiki2md/pkg/wiki"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch one page and write it as a Markdown file",
	Long: `Fetch a single page through the MediaWiki action API and convert the
rendered HTML to Markdown.

Give either a page title (with an optional --api endpoint) or a full page
URL. With a URL, both common endpoint layouts are tried: /w/api.php
(Wikipedia and most installs) and /api.php (Fandom and others).

Examples:
  wiki2md fetch -t "Python (programming language)"
  wiki2md fetch -u "https://en.wikipedia.org/wiki/Markdown" --outdir notes
  wiki2md fetch -t "Home" --api "https://wiki.example.org/w/api.php" -f home`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	flags := fetchCmd.Flags()

	// Page selection
	flags.StringP("title", "t", "", "page title, e.g. 'Python (programming language)'")
	flags.StringP("url", "u", "", "full page URL, e.g. 'https://en.wikipedia.org/wiki/Markdown'")
	flags.String("api", "", "MediaWiki API endpoint (overrides auto-detection)")

	// Output settings
	flags.StringP("output", "o", "", "output file path (or directory)")
	flags.String("outdir", "", "write output into this directory (filename derived from title)")
	flags.StringP("filename", "f", "", "filename to use; .md is appended when no extension is given")

	// Fetch settings
	flags.Duration("timeout", 30*time.Second, "HTTP timeout")
	flags.String("lang", "", "uselang passed to the API (e.g. 'en', 'es')")
	flags.String("max-content-size", "0", "max fetched HTML size (e.g. 500KB, 2MB, 0=unlimited)")

	// Conversion settings
	flags.Bool("no-clean", false, "skip HTML cleanup before conversion")
	flags.Bool("readability", false, "extract main content with readability before cleanup")
	flags.Bool("fix-wikia-images", false, "trim Fandom/Wikia image URLs to the base filename")

	fetchCmd.MarkFlagsOneRequired("title", "url")
	fetchCmd.MarkFlagsMutuallyExclusive("title", "url")
}

func runFetch(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pageURL, _ := cmd.Flags().GetString("url")
	title, _ := cmd.Flags().GetString("title")
	api, _ := cmd.Flags().GetString("api")

	// Determine endpoint candidates and the page title
	var endpoints []string
	if pageURL != "" {
		var err error
		endpoints, title, err = wiki.Endpoints(pageURL)
		if err != nil {
			logger.Error("failed to derive API endpoint", "url", pageURL, "error", err)
			return err
		}
		logger.Debug("derived endpoints from URL", "endpoints", endpoints, "title", title)
	} else {
		endpoints = []string{wiki.DefaultEndpoint}
	}
	// An explicit --api overrides auto-detection
	if api != "" {
		endpoints = []string{api}
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	lang, _ := cmd.Flags().GetString("lang")

	client := wiki.NewClient(wiki.Config{Timeout: timeout})

	endpointUsed, page, err := client.FetchAny(ctx, endpoints, title, lang)
	if err != nil {
		logger.Error("fetch failed", "title", title, "error", err)
		return err
	}
	logger.Debug("page fetched",
		"endpoint", endpointUsed,
		"title", page.Title,
		"html_size", len(page.HTML))

	// Size guard (0 or empty means unlimited)
	maxSizeStr, _ := cmd.Flags().GetString("max-content-size")
	if strings.TrimSpace(maxSizeStr) != "" && maxSizeStr != "0" {
		maxSize, err := humanize.ParseBytes(maxSizeStr)
		if err != nil {
			logger.Error("invalid max-content-size", "value", maxSizeStr, "error", err)
			return err
		}
		if uint64(len(page.HTML)) > maxSize {
			return fmt.Errorf("page HTML is %s, above the %s limit",
				humanize.Bytes(uint64(len(page.HTML))), humanize.Bytes(maxSize))
		}
	}

	// Build the cleaner from flags
	noClean, _ := cmd.Flags().GetBool("no-clean")
	useReadability, _ := cmd.Flags().GetBool("readability")
	var cl cleaner.Cleaner
	switch {
	case noClean:
		cl = cleaner.NewNoop()
	case useReadability:
		cl = cleaner.NewChain(cleaner.NewReadability(nil), cleaner.NewWiki())
	default:
		cl = cleaner.NewWiki()
	}
	logger.Debug("cleaner selected", "cleaner", cl.Name())

	fixImages, _ := cmd.Flags().GetBool("fix-wikia-images")

	p := pipeline.New(
		pipeline.WithCleaner(cl),
		pipeline.WithImageFix(fixImages),
	)
	markdown := p.Run(page.HTML)

	// Resolve and write the output file
	outPath, _ := cmd.Flags().GetString("output")
	outdir, _ := cmd.Flags().GetString("outdir")
	filename, _ := cmd.Flags().GetString("filename")

	path, err := output.Resolve(outPath, page.Title, outdir, filename)
	if err != nil {
		logger.Error("failed to resolve output path", "error", err)
		return err
	}
	if err := output.SaveDocument(path, page.Title, markdown); err != nil {
		logger.Error("failed to save document", "path", path, "error", err)
		return err
	}

	logInfo("Saved: %s (via %s)", path, endpointUsed)
	return nil
}
