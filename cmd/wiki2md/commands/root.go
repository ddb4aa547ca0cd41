// Package commands implements the CLI commands for wiki2md.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/x/wiki2md/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "wiki2md",
	Short: "Fetch a MediaWiki page and save it as Markdown",
	Long: `wiki2md fetches a page from any MediaWiki-compatible wiki via the
action API, converts the rendered HTML to Markdown, and writes the result
to a file.

Examples:
  # Fetch by title from English Wikipedia
  wiki2md fetch --title "Python (programming language)"

  # Fetch by page URL (API endpoint is auto-detected)
  wiki2md fetch --url "https://en.wikipedia.org/wiki/Go_(programming_language)"

  # A private wiki with an explicit endpoint
  wiki2md fetch --title "Home" --api "https://wiki.example.org/w/api.php" -o home.md

  # A Fandom wiki, with image URL cleanup
  wiki2md fetch --url "https://zelda.fandom.com/wiki/Link" --fix-wikia-images`,
	Version: version.String(),
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.wiki2md.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".wiki2md")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("WIKI2MD")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logInfo prints an info message to stderr (unless quiet mode).
func logInfo(format string, args ...any) {
	if !viper.GetBool("quiet") {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
