// Package main is the entry point for the wiki2md CLI.
package main

import (
	"os"

	"github.com/x/wiki2md/cmd/wiki2md/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
