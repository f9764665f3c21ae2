// ABOUTME: Main entry point for the feedscout CLI
// ABOUTME: Previews remote feeds and resolves display names from the terminal

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version and Commit are set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
)

var rootCmd = &cobra.Command{
	Use:   "feedscout",
	Short: "Preview and name remote feeds",
	Long: "feedscout fetches a web feed or a YouTube channel, normalizes its " +
		"latest entry, and resolves display names, using the same engine the " +
		"surrounding service embeds.",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("feedscout %s (%s)\n", Version, Commit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
