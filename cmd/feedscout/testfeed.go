// ABOUTME: "test" subcommand previewing the latest entry of a feed
// ABOUTME: Mirrors the preview action the surrounding service exposes to users

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var testCmd = &cobra.Command{
	Use:   "test <type> <link>",
	Short: "Fetch and print the latest entry of a feed",
	Long:  "Dispatches to the adapter for the given source type (web, youtube) and prints the normalized latest entry.",
	Args:  cobra.ExactArgs(2),
	RunE:  testAction,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func testAction(cmd *cobra.Command, args []string) error {
	feedType, link := args[0], args[1]

	manager, err := newManager(cmd.Context())
	if err != nil {
		return err
	}

	entry := manager.TestFeed(cmd.Context(), feedType, link)
	if entry == nil {
		fmt.Println("no entry found")
		return nil
	}

	fmt.Printf("url:       %s\n", entry.URL)
	fmt.Printf("title:     %s\n", entry.Title)
	fmt.Printf("published: %s\n", entry.PublishedAt.Format(time.RFC3339))
	printOptional("entry id", entry.EntryID)
	printOptional("author", entry.Author)
	printOptional("channel", entry.ChannelName)
	printOptional("image", entry.Image)
	printOptional("text", entry.ShortText)
	return nil
}

func printOptional(label, value string) {
	if value != "" {
		fmt.Printf("%-9s %s\n", label+":", value)
	}
}
