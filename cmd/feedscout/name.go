// ABOUTME: "name" subcommand resolving the display name of a feed
// ABOUTME: Uses the same cached lookup path the surrounding service lists feeds with

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"feedscout/core/domain"
)

var nameCmd = &cobra.Command{
	Use:   "name <type> <link>",
	Short: "Resolve the display name of a feed",
	Args:  cobra.ExactArgs(2),
	RunE:  nameAction,
}

func init() {
	rootCmd.AddCommand(nameCmd)
}

func nameAction(cmd *cobra.Command, args []string) error {
	manager, err := newManager(cmd.Context())
	if err != nil {
		return err
	}

	displayName := manager.GetDisplayName(cmd.Context(), domain.FeedRef{
		Type: args[0],
		Link: args[1],
	})
	if displayName == "" {
		fmt.Println("no display name found")
		return nil
	}

	fmt.Println(displayName)
	return nil
}
