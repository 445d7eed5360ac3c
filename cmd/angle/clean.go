package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"angle/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove cached tokens",
	Long:  "Remove the token cache written by tokenize --cache and parse --cache.",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(cmd *cobra.Command, _ []string) error {
	cache, err := driver.OpenTokenCache("angle")
	if err != nil {
		return fmt.Errorf("failed to open token cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to clear %q: %w", cache.Dir(), err)
	}
	if !currentSettings.Quiet {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", cache.Dir())
	}
	return nil
}
