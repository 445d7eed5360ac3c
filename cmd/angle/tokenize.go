package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"angle/internal/diagfmt"
	"angle/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.ang",
	Short: "Tokenize an angle source file",
	Long:  `Tokenize breaks an angle source file into LAngle, RAngle, Equals, Slash, Number, Identifier and Value tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	tokenizeCmd.Flags().Bool("cache", false, "reuse cached tokens for unchanged files")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	s := currentSettings
	format, err := diagfmt.ParseFormat(s.Format)
	if err != nil {
		return err
	}
	opts, err := driverOptions(cmd, s)
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if err := printDiagnostics(result.Bag, result.FileSet, s); err != nil {
		return err
	}

	switch format {
	case diagfmt.FormatJSON:
		err = diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	case diagfmt.FormatMsgpack:
		err = diagfmt.FormatTokensMsgpack(os.Stdout, result.Tokens)
	default:
		err = diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	}
	if err != nil {
		return err
	}
	if result.Err != nil {
		return exitError{code: 1}
	}
	return nil
}

// driverOptions собирает driver.Options из настроек и флагов команды.
func driverOptions(cmd *cobra.Command, s settings) (driver.Options, error) {
	opts := driver.Options{
		MaxDiagnostics: s.MaxDiagnostics,
		Timings:        s.Timings,
	}
	if cmd.Flags().Lookup("cache") != nil {
		useCache, err := cmd.Flags().GetBool("cache")
		if err != nil {
			return opts, fmt.Errorf("failed to get cache flag: %w", err)
		}
		if useCache {
			cache, err := driver.OpenTokenCache("angle")
			if err != nil {
				return opts, fmt.Errorf("failed to open token cache: %w", err)
			}
			opts.Cache = cache
		}
	}
	if cmd.Flags().Lookup("jobs") != nil {
		jobs, err := cmd.Flags().GetInt("jobs")
		if err != nil {
			return opts, fmt.Errorf("failed to get jobs flag: %w", err)
		}
		opts.Jobs = jobs
	}
	return opts, nil
}
