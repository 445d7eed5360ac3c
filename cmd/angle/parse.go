package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"angle/internal/diag"
	"angle/internal/diagfmt"
	"angle/internal/driver"
	"angle/internal/parser"
	"angle/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.ang|directory>...",
	Short: "Parse angle source files with a combinator chain",
	Long: `Parse lexes each file and runs a chain of combinators over its tokens.
The chain is a space or comma separated list of primitives:
langle, rangle, equals, slash, number, ident, value, attr.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("chain", parser.DefaultChain, "combinator chain to run")
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	parseCmd.Flags().Bool("cache", false, "reuse cached tokens for unchanged files")
	parseCmd.Flags().String("progress", "off", "show progress UI on stderr (auto|on|off)")
}

func runParse(cmd *cobra.Command, args []string) error {
	s := currentSettings
	format, err := diagfmt.ParseFormat(s.Format)
	if err != nil {
		return err
	}
	chain, err := parser.ParseChain(s.Chain)
	if err != nil {
		return fmt.Errorf("invalid chain: %w", err)
	}
	opts, err := driverOptions(cmd, s)
	if err != nil {
		return err
	}
	progressFlag, err := cmd.Flags().GetString("progress")
	if err != nil {
		return fmt.Errorf("failed to get progress flag: %w", err)
	}
	mode, err := readUIMode(progressFlag)
	if err != nil {
		return err
	}

	paths, err := driver.ExpandPaths(args)
	if err != nil {
		return fmt.Errorf("failed to expand paths: %w", err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no %s files found", driver.SourceExt)
	}

	var (
		fs      *source.FileSet
		results []driver.FileResult
	)
	if shouldUseTUI(mode) {
		fs, results, err = runParseWithUI(cmd.Context(), "parse", paths, chain, opts)
	} else {
		fs, results, err = driver.ParseFiles(cmd.Context(), paths, chain, opts)
	}
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	bag := diag.NewBag(s.MaxDiagnostics)
	failed := false
	for _, r := range results {
		if r.ParseResult == nil {
			continue
		}
		bag.Merge(r.Bag)
		if !r.OK() {
			failed = true
		}
	}
	if err := printDiagnostics(bag, fs, s); err != nil {
		return err
	}

	if err := writeParseOutput(format, results, fs, s); err != nil {
		return err
	}
	if failed {
		return exitError{code: 1}
	}
	return nil
}

func writeParseOutput(format diagfmt.Format, results []driver.FileResult, fs *source.FileSet, s settings) error {
	if format != diagfmt.FormatPretty {
		files := make([]diagfmt.FileNodes, 0, len(results))
		for _, r := range results {
			files = append(files, fileNodes(r, fs))
		}
		if format == diagfmt.FormatMsgpack {
			return diagfmt.FormatNodesMsgpack(os.Stdout, files)
		}
		return diagfmt.FormatNodesJSON(os.Stdout, files)
	}

	colored := useColor(s.Color, os.Stdout)
	for idx, r := range results {
		if r.ParseResult == nil || !r.OK() {
			continue
		}
		header := displayPath(r, fs)
		if s.Quiet {
			header = ""
		}
		if err := diagfmt.FormatNodesPretty(os.Stdout, header, r.Nodes, fs, colored); err != nil {
			return err
		}
		if !s.Quiet && idx < len(results)-1 {
			if _, err := fmt.Fprintln(os.Stdout); err != nil {
				return err
			}
		}
	}
	return nil
}

func fileNodes(r driver.FileResult, fs *source.FileSet) diagfmt.FileNodes {
	out := diagfmt.FileNodes{Path: displayPath(r, fs), Nodes: []diagfmt.NodeOutput{}}
	if r.ParseResult == nil {
		return out
	}
	out.OK = r.OK()
	if r.Err != nil {
		out.Error = r.Err.Error()
		return out
	}
	out.Nodes = diagfmt.NodeOutputs(r.Nodes)
	return out
}

func displayPath(r driver.FileResult, fs *source.FileSet) string {
	if r.ParseResult == nil || r.File == nil {
		return r.Path
	}
	return r.File.FormatPath("auto", fs.BaseDir())
}
