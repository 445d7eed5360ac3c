package main

import (
	"os"

	"angle/internal/diag"
	"angle/internal/diagfmt"
	"angle/internal/source"
)

// printDiagnostics пишет Bag в stderr: JSON для машинных форматов, иначе pretty.
// В режиме --quiet информационные записи (тайминги) пропускаются.
func printDiagnostics(bag *diag.Bag, fs *source.FileSet, s settings) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	if s.Quiet {
		bag = withoutInfo(bag)
		if bag.Len() == 0 {
			return nil
		}
	}
	bag.Sort()
	format, err := diagfmt.ParseFormat(s.Format)
	if err != nil {
		return err
	}
	if format != diagfmt.FormatPretty {
		return diagfmt.JSON(os.Stderr, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
		})
	}
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:     useColor(s.Color, os.Stderr),
		PathMode:  diagfmt.PathModeAuto,
		ShowNotes: true,
	})
	return nil
}

func withoutInfo(bag *diag.Bag) *diag.Bag {
	out := diag.NewBag(bag.Len())
	for _, d := range bag.Items() {
		if d.Severity.AtLeast(diag.SevWarning) {
			out.Add(d)
		}
	}
	return out
}
