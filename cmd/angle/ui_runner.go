package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"angle/internal/driver"
	"angle/internal/parser"
	"angle/internal/source"
	"angle/internal/ui"
)

type parseOutcome struct {
	fs      *source.FileSet
	results []driver.FileResult
	err     error
}

func runParseWithUI(ctx context.Context, title string, files []string, chain parser.Combinator, opts driver.Options) (*source.FileSet, []driver.FileResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan parseOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.ParseFiles(ctx, files, chain, optsCopy)
		outcomeCh <- parseOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// модель могла выйти раньше (ctrl+c); дочитываем, чтобы ParseFiles не встал
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
