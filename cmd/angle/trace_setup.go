package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"angle/internal/trace"
)

// setupTracing initializes the tracer from resolved settings and attaches it
// to the command context. It returns a cleanup function.
func setupTracing(cmd *cobra.Command, s settings) (func(), error) {
	level, err := trace.ParseLevel(s.TraceLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid trace level: %w", err)
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}
	format, ok := trace.ParseFormat(s.TraceFormat)
	if !ok {
		return nil, fmt.Errorf("invalid trace format %q (expected auto|text|ndjson)", s.TraceFormat)
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Format:     format,
		OutputPath: s.TraceOutput,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))

	cleanup := func() {
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}
	return cleanup, nil
}
