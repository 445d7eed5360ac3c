package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"angle/internal/parser"
	"angle/internal/project"
)

func newTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	registerGlobalFlags(cmd)
	cmd.Flags().String("format", "pretty", "")
	cmd.Flags().String("chain", parser.DefaultChain, "")
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatal(err)
	}
	return cmd
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), project.ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveSettings_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "[parse]\nchain = \"langle ident rangle\"\n[output]\nformat = \"json\"\nmax_diagnostics = 7\n")
	cmd := newTestCommand(t, "--config", path)

	s, err := resolveSettings(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if s.Chain != "langle ident rangle" || s.Format != "json" || s.MaxDiagnostics != 7 {
		t.Fatalf("settings = %+v", s)
	}
	if s.ConfigPath != path {
		t.Errorf("ConfigPath = %q, want %q", s.ConfigPath, path)
	}
	if s.Color != "auto" {
		t.Errorf("Color = %q, want default auto", s.Color)
	}
}

func TestResolveSettings_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "[parse]\nchain = \"langle ident rangle\"\n[output]\nformat = \"json\"\ncolor = \"on\"\n")
	cmd := newTestCommand(t, "--config", path, "--chain", "slash number", "--format", "msgpack", "--color", "off", "--max-diagnostics", "3")

	s, err := resolveSettings(cmd)
	if err != nil {
		t.Fatal(err)
	}
	want := settings{
		Chain:          "slash number",
		Format:         "msgpack",
		Color:          "off",
		MaxDiagnostics: 3,
		TraceLevel:     "off",
		TraceFormat:    "auto",
		TraceOutput:    "-",
		ConfigPath:     path,
	}
	if s != want {
		t.Fatalf("settings = %+v\nwant %+v", s, want)
	}
}

func TestResolveSettings_TraceFlagEnablesPhase(t *testing.T) {
	path := writeConfig(t, "")
	cmd := newTestCommand(t, "--config", path, "--trace", "out.ndjson")

	s, err := resolveSettings(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if s.TraceLevel != "phase" || s.TraceOutput != "out.ndjson" {
		t.Fatalf("trace = %q %q", s.TraceLevel, s.TraceOutput)
	}
}

func TestResolveSettings_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		args    []string
		wantErr string
	}{
		{"bad file format", "[output]\nformat = \"yaml\"\n", nil, "[output].format"},
		{"bad flag color", "", []string{"--color", "rainbow"}, "[output].color"},
		{"bad flag level", "", []string{"--trace-level", "verbose"}, "[trace].level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.config)
			cmd := newTestCommand(t, append([]string{"--config", path}, tt.args...)...)
			_, err := resolveSettings(cmd)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestReadUIMode(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeOff, "AUTO": uiModeAuto, "on": uiModeOn, " off ": uiModeOff} {
		got, err := readUIMode(in)
		if err != nil || got != want {
			t.Errorf("readUIMode(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := readUIMode("maybe"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestUseColor_Explicit(t *testing.T) {
	if !useColor("on", os.Stderr) {
		t.Error("on should force color")
	}
	if useColor("OFF", os.Stderr) {
		t.Error("off should disable color")
	}
}
