package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"angle/internal/project"
)

// settings — итоговые значения: флаги поверх angle.toml поверх умолчаний.
type settings struct {
	Chain          string
	Format         string
	Color          string
	MaxDiagnostics int
	Quiet          bool
	Timings        bool
	TraceLevel     string
	TraceFormat    string
	TraceOutput    string
	ConfigPath     string // пусто, если angle.toml не найден
}

func resolveSettings(cmd *cobra.Command) (settings, error) {
	cfg, configPath, err := loadConfig(cmd)
	if err != nil {
		return settings{}, err
	}
	s := settingsFromConfig(cfg)
	s.ConfigPath = configPath

	flags := cmd.Flags()
	if err := overrideString(flags.Changed("color"), &s.Color, func() (string, error) { return flags.GetString("color") }); err != nil {
		return settings{}, err
	}
	if err := overrideString(flags.Changed("trace-level"), &s.TraceLevel, func() (string, error) { return flags.GetString("trace-level") }); err != nil {
		return settings{}, err
	}
	if err := overrideString(flags.Changed("trace-format"), &s.TraceFormat, func() (string, error) { return flags.GetString("trace-format") }); err != nil {
		return settings{}, err
	}
	if flags.Changed("trace") {
		if s.TraceOutput, err = flags.GetString("trace"); err != nil {
			return settings{}, fmt.Errorf("failed to get trace flag: %w", err)
		}
		// --trace без уровня включает трассировку фаз
		if !flags.Changed("trace-level") && strings.EqualFold(s.TraceLevel, "off") {
			s.TraceLevel = "phase"
		}
	}
	if flags.Lookup("format") != nil {
		if err := overrideString(flags.Changed("format"), &s.Format, func() (string, error) { return flags.GetString("format") }); err != nil {
			return settings{}, err
		}
	}
	if flags.Lookup("chain") != nil {
		if err := overrideString(flags.Changed("chain"), &s.Chain, func() (string, error) { return flags.GetString("chain") }); err != nil {
			return settings{}, err
		}
	}
	if flags.Changed("max-diagnostics") {
		if s.MaxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return settings{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	if s.Quiet, err = flags.GetBool("quiet"); err != nil {
		return settings{}, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.Timings, err = flags.GetBool("timings"); err != nil {
		return settings{}, fmt.Errorf("failed to get timings flag: %w", err)
	}

	if err := s.toConfig().Validate(); err != nil {
		return settings{}, err
	}
	currentSettings = s
	return s, nil
}

// currentSettings заполняется в PersistentPreRunE.
var currentSettings = settingsFromConfig(project.Defaults())

func settingsFromConfig(cfg project.Config) settings {
	return settings{
		Chain:          cfg.Parse.Chain,
		Format:         cfg.Output.Format,
		Color:          cfg.Output.Color,
		MaxDiagnostics: cfg.Output.MaxDiagnostics,
		TraceLevel:     cfg.Trace.Level,
		TraceFormat:    "auto",
		TraceOutput:    cfg.Trace.Output,
	}
}

func (s settings) toConfig() project.Config {
	return project.Config{
		Parse:  project.ParseConfig{Chain: s.Chain},
		Output: project.OutputConfig{Format: s.Format, Color: s.Color, MaxDiagnostics: s.MaxDiagnostics},
		Trace:  project.TraceConfig{Level: s.TraceLevel, Output: s.TraceOutput},
	}
}

func overrideString(changed bool, dst *string, get func() (string, error)) error {
	if !changed {
		return nil
	}
	v, err := get()
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// loadConfig читает --config или ищет angle.toml вверх от рабочего каталога.
func loadConfig(cmd *cobra.Command) (project.Config, string, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return project.Config{}, "", fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		cfg, err := project.LoadConfig(path)
		return cfg, path, err
	}
	wd, err := os.Getwd()
	if err != nil {
		return project.Config{}, "", fmt.Errorf("failed to get working directory: %w", err)
	}
	manifest, ok, err := project.LoadManifest(wd)
	if err != nil {
		return project.Config{}, "", err
	}
	if !ok {
		return project.Defaults(), "", nil
	}
	return manifest.Config, manifest.Path, nil
}

// useColor решает, раскрашивать ли вывод в f.
func useColor(mode string, f *os.File) bool {
	switch strings.ToLower(mode) {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}
