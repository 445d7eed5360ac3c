package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"angle/internal/parser"
)

// Config — содержимое angle.toml. Пустые поля означают «по умолчанию».
type Config struct {
	Parse  ParseConfig  `toml:"parse"`
	Output OutputConfig `toml:"output"`
	Trace  TraceConfig  `toml:"trace"`
}

type ParseConfig struct {
	Chain string `toml:"chain"`
}

type OutputConfig struct {
	Format         string `toml:"format"`          // pretty|json|msgpack
	Color          string `toml:"color"`           // auto|on|off
	MaxDiagnostics int    `toml:"max_diagnostics"` // 0 = без лимита
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
}

// Manifest is a located and decoded angle.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Defaults returns the values used when neither the file nor flags set them.
func Defaults() Config {
	return Config{
		Parse:  ParseConfig{Chain: parser.DefaultChain},
		Output: OutputConfig{Format: "pretty", Color: "auto", MaxDiagnostics: 100},
		Trace:  TraceConfig{Level: "off", Output: "-"},
	}
}

// LoadManifest ищет angle.toml вверх от startDir; ok=false, если его нет.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// LoadConfig разбирает файл и накладывает его поверх Defaults.
func LoadConfig(path string) (Config, error) {
	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("parse", "chain") && strings.TrimSpace(cfg.Parse.Chain) == "" {
		return Config{}, fmt.Errorf("%s: [parse].chain must not be empty", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate проверяет значения перечислений.
func (c Config) Validate() error {
	switch strings.ToLower(c.Output.Format) {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("[output].format: unknown value %q (expected: pretty|json|msgpack)", c.Output.Format)
	}
	switch strings.ToLower(c.Output.Color) {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("[output].color: unknown value %q (expected: auto|on|off)", c.Output.Color)
	}
	if c.Output.MaxDiagnostics < 0 {
		return fmt.Errorf("[output].max_diagnostics must be >= 0")
	}
	switch strings.ToLower(c.Trace.Level) {
	case "off", "error", "phase", "detail", "debug":
	default:
		return fmt.Errorf("[trace].level: unknown value %q", c.Trace.Level)
	}
	return nil
}
