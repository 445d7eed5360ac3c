package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"angle/internal/parser"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[parse]
chain = "langle ident rangle"

[output]
format = "json"
`)
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Defaults()
	want.Parse.Chain = "langle ident rangle"
	want.Output.Format = "json"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"syntax", "[parse\n", "failed to parse TOML"},
		{"unknown key", "[output]\nfromat = \"json\"\n", "unknown keys: output.fromat"},
		{"empty chain", "[parse]\nchain = \"  \"\n", "[parse].chain"},
		{"bad format", "[output]\nformat = \"xml\"\n", "[output].format"},
		{"bad color", "[output]\ncolor = \"sometimes\"\n", "[output].color"},
		{"negative max", "[output]\nmax_diagnostics = -1\n", "max_diagnostics"},
		{"bad level", "[trace]\nlevel = \"loud\"\n", "[trace].level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.content)
			_, err := LoadConfig(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadManifest_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[output]\ncolor = \"off\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, ok, err := LoadManifest(nested)
	if err != nil || !ok {
		t.Fatalf("LoadManifest = %v, %v, %v", m, ok, err)
	}
	wantRoot, _ := filepath.Abs(root)
	if m.Root != wantRoot || m.Config.Output.Color != "off" {
		t.Errorf("manifest = %+v", m)
	}

	gotRoot, ok, err := FindProjectRoot(nested)
	if err != nil || !ok || gotRoot != wantRoot {
		t.Errorf("FindProjectRoot = %q, %v, %v", gotRoot, ok, err)
	}
}

func TestLoadManifest_NotFound(t *testing.T) {
	// t.TempDir обычно лежит вне любого проекта с angle.toml
	dir := t.TempDir()
	if path, ok, _ := FindManifest(dir); ok {
		t.Skipf("unexpected %s above temp dir", path)
	}
	m, ok, err := LoadManifest(dir)
	if err != nil || ok || m != nil {
		t.Fatalf("LoadManifest = %v, %v, %v", m, ok, err)
	}
}

func TestDefaults_ChainIsParserDefault(t *testing.T) {
	got := Defaults().Parse.Chain
	if got != parser.DefaultChain {
		t.Fatalf("default chain = %q, want %q", got, parser.DefaultChain)
	}
	if _, err := parser.ParseChain(got); err != nil {
		t.Fatalf("default chain does not parse: %v", err)
	}
}
