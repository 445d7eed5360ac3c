package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestPlain_StripsColor(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	c := color.New(color.FgRed)
	c.EnableColor()
	Version = c.Sprint("1") + ".2.3"
	if got := Plain(); got != "1.2.3" {
		t.Fatalf("Plain() = %q, want %q", got, "1.2.3")
	}
}

func TestCurrent_CarriesOverrides(t *testing.T) {
	origV, origC, origD := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origV, origC, origD }()

	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"

	got := Current()
	want := Info{Version: "1.2.3", GitCommit: "abc123def456", BuildDate: "2024-01-15T10:30:00Z"}
	if got != want {
		t.Fatalf("Current() = %+v, want %+v", got, want)
	}
}

func TestVersion_DefaultNotEmpty(t *testing.T) {
	if Plain() == "" {
		t.Error("Version should have a default value")
	}
}
