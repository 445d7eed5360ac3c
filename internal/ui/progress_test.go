package ui

import (
	"errors"
	"strings"
	"testing"

	"angle/internal/driver"
)

func TestApplyEvent_StatusLabels(t *testing.T) {
	m := newProgressModel("parse", []string{"./a.ang", "b.ang"}, nil)

	m.applyEvent(driver.Event{File: "a.ang", Stage: driver.StageLex, Status: driver.StatusWorking})
	if got := m.items[0].status; got != "lexing" {
		t.Fatalf("status = %q, want lexing", got)
	}
	m.applyEvent(driver.Event{File: "a.ang", Stage: driver.StageParse, Status: driver.StatusDone})
	if got := m.items[0].status; got != "done" {
		t.Fatalf("status = %q, want done", got)
	}
	if got := m.items[1].status; got != "queued" {
		t.Fatalf("untouched status = %q, want queued", got)
	}
	if got := m.percent(); got != 0.5 {
		t.Fatalf("percent = %v, want 0.5", got)
	}
}

func TestApplyEvent_ErrorIsFinal(t *testing.T) {
	m := newProgressModel("parse", []string{"a.ang"}, nil)
	m.applyEvent(driver.Event{File: "a.ang", Stage: driver.StageLoad, Status: driver.StatusError, Err: errors.New("boom")})
	m.applyEvent(driver.Event{File: "a.ang", Stage: driver.StageLex, Status: driver.StatusWorking})
	if got := m.items[0].status; got != "error" {
		t.Fatalf("status = %q, want error", got)
	}
	if got := m.percent(); got != 1.0 {
		t.Fatalf("percent = %v, want 1", got)
	}
}

func TestApplyEvent_UnknownFileIgnored(t *testing.T) {
	m := newProgressModel("parse", []string{"a.ang"}, nil)
	if cmd := m.applyEvent(driver.Event{File: "zzz.ang", Stage: driver.StageLex, Status: driver.StatusWorking}); cmd != nil {
		t.Fatal("expected nil cmd for unknown file")
	}
	m.applyEvent(driver.Event{Stage: driver.StageParse, Status: driver.StatusWorking})
	if m.stageLabel != "parsing" {
		t.Fatalf("stageLabel = %q, want parsing", m.stageLabel)
	}
}

func TestView_ListsFiles(t *testing.T) {
	m := newProgressModel("parse", []string{"a.ang", "b.ang"}, nil)
	m.done = true
	view := m.View()
	for _, want := range []string{"done: parse", "a.ang", "b.ang", "queued"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"abcdefghij", 8, "ab..."},
		{"abcdef", 3, "abc"},
		{"日本語日本語", 9, "日..."},
		{"any", 0, "any"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestUpdate_DoneQuits(t *testing.T) {
	m := newProgressModel("parse", []string{"a.ang"}, nil)
	_, cmd := m.Update(doneMsg{})
	if !m.done || cmd == nil {
		t.Fatalf("done = %v, cmd = %v", m.done, cmd)
	}
}
