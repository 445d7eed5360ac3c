package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"off", LevelOff, false},
		{"", LevelOff, false},
		{"PHASE", LevelPhase, false},
		{"detail", LevelDetail, false},
		{"debug", LevelDebug, false},
		{"error", LevelError, false},
		{"loud", LevelOff, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestLevel_ShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelError, ScopeDriver, false},
		{LevelPhase, ScopePass, true},
		{LevelPhase, ScopeFile, false},
		{LevelDetail, ScopeFile, true},
		{LevelDetail, ScopeNode, false},
		{LevelDebug, ScopeNode, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%s.ShouldEmit(%s) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestStreamTracer_SpanText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)

	root := Begin(tr, ScopeDriver, "parse", 0)
	pass := Begin(tr, ScopePass, "lex", root.ID())
	pass.WithExtra("tokens", "6").WithExtra("file", "a.ang")
	pass.End("")
	Begin(tr, ScopeFile, "file:a.ang", pass.ID()).End("") // ниже уровня phase
	root.End("ok")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "[driver] → parse") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[2], "← lex {file=a.ang, tokens=6}") {
		t.Errorf("line 2 = %q", lines[2])
	}
	if !strings.Contains(lines[3], "← parse (ok)") {
		t.Errorf("line 3 = %q", lines[3])
	}
}

func TestStreamTracer_NDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	Point(tr, ScopeNode, "mismatch", "expected RAngle", 7)

	var ev map[string]any
	if err := json.Unmarshal(buf.Bytes(), &ev); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if ev["kind"] != "point" || ev["scope"] != "node" || ev["detail"] != "expected RAngle" {
		t.Errorf("event = %v", ev)
	}
	if ev["parent_id"] != float64(7) {
		t.Errorf("parent_id = %v", ev["parent_id"])
	}
}

func TestNew_OffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr.Enabled() {
		t.Fatalf("New(off) = %v, %v", tr, err)
	}
	span := Begin(tr, ScopeDriver, "x", 0)
	if span.ID() != 0 || span.End("") != 0 {
		t.Fatal("nop span must be inert")
	}
}

func TestNew_FormatByExtension(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelPhase, Output: &buf, OutputPath: "trace.ndjson"})
	if err != nil {
		t.Fatal(err)
	}
	Begin(tr, ScopeDriver, "tokenize", 0)
	if !strings.HasPrefix(buf.String(), "{") {
		t.Fatalf("expected ndjson output, got %q", buf.String())
	}
}

func TestContext(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatal("empty context must yield Nop")
	}
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)
	ctx := WithTracer(context.Background(), tr)
	if FromContext(ctx) != tr {
		t.Fatal("tracer not propagated")
	}
	span := Begin(tr, ScopeDriver, "d", 0)
	ctx = WithSpan(ctx, span)
	if ParentSpan(ctx) != span.ID() || ParentSpan(context.Background()) != 0 {
		t.Fatal("parent span not propagated")
	}
}

func TestFormatText_Point(t *testing.T) {
	ev := &Event{Time: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), Seq: 9, Kind: KindPoint, Scope: ScopePass, Name: "eof"}
	got := string(FormatEvent(ev, FormatText))
	if got != "03:04:05.000000 #9 [pass] • eof\n" {
		t.Errorf("got %q", got)
	}
}
