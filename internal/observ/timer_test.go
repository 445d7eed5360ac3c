package observ

import (
	"strings"
	"testing"
)

func TestTimer_Report(t *testing.T) {
	tm := NewTimer()
	lex := tm.Begin("lex")
	tm.End(lex, "6 tokens")
	parse := tm.Begin("parse")
	tm.End(parse, "")
	tm.End(42, "ignored")

	r := tm.Report()
	if len(r.Phases) != 2 || r.Phases[0].Name != "lex" || r.Phases[0].Note != "6 tokens" {
		t.Fatalf("report = %+v", r)
	}
	if r.TotalMS < r.Phases[0].DurationMS {
		t.Errorf("total %f < lex %f", r.TotalMS, r.Phases[0].DurationMS)
	}

	s := tm.Summary()
	for _, want := range []string{"timings:", "lex", "// 6 tokens", "parse", "total"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary misses %q:\n%s", want, s)
		}
	}
}

func TestTimer_Empty(t *testing.T) {
	if r := NewTimer().Report(); len(r.Phases) != 0 || r.TotalMS != 0 {
		t.Fatalf("empty report = %+v", r)
	}
}
