package prof

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSession_MemAndTrace(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		Mem:   filepath.Join(dir, "mem.pprof"),
		Trace: filepath.Join(dir, "trace.out"),
	}
	s, err := Start(opts)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Stop(); err != nil {
		t.Fatal(err)
	}
	// повторный Stop безопасен
	if err := s.Stop(); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{opts.Mem, opts.Trace} {
		info, err := os.Stat(p)
		if err != nil || info.Size() == 0 {
			t.Errorf("%s: info=%v err=%v", p, info, err)
		}
	}
}

func TestStart_BadPath(t *testing.T) {
	_, err := Start(Options{Trace: filepath.Join(t.TempDir(), "missing", "trace.out")})
	if err == nil {
		t.Fatal("expected error for unwritable trace path")
	}
}

func TestSession_NilStop(t *testing.T) {
	var s *Session
	if err := s.Stop(); err != nil {
		t.Fatal(err)
	}
}
