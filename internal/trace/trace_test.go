package trace

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
)

func TestParseLevel(t *testing.T) {
	if lvl, err := ParseLevel("Debug"); err != nil || lvl != tracing.LevelDebug {
		t.Fatalf("expected debug level, got %v (%v)", lvl, err)
	}
	if _, err := ParseLevel("Loud"); err == nil {
		t.Fatalf("expected invalid level to fail")
	}
}

func TestSetup(t *testing.T) {
	if err := Setup("Error"); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if lvl := tracing.Select("bangfe.engine").GetTraceLevel(); lvl != tracing.LevelError {
		t.Fatalf("expected error level, got %v", lvl)
	}
	if err := Setup("Loud"); err == nil {
		t.Fatalf("expected invalid level to fail")
	}
}
