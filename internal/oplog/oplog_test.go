package oplog

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestAppendAndTail(t *testing.T) {
	log, err := New(filepath.Join(t.TempDir(), "logs", "shift.log"))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	log.Info("first %d", 1)
	log.Warn("second")
	log.Error("third")

	lines := log.Tail(10)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "INFO") || !strings.HasSuffix(lines[0], "first 1") {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[1], "WARN") {
		t.Fatalf("unexpected second line %q", lines[1])
	}
	if !strings.Contains(lines[2], "ERROR") {
		t.Fatalf("unexpected third line %q", lines[2])
	}
}

func TestTailLimitsToMostRecent(t *testing.T) {
	log, err := New(filepath.Join(t.TempDir(), "shift.log"))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		log.Info("entry %d", i)
	}
	lines := log.Tail(3)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.HasSuffix(lines[2], "entry 9") {
		t.Fatalf("expected most recent last, got %q", lines[2])
	}
}

func TestTailMissingFile(t *testing.T) {
	log, err := New(filepath.Join(t.TempDir(), "never-written.log"))
	if err != nil {
		t.Fatal(err)
	}
	if lines := log.Tail(5); lines != nil {
		t.Fatalf("expected nil for unwritten log, got %v", lines)
	}
}

func TestNilLogIsSafe(t *testing.T) {
	var log *Log
	log.Info("ignored")
	log.Warn("ignored")
	log.Error("ignored")
	if log.Path() != "" {
		t.Fatal("nil log should report an empty path")
	}
	if lines := log.Tail(5); lines != nil {
		t.Fatalf("expected nil tail, got %v", lines)
	}
}
