package logging

import (
	"testing"

	"github.com/jonesrussell/grievance-analyzer/internal/logger"
)

func TestToFields(t *testing.T) {
	fields := toFields([]any{"key", "value", "count", 3})

	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Key != "key" {
		t.Errorf("expected key %q, got %q", "key", fields[0].Key)
	}
	if fields[1].Key != "count" {
		t.Errorf("expected key %q, got %q", "count", fields[1].Key)
	}
}

func TestToFields_DropsUnpairedValue(t *testing.T) {
	fields := toFields([]any{"key", "value", "dangling"})

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}
}

func TestToFields_SkipsNonStringKeys(t *testing.T) {
	fields := toFields([]any{42, "value", "key", "value"})

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}
	if fields[0].Key != "key" {
		t.Errorf("expected key %q, got %q", "key", fields[0].Key)
	}
}

func TestAdapter_ForwardsToLogger(t *testing.T) {
	// The nop-backed adapter must accept all levels without panicking.
	a := NewAdapter(logger.NewNop())

	a.Debug("debug", "k", "v")
	a.Info("info", "k", "v")
	a.Warn("warn", "k", "v")
	a.Error("error", "k", 1)
}

func TestNop(t *testing.T) {
	Nop().Info("discarded", "k", "v")
}
