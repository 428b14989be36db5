package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerRedactsSensitiveKeys(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewWithCore(core)

	log.Info("connecting", "postgres_password", "hunter2", "host", "db")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries: got=%d want=1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["postgres_password"] != "[REDACTED]" {
		t.Fatalf("password not redacted: %v", fields["postgres_password"])
	}
	if fields["host"] != "db" {
		t.Fatalf("host: got=%v want=db", fields["host"])
	}
}

func TestLoggerWithAddsContext(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewWithCore(core).With("repo", "CategoryRepo")

	log.Debug("list", "count", 3)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries: got=%d want=1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["repo"] != "CategoryRepo" {
		t.Fatalf("missing child logger field: %v", fields)
	}
	if fields["count"] != int64(3) {
		t.Fatalf("count: got=%v (%T)", fields["count"], fields["count"])
	}
}

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"development", "production", "test", ""} {
		log, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q): %v", mode, err)
		}
		log.Sync()
	}
}
