package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestInfo_WritesJSONToAuditTrail(t *testing.T) {
	var audit bytes.Buffer
	log := New(Options{AuditTrail: &audit})

	log.Info("total results returned from query: %d", 1234)
	_ = log.Sync()

	var entry map[string]any
	if err := json.Unmarshal(audit.Bytes(), &entry); err != nil {
		t.Fatalf("audit entry is not JSON: %v (%q)", err, audit.String())
	}
	if entry["msg"] != "total results returned from query: 1234" {
		t.Errorf("unexpected msg: %v", entry["msg"])
	}
	if entry["level"] != "info" {
		t.Errorf("unexpected level: %v", entry["level"])
	}
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	var audit bytes.Buffer
	log := New(Options{AuditTrail: &audit})

	log.Debug("hidden %s", "detail")
	_ = log.Sync()

	if audit.Len() != 0 {
		t.Errorf("expected no output for debug when not verbose, got %q", audit.String())
	}
}

func TestDebug_WhenVerbose(t *testing.T) {
	var audit, console bytes.Buffer
	log := New(Options{AuditTrail: &audit, Console: &console, Verbose: true})

	log.Debug("test message %s", "arg")
	_ = log.Sync()

	if !strings.Contains(audit.String(), "test message arg") {
		t.Errorf("audit trail missing debug entry: %q", audit.String())
	}
	if !strings.Contains(console.String(), "test message arg") {
		t.Errorf("console missing debug entry: %q", console.String())
	}
}

func TestConsole_SilentWhenNotVerbose(t *testing.T) {
	var audit, console bytes.Buffer
	log := New(Options{AuditTrail: &audit, Console: &console})

	log.Warn("something odd")
	_ = log.Sync()

	if console.Len() != 0 {
		t.Errorf("expected no console output, got %q", console.String())
	}
	if !strings.Contains(audit.String(), "something odd") {
		t.Errorf("audit trail missing warning: %q", audit.String())
	}
}

func TestWith_AddsFields(t *testing.T) {
	var audit bytes.Buffer
	log := New(Options{AuditTrail: &audit}).With("theme", "algorithm")

	log.Error("fetch failed")
	_ = log.Sync()

	var entry map[string]any
	if err := json.Unmarshal(audit.Bytes(), &entry); err != nil {
		t.Fatalf("audit entry is not JSON: %v", err)
	}
	if entry["theme"] != "algorithm" {
		t.Errorf("expected theme field, got %v", entry["theme"])
	}
}

func TestSection(t *testing.T) {
	var audit bytes.Buffer
	log := New(Options{AuditTrail: &audit})

	log.Section("Algorithm")
	_ = log.Sync()

	if !strings.Contains(audit.String(), "=== Algorithm ===") {
		t.Errorf("unexpected section output: %q", audit.String())
	}
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Info("discarded")
	log.With("k", "v").Debug("discarded")
	if err := log.Sync(); err != nil {
		t.Errorf("unexpected sync error: %v", err)
	}
}

func TestNew_NoWritersIsNop(t *testing.T) {
	log := New(Options{Verbose: true})
	log.Info("discarded")
}
