package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsolePlainOutput(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Info("one")
	c.Success("two")
	c.Warning("three")
	c.Error("four")

	want := "[INFO] one\n[SUCCESS] two\n[WARNING] three\n[ERROR] four\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", got, want)
	}
}

func TestConsoleColorOutput(t *testing.T) {
	var buf bytes.Buffer
	c := &Console{w: &buf, color: true}

	c.Error("boom")
	if got := buf.String(); got != Red+"[ERROR] "+Reset+"boom\n" {
		t.Fatalf("unexpected colored output %q", got)
	}
}

func TestConsoleHeader(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).Header("Generating Icons")
	if got := buf.String(); got != "\n=== Generating Icons ===\n" {
		t.Fatalf("unexpected header %q", got)
	}
}

func TestNoColorForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).Info("x")
	if strings.Contains(buf.String(), "\033[") {
		t.Fatalf("expected no escape codes, got %q", buf.String())
	}
}
