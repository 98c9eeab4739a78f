package logger

import (
	"bytes"
	"os"
	"testing"
)

// capture redirects logger output to a buffer for the test's duration.
func capture(t *testing.T, verbose bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verbose)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestVerboseToggle(t *testing.T) {
	capture(t, false)

	if IsVerbose() {
		t.Error("expected verbose off")
	}
	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose on")
	}
}

func TestLevels_WhenVerbose(t *testing.T) {
	tests := []struct {
		name string
		log  func()
		want string
	}{
		{"debug", func() { Debug("fetched %d items", 3) }, "[DEBUG] fetched 3 items\n"},
		{"info", func() { Info("scrape complete") }, "[INFO] scrape complete\n"},
		{"warn", func() { Warn("skipping %s", "x") }, "[WARN] skipping x\n"},
		{"error", func() { Error("store failed") }, "[ERROR] store failed\n"},
		{"section", func() { Section("GitHub") }, "\n=== GitHub ===\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, true)
			tt.log()
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQuietByDefault(t *testing.T) {
	buf := capture(t, false)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Section("hidden")

	if buf.Len() > 0 {
		t.Errorf("expected no output when verbose is off, got %q", buf.String())
	}
}

func TestError_AlwaysPrinted(t *testing.T) {
	buf := capture(t, false)

	Error("boom: %v", os.ErrNotExist)

	if buf.Len() == 0 {
		t.Error("expected error output even when verbose is off")
	}
}
