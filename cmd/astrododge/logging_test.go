package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/tmp/a.log", "/tmp/a.log"},
		{"rel/a.log", "rel/a.log"},
		{"~/.astrododge/a.log", filepath.Join(home, ".astrododge/a.log")},
	}

	for _, tt := range tests {
		got, err := expandHome(tt.in)
		if err != nil {
			t.Fatalf("expandHome(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("expandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOpenLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dodge.log")

	logger, closeLog, err := openLogger(path, true)
	if err != nil {
		t.Fatalf("openLogger: %v", err)
	}
	logger.Debug("spawned", "slot", 3)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "spawned") || !strings.Contains(string(data), "astrododge") {
		t.Errorf("log missing entry: %q", data)
	}
}

func TestOpenLoggerDiscard(t *testing.T) {
	logger, closeLog, err := openLogger("", false)
	if err != nil {
		t.Fatalf("openLogger: %v", err)
	}
	defer closeLog()
	logger.Info("dropped")
}
