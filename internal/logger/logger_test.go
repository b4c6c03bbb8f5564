package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func initTestLogger(t *testing.T) string {
	t.Helper()
	homeDir := filepath.Join(t.TempDir(), "home")
	t.Setenv("HOME", homeDir)
	Enable()
	if err := Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(Close)
	return filepath.Join(homeDir, ".config", "gcmdr", "gcmdr.log")
}

func TestLevelsWriteToLogFile(t *testing.T) {
	logPath := initTestLogger(t)

	Info("started with theme=%s", "retro")
	Warn("config fallback")
	Error("operation failed: %d", 7)
	Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Cannot read log file: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "INFO: started with theme=retro") {
		t.Error("Info line missing from log")
	}
	if !strings.Contains(content, "WARN: config fallback") {
		t.Error("Warn line missing from log")
	}
	if !strings.Contains(content, "ERROR: operation failed: 7") {
		t.Error("Error line missing from log")
	}
}

func TestDisableSuppressesOutput(t *testing.T) {
	logPath := initTestLogger(t)

	Disable()
	defer Enable()
	Info("should not appear")
	Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Cannot read log file: %v", err)
	}
	if strings.Contains(string(data), "should not appear") {
		t.Error("Disabled logger still wrote to the log file")
	}
}
