package config

import (
	"os"
	"path/filepath"
	"testing"

	"gcmdr/internal/logger"
)

func setTestHome(t *testing.T) {
	t.Helper()
	logger.Disable()
	homeDir := filepath.Join(t.TempDir(), "home")
	t.Setenv("HOME", homeDir)
}

func TestLoadDefaultConfig(t *testing.T) {
	setTestHome(t)

	cfg := Load()

	if cfg == nil {
		t.Fatal("Load() returned nil")
	}
	if cfg.Theme != "retro" {
		t.Errorf("Default theme = %q, want retro", cfg.Theme)
	}
	if cfg.SortOrder != "name_asc" {
		t.Errorf("Default sort order = %q, want name_asc", cfg.SortOrder)
	}
	if cfg.MaxUndoHistory != 50 {
		t.Errorf("Default max undo history = %d, want 50", cfg.MaxUndoHistory)
	}
	if !cfg.ConfirmOperations {
		t.Error("Operations should require confirmation by default")
	}
	if cfg.StrictDelete {
		t.Error("Strict delete should be off by default")
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	setTestHome(t)

	cfg := &Config{
		Theme:             "monokai",
		ShowHidden:        true,
		LeftPanelPath:     "/test/left",
		RightPanelPath:    "/test/right",
		SortOrder:         "size_desc",
		Editor:            "vim",
		ConfirmOperations: false,
		MaxUndoHistory:    100,
		UndoBackupDir:     "/test/backups",
		StrictDelete:      true,
	}

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded := Load()
	if loaded.Theme != "monokai" {
		t.Errorf("Theme = %q, want monokai", loaded.Theme)
	}
	if loaded.LeftPanelPath != "/test/left" || loaded.RightPanelPath != "/test/right" {
		t.Error("Panel paths not round-tripped")
	}
	if loaded.SortOrder != "size_desc" {
		t.Errorf("SortOrder = %q, want size_desc", loaded.SortOrder)
	}
	if loaded.MaxUndoHistory != 100 {
		t.Errorf("MaxUndoHistory = %d, want 100", loaded.MaxUndoHistory)
	}
	if loaded.UndoBackupDir != "/test/backups" {
		t.Errorf("UndoBackupDir = %q, want /test/backups", loaded.UndoBackupDir)
	}
	if !loaded.StrictDelete {
		t.Error("StrictDelete not round-tripped")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	setTestHome(t)

	path, err := GetConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	os.MkdirAll(filepath.Dir(path), 0755)
	os.WriteFile(path, []byte("{not json"), 0644)

	cfg := Load()
	if cfg.Theme != "retro" {
		t.Error("Invalid config file should fall back to defaults")
	}
}

func TestLoadBoundsMaxUndoHistory(t *testing.T) {
	setTestHome(t)

	if err := Save(&Config{Theme: "dark", SortOrder: "name_asc", MaxUndoHistory: 9000}); err != nil {
		t.Fatal(err)
	}
	cfg := Load()
	if cfg.MaxUndoHistory != 500 {
		t.Errorf("MaxUndoHistory = %d, want cap of 500", cfg.MaxUndoHistory)
	}

	if err := Save(&Config{Theme: "dark", SortOrder: "name_asc", MaxUndoHistory: 0}); err != nil {
		t.Fatal(err)
	}
	cfg = Load()
	if cfg.MaxUndoHistory != 50 {
		t.Errorf("MaxUndoHistory = %d, want default of 50", cfg.MaxUndoHistory)
	}
}

func TestLoadInvalidSortOrder(t *testing.T) {
	setTestHome(t)

	if err := Save(&Config{Theme: "dark", SortOrder: "bogus"}); err != nil {
		t.Fatal(err)
	}
	cfg := Load()
	if cfg.SortOrder != "name_asc" {
		t.Errorf("SortOrder = %q, want fallback name_asc", cfg.SortOrder)
	}
}
