package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gcmdr/internal/logger"
)

// Sort orders accepted in the config file and the sort dialog.
var ValidSortOrders = []string{
	"name_asc", "name_desc",
	"size_asc", "size_desc",
	"date_asc", "date_desc",
	"ext_asc", "ext_desc",
}

// Config holds all gcmdr configuration
type Config struct {
	Theme             string `json:"theme"`
	ShowHidden        bool   `json:"show_hidden"`
	LeftPanelPath     string `json:"left_panel_path"`
	RightPanelPath    string `json:"right_panel_path"`
	SortOrder         string `json:"sort_order"`
	Editor            string `json:"editor"`
	ConfirmOperations bool   `json:"confirm_operations"`
	MaxUndoHistory    int    `json:"max_undo_history"`
	UndoBackupDir     string `json:"undo_backup_dir"` // Empty means the default under the OS temp dir
	StrictDelete      bool   `json:"strict_delete"`   // Refuse deletes whose undo backup could not be created
}

// Load reads config from ~/.config/gcmdr/config.json
func Load() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		logger.Error("Failed to get home directory: %v", err)
		// Fallback to current directory
		homeDir = "."
	}
	configDir := filepath.Join(homeDir, ".config", "gcmdr")
	configPath := filepath.Join(configDir, "config.json")

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		logger.Error("Failed to create config directory %s: %v", configDir, err)
	}

	defaultConfig := &Config{
		Theme:             "retro",
		ShowHidden:        false,
		LeftPanelPath:     "",
		RightPanelPath:    "",
		SortOrder:         "name_asc",
		Editor:            "",
		ConfirmOperations: true,
		MaxUndoHistory:    50,
		UndoBackupDir:     "",
		StrictDelete:      false,
	}

	// Try to load existing config
	data, err := os.ReadFile(configPath)
	if err != nil {
		// Save default config and return it
		if err := Save(defaultConfig); err != nil {
			logger.Warn("Failed to save default config: %v", err)
		}
		return defaultConfig
	}

	config := &Config{}
	if err := json.Unmarshal(data, config); err != nil {
		logger.Warn("Failed to parse config file %s: %v, using defaults", configPath, err)
		return defaultConfig
	}

	if config.Theme == "" {
		config.Theme = defaultConfig.Theme
	}
	if !isValidSortOrder(config.SortOrder) {
		if config.SortOrder != "" {
			logger.Warn("Unknown sort order %q, using %q", config.SortOrder, defaultConfig.SortOrder)
		}
		config.SortOrder = defaultConfig.SortOrder
	}

	// Validate undo history bounds
	if config.MaxUndoHistory <= 0 {
		config.MaxUndoHistory = defaultConfig.MaxUndoHistory
	} else if config.MaxUndoHistory > 500 {
		logger.Warn("MaxUndoHistory too high (%d), using maximum of 500", config.MaxUndoHistory)
		config.MaxUndoHistory = 500
	}

	return config
}

// Save writes config to ~/.config/gcmdr/config.json
func Save(config *Config) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		logger.Error("Failed to get home directory: %v", err)
		return fmt.Errorf("cannot get home directory: %w", err)
	}
	configDir := filepath.Join(homeDir, ".config", "gcmdr")
	configPath := filepath.Join(configDir, "config.json")

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		logger.Error("Failed to create config directory %s: %v", configDir, err)
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		logger.Error("Failed to marshal config: %v", err)
		return fmt.Errorf("cannot marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		logger.Error("Failed to write config file %s: %v", configPath, err)
		return fmt.Errorf("cannot write config file: %w", err)
	}

	return nil
}

func isValidSortOrder(order string) bool {
	for _, s := range ValidSortOrders {
		if s == order {
			return true
		}
	}
	return false
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "gcmdr", "config.json"), nil
}
