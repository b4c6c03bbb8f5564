package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"gcmdr/internal/config"
	"gcmdr/internal/logger"
	"gcmdr/internal/undo"
)

func main() {
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
	}
	defer logger.Close()

	cfg := config.Load()
	logger.Info("Starting with theme=%s sort=%s", cfg.Theme, cfg.SortOrder)

	undoMgr, err := undo.NewManager(cfg.UndoBackupDir, cfg.MaxUndoHistory)
	if err != nil {
		log.Fatal(err)
	}
	logger.Info("Undo backups in %s (history limit %d)", undoMgr.BackupDir(), cfg.MaxUndoHistory)

	m := initialModel(cfg, undoMgr)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
