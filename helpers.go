package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/skratchdot/open-golang/open"

	"gcmdr/internal/utils"
)

// Helper functions

func (m *model) openFile(path string) tea.Cmd {
	return func() tea.Msg {
		// Code files go to an editor when one is available
		if utils.IsCodeFile(path) {
			editors := []string{"code", "subl", "vim", "nano"}
			for _, editor := range editors {
				if utils.CommandExists(editor) {
					exec.Command(editor, path).Start()
					return nil
				}
			}
		}
		// System default opener handles Linux/macOS/Windows automatically
		open.Run(path)
		return nil
	}
}

func (m *model) editFile(path string) tea.Cmd {
	return func() tea.Msg {
		// Use configured editor if set, otherwise try defaults
		editors := []string{}
		if m.config.Editor != "" {
			editors = append(editors, m.config.Editor)
		}
		editors = append(editors, "code", "vim", "nano", "vi")

		for _, editor := range editors {
			if utils.CommandExists(editor) {
				cmd := exec.Command(editor, path)
				cmd.Stdin = os.Stdin
				cmd.Stdout = os.Stdout
				cmd.Stderr = os.Stderr
				cmd.Run()
				break
			}
		}
		return nil
	}
}

func (m *model) copyPath(path string) {
	// Use clipboard library for cross-platform support
	err := clipboard.WriteAll(path)
	if err == nil {
		m.setStatus(fmt.Sprintf("Copied: %s", filepath.Base(path)), statusShort)
	} else {
		m.setStatus(fmt.Sprintf("Failed to copy path: %v", err), statusLong)
	}
}
