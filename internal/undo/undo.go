package undo

import (
	"fmt"
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"

	"gcmdr/internal/logger"
)

// Kind identifies the type of a recorded file operation
type Kind int

const (
	KindCopy Kind = iota
	KindMove
	KindDelete
	KindMkdir
	KindRename
)

func (k Kind) String() string {
	switch k {
	case KindCopy:
		return "copy"
	case KindMove:
		return "move"
	case KindDelete:
		return "delete"
	case KindMkdir:
		return "mkdir"
	case KindRename:
		return "rename"
	}
	return "unknown"
}

// Action is one recorded, reversible file operation. Which fields are
// meaningful depends on Kind: Copy/Move/Rename use Source and Destination,
// Delete uses Source and BackupPath, Mkdir uses only Source.
type Action struct {
	Kind        Kind
	Source      string
	Destination string
	BackupPath  string
}

// DefaultMaxHistory bounds the undo history when no limit is configured
const DefaultMaxHistory = 50

// Manager keeps a bounded LIFO history of file operations and the on-disk
// backups needed to reverse deletions. It owns its backup directory
// exclusively and assumes a single caller; it is not safe for concurrent
// use.
type Manager struct {
	history    []Action
	maxHistory int
	backupDir  string
	seq        int // Monotonic backup name counter, never reused
}

// NewManager creates a manager whose delete backups live under backupRoot.
// An empty backupRoot selects a fixed directory under the OS temp area;
// maxHistory <= 0 selects DefaultMaxHistory.
func NewManager(backupRoot string, maxHistory int) (*Manager, error) {
	if backupRoot == "" {
		backupRoot = filepath.Join(os.TempDir(), "gcmdr-undo")
	}
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	if err := os.MkdirAll(backupRoot, 0755); err != nil {
		return nil, fmt.Errorf("cannot create backup directory %s: %w", backupRoot, err)
	}
	return &Manager{
		maxHistory: maxHistory,
		backupDir:  backupRoot,
	}, nil
}

// BackupDir returns the directory holding delete backups
func (m *Manager) BackupDir() string {
	return m.backupDir
}

// Len returns the number of actions currently in the history
func (m *Manager) Len() int {
	return len(m.history)
}

// RecordCopy records a completed copy of source to destination
func (m *Manager) RecordCopy(source, destination string) {
	m.add(Action{Kind: KindCopy, Source: source, Destination: destination})
}

// RecordMove records a completed move of source to destination
func (m *Manager) RecordMove(source, destination string) {
	m.add(Action{Kind: KindMove, Source: source, Destination: destination})
}

// RecordDelete backs up path into the backup directory and records the
// pending deletion. It must be called before the delete itself. Returns
// false if the backup could not be created, in which case nothing is
// recorded and the caller decides whether to delete unprotected.
func (m *Manager) RecordDelete(path string) bool {
	backupName := fmt.Sprintf("%d_%s", m.seq, filepath.Base(path))
	backupPath := filepath.Join(m.backupDir, backupName)
	m.seq++

	if err := cp.Copy(path, backupPath, cp.Options{PreserveTimes: true}); err != nil {
		logger.Warn("Failed to back up %s for undo: %v", path, err)
		return false
	}

	m.add(Action{Kind: KindDelete, Source: path, BackupPath: backupPath})
	return true
}

// RecordMkdir records a completed directory creation
func (m *Manager) RecordMkdir(path string) {
	m.add(Action{Kind: KindMkdir, Source: path})
}

// RecordRename records a completed rename of oldPath to newPath
func (m *Manager) RecordRename(oldPath, newPath string) {
	m.add(Action{Kind: KindRename, Source: oldPath, Destination: newPath})
}

// add appends an action, evicting the oldest entry (and its backup, if any)
// once the history exceeds its bound.
func (m *Manager) add(action Action) {
	m.history = append(m.history, action)
	if len(m.history) > m.maxHistory {
		oldest := m.history[0]
		m.history = m.history[1:]
		if oldest.BackupPath != "" {
			if err := os.RemoveAll(oldest.BackupPath); err != nil {
				logger.Warn("Failed to remove evicted backup %s: %v", oldest.BackupPath, err)
			}
		}
	}
}

// CanUndo reports whether there is an action to undo
func (m *Manager) CanUndo() bool {
	return len(m.history) > 0
}

// Undo reverses the most recent action and returns a user-facing message.
// The action is removed from the history whether or not the reversal
// succeeds; a failed undo is not retried.
func (m *Manager) Undo() (bool, string) {
	if len(m.history) == 0 {
		return false, "Nothing to undo"
	}

	action := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]

	switch action.Kind {
	case KindCopy:
		// Reverse a copy by removing whatever sits at the destination
		if exists(action.Destination) {
			if err := os.RemoveAll(action.Destination); err != nil {
				return false, fmt.Sprintf("Undo failed: %v", err)
			}
		}
		return true, fmt.Sprintf("Undid copy: removed %s", filepath.Base(action.Destination))

	case KindMove:
		if exists(action.Destination) {
			if err := moveBack(action.Destination, action.Source); err != nil {
				return false, fmt.Sprintf("Undo failed: %v", err)
			}
			return true, fmt.Sprintf("Undid move: restored %s", filepath.Base(action.Source))
		}
		return false, fmt.Sprintf("Cannot undo: %s no longer exists", filepath.Base(action.Destination))

	case KindDelete:
		if action.BackupPath != "" && exists(action.BackupPath) {
			if err := cp.Copy(action.BackupPath, action.Source, cp.Options{PreserveTimes: true}); err != nil {
				return false, fmt.Sprintf("Undo failed: %v", err)
			}
			if err := os.RemoveAll(action.BackupPath); err != nil {
				logger.Warn("Failed to remove backup %s after restore: %v", action.BackupPath, err)
			}
			return true, fmt.Sprintf("Undid delete: restored %s", filepath.Base(action.Source))
		}
		return false, "Cannot undo: backup not found"

	case KindMkdir:
		if info, err := os.Stat(action.Source); err == nil && info.IsDir() {
			// os.Remove refuses non-empty directories, which is the point:
			// never force-delete contents the user added since
			if err := os.Remove(action.Source); err != nil {
				return false, fmt.Sprintf("Cannot undo: %s is not empty", filepath.Base(action.Source))
			}
			return true, fmt.Sprintf("Undid mkdir: removed %s", filepath.Base(action.Source))
		}
		return false, fmt.Sprintf("Cannot undo: %s no longer exists", filepath.Base(action.Source))

	case KindRename:
		if exists(action.Destination) {
			if err := os.Rename(action.Destination, action.Source); err != nil {
				return false, fmt.Sprintf("Undo failed: %v", err)
			}
			return true, fmt.Sprintf("Undid rename: restored %s", filepath.Base(action.Source))
		}
		return false, fmt.Sprintf("Cannot undo: %s no longer exists", filepath.Base(action.Destination))
	}

	return false, "Unknown action type"
}

// LastActionDescription returns a preview of what the next Undo call would
// reverse, without mutating state.
func (m *Manager) LastActionDescription() string {
	if len(m.history) == 0 {
		return "Nothing to undo"
	}
	action := m.history[len(m.history)-1]
	switch action.Kind {
	case KindCopy:
		return fmt.Sprintf("Undo copy of %s", filepath.Base(action.Destination))
	case KindMove:
		return fmt.Sprintf("Undo move of %s", filepath.Base(action.Source))
	case KindDelete:
		return fmt.Sprintf("Undo delete of %s", filepath.Base(action.Source))
	case KindMkdir:
		return fmt.Sprintf("Undo mkdir %s", filepath.Base(action.Source))
	case KindRename:
		return fmt.Sprintf("Undo rename of %s", filepath.Base(action.Source))
	}
	return "Unknown action"
}

// Cleanup removes the backup directory and clears the history. The manager
// is done after this; call it once at shutdown.
func (m *Manager) Cleanup() {
	if err := os.RemoveAll(m.backupDir); err != nil {
		logger.Warn("Failed to remove backup directory %s: %v", m.backupDir, err)
	}
	m.history = nil
}

// moveBack undoes a move, falling back to copy-then-delete when the
// original move crossed devices.
func moveBack(from, to string) error {
	if err := os.Rename(from, to); err != nil {
		if err := cp.Copy(from, to, cp.Options{PreserveTimes: true}); err != nil {
			return err
		}
		return os.RemoveAll(from)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
