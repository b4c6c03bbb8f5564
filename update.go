package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gcmdr/internal/config"
	"gcmdr/internal/drives"
	"gcmdr/internal/fileops"
	"gcmdr/internal/theme"
	"gcmdr/internal/utils"
)

// Sort dialog entries, aligned with config.ValidSortOrders
var sortOptions = []struct {
	order string
	label string
}{
	{"name_asc", "Name (A-Z)"},
	{"name_desc", "Name (Z-A)"},
	{"size_asc", "Size (Smallest first)"},
	{"size_desc", "Size (Largest first)"},
	{"date_asc", "Date (Oldest first)"},
	{"date_desc", "Date (Newest first)"},
	{"ext_asc", "Extension (A-Z)"},
	{"ext_desc", "Extension (Z-A)"},
}

const maxViewerSize = 1024 * 1024 // 1MB

func (m *model) Init() tea.Cmd {
	return tea.SetWindowTitle("gcmdr - dual pane commander")
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Clear expired status messages
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.width < minTerminalWidth {
			m.width = minTerminalWidth
		}
		if m.height < minTerminalHeight {
			m.height = minTerminalHeight
		}
		for i := range m.panes {
			m.ensureCursorVisible(&m.panes[i])
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeNormal:
			return m.updateNormal(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case modeRename, modeMkdir, modeNewFile:
			return m.updateInputDialog(msg)
		case modeSortMenu:
			return m.updateSortMenu(msg)
		case modeThemePicker:
			return m.updateThemePicker(msg)
		case modeViewer:
			return m.updateViewer(msg)
		case modeDrives:
			return m.updateDrives(msg)
		case modeFilter:
			return m.updateFilter(msg)
		case modeHelp:
			return m.updateHelp(msg)
		case modeErrorDialog:
			// Any key dismisses the error
			m.mode = modeNormal
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.activePane()

	switch msg.String() {
	case "ctrl+c", "q", "f10":
		return m, m.quit()

	case "tab":
		m.active = 1 - m.active
		return m, nil

	case "up", "k":
		m.moveCursor(p, -1)
	case "down", "j":
		m.moveCursor(p, 1)
	case "pgup":
		m.moveCursor(p, -m.getContentHeight())
	case "pgdown":
		m.moveCursor(p, m.getContentHeight())
	case "home", "g":
		p.cursor = 0
		m.ensureCursorVisible(p)
	case "end", "G":
		p.cursor = len(p.visible) - 1
		m.ensureCursorVisible(p)

	case "enter", "l", "right":
		return m.enterItem()

	case "backspace", "h", "left":
		return m.goParent()

	case " ":
		// Toggle selection and advance, panel header shows the count
		if item := p.currentItem(); item != nil && item.name != ".." {
			if p.selected[item.path] {
				delete(p.selected, item.path)
			} else {
				p.selected[item.path] = true
			}
			m.moveCursor(p, 1)
		}
		return m, nil

	case "esc":
		if p.filter != "" {
			p.filter = ""
			p.applyFilter()
			return m, nil
		}
		p.clearSelection()
		return m, nil

	case "/":
		m.mode = modeFilter
		m.textInput.Placeholder = "Filter..."
		m.textInput.SetValue(p.filter)
		m.textInput.Focus()
		return m, nil

	case "f1", "?":
		m.mode = modeHelp
		m.helpScroll = 0
		return m, nil

	case "f2", "t":
		name := m.themes.Next()
		m.config.Theme = name
		m.saveConfig()
		m.setStatus(fmt.Sprintf("Theme changed to: %s", name), statusShort)
		return m, nil

	case "T":
		m.mode = modeThemePicker
		m.themeCursor = 0
		m.themeMatches = theme.Available()
		m.textInput.Placeholder = "Theme..."
		m.textInput.SetValue("")
		m.textInput.Focus()
		return m, nil

	case "f3", "v":
		m.viewFile()
		return m, nil

	case "f4", "e":
		if item := p.currentItem(); item != nil && !item.isDir {
			return m, m.editFile(item.path)
		}
		return m, nil

	case "o":
		if item := p.currentItem(); item != nil && !item.isDir {
			return m, m.openFile(item.path)
		}
		return m, nil

	case "f5", "c":
		m.doCopy()
		return m, nil

	case "f6", "m":
		m.doMove()
		return m, nil

	case "f7", "n":
		m.mode = modeMkdir
		m.textInput.Placeholder = "Directory name..."
		m.textInput.SetValue("")
		m.textInput.Focus()
		return m, nil

	case "N":
		m.mode = modeNewFile
		m.textInput.Placeholder = "File name..."
		m.textInput.SetValue("")
		m.textInput.Focus()
		return m, nil

	case "f8", "d", "delete":
		m.startDelete()
		return m, nil

	case "r", "ctrl+n":
		if item := p.currentItem(); item != nil && item.name != ".." {
			m.renameFrom = *item
			m.mode = modeRename
			m.textInput.Placeholder = "New name..."
			m.textInput.SetValue(item.name)
			m.textInput.Focus()
		}
		return m, nil

	case "s", "ctrl+s":
		m.mode = modeSortMenu
		for i, opt := range sortOptions {
			if opt.order == m.sortOrder {
				m.sortCursor = i
				break
			}
		}
		return m, nil

	case "ctrl+d":
		m.openDrives()
		return m, nil

	case ".", "ctrl+h":
		m.showHidden = !m.showHidden
		m.config.ShowHidden = m.showHidden
		m.saveConfig()
		m.loadPane(paneLeft)
		m.loadPane(paneRight)
		if m.showHidden {
			m.setStatus("Hidden files are now shown", statusShort)
		} else {
			m.setStatus("Hidden files are now hidden", statusShort)
		}
		return m, nil

	case "u", "ctrl+z":
		m.doUndo()
		return m, nil

	case "y":
		if item := p.currentItem(); item != nil && item.name != ".." {
			m.copyPath(item.path)
		}
		return m, nil

	case "ctrl+r":
		m.loadPane(paneLeft)
		m.loadPane(paneRight)
		m.setStatus("Refreshed", statusShort)
		return m, nil
	}

	return m, nil
}

func (m *model) moveCursor(p *pane, delta int) {
	p.cursor += delta
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.cursor >= len(p.visible) {
		p.cursor = len(p.visible) - 1
	}
	m.ensureCursorVisible(p)
}

func (m *model) ensureCursorVisible(p *pane) {
	visible := m.getContentHeight()
	if p.cursor < p.scrollOffset {
		p.scrollOffset = p.cursor
	}
	if p.cursor >= p.scrollOffset+visible {
		p.scrollOffset = p.cursor - visible + 1
	}
	if p.scrollOffset < 0 {
		p.scrollOffset = 0
	}
}

// enterItem descends into a directory or opens a file
func (m *model) enterItem() (tea.Model, tea.Cmd) {
	p := m.activePane()
	item := p.currentItem()
	if item == nil {
		return m, nil
	}
	if item.name == ".." {
		return m.goParent()
	}
	if item.isDir {
		m.navigate(m.active, item.path)
		return m, nil
	}
	return m, m.openFile(item.path)
}

// goParent navigates up, or to the drives view when already at a root
func (m *model) goParent() (tea.Model, tea.Cmd) {
	p := m.activePane()
	parent := filepath.Dir(p.dir)
	if parent == p.dir {
		m.openDrives()
		return m, nil
	}
	prev := filepath.Base(p.dir)
	m.navigate(m.active, parent)
	// Put the cursor on the directory we came from
	for i, f := range p.visible {
		if f.name == prev {
			p.cursor = i
			break
		}
	}
	m.ensureCursorVisible(p)
	return m, nil
}

// doCopy copies the selection (or focused item) into the other pane
func (m *model) doCopy() {
	src := m.activePane()
	dstDir := m.inactivePane().dir
	items := src.selectedItems()
	if len(items) == 0 {
		return
	}

	succeeded, failed := 0, 0
	for _, item := range items {
		dst := filepath.Join(dstDir, item.name)
		if dst == item.path {
			failed++
			continue
		}
		if err := fileops.Copy(item.path, dst); err == nil {
			m.undoMgr.RecordCopy(item.path, dst)
			succeeded++
		} else {
			failed++
		}
	}

	src.clearSelection()
	m.loadPane(paneLeft)
	m.loadPane(paneRight)

	if len(items) == 1 && failed == 0 {
		m.setStatus(fmt.Sprintf("Copied: %s", items[0].name), statusShort)
	} else if len(items) == 1 {
		m.showError("COPY FAILED", fmt.Sprintf("Failed to copy: %s", items[0].name))
	} else {
		m.setStatus(fmt.Sprintf("Copied %d items, %d failed", succeeded, failed), statusLong)
	}
}

// doMove moves the selection (or focused item) into the other pane
func (m *model) doMove() {
	src := m.activePane()
	dstDir := m.inactivePane().dir
	items := src.selectedItems()
	if len(items) == 0 {
		return
	}

	succeeded, failed := 0, 0
	for _, item := range items {
		dst := filepath.Join(dstDir, item.name)
		if dst == item.path {
			failed++
			continue
		}
		if err := fileops.Move(item.path, dst); err == nil {
			m.undoMgr.RecordMove(item.path, dst)
			succeeded++
		} else {
			failed++
		}
	}

	src.clearSelection()
	m.loadPane(paneLeft)
	m.loadPane(paneRight)

	if len(items) == 1 && failed == 0 {
		m.setStatus(fmt.Sprintf("Moved: %s", items[0].name), statusShort)
	} else if len(items) == 1 {
		m.showError("MOVE FAILED", fmt.Sprintf("Failed to move: %s", items[0].name))
	} else {
		m.setStatus(fmt.Sprintf("Moved %d items, %d failed", succeeded, failed), statusLong)
	}
}

// startDelete begins the per-item delete state machine over the selection
func (m *model) startDelete() {
	items := m.activePane().selectedItems()
	if len(items) == 0 {
		return
	}
	m.pendingDel = &deleteBatch{items: items}
	if !m.config.ConfirmOperations {
		m.pendingDel.applyAll = true
	}
	m.advanceDelete()
}

// advanceDelete deletes items until one needs a confirmation prompt or the
// batch is done.
func (m *model) advanceDelete() {
	batch := m.pendingDel
	for batch.index < len(batch.items) {
		if !batch.applyAll {
			m.mode = modeConfirmDelete
			return
		}
		m.deleteOne(batch.items[batch.index])
		batch.index++
	}
	m.finishDelete()
}

// deleteOne backs up and deletes a single item, updating the batch tally.
// With strict_delete set, an item whose backup failed is left untouched.
func (m *model) deleteOne(item fileItem) {
	batch := m.pendingDel
	protected := m.undoMgr.RecordDelete(item.path)
	if !protected && m.config.StrictDelete {
		batch.failed++
		return
	}
	if err := fileops.Delete(item.path); err == nil {
		batch.deleted++
	} else {
		batch.failed++
	}
}

func (m *model) finishDelete() {
	batch := m.pendingDel
	m.pendingDel = nil
	m.mode = modeNormal
	m.activePane().clearSelection()
	m.loadPane(paneLeft)
	m.loadPane(paneRight)

	if len(batch.items) == 1 {
		item := batch.items[0]
		if batch.deleted == 1 {
			m.setStatus(fmt.Sprintf("Deleted: %s", item.name), statusShort)
		} else if batch.failed == 1 {
			m.showError("DELETE FAILED", fmt.Sprintf("Failed to delete: %s", item.name))
		}
		return
	}
	m.setStatus(fmt.Sprintf("Deleted %d items, %d failed", batch.deleted, batch.failed), statusLong)
}

func (m *model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	batch := m.pendingDel
	if batch == nil || batch.index >= len(batch.items) {
		m.mode = modeNormal
		return m, nil
	}

	switch msg.String() {
	case "y", "Y":
		m.deleteOne(batch.items[batch.index])
		batch.index++
		m.advanceDelete()
	case "a", "A":
		batch.applyAll = true
		m.advanceDelete()
	case "n", "N":
		batch.index++
		m.advanceDelete()
	case "esc", "ctrl+c":
		// Abandon the rest of the batch, keep what was already done
		m.finishDelete()
	}
	return m, nil
}

func (m *model) updateInputDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "esc", "ctrl+c":
		m.mode = modeNormal
		m.textInput.SetValue("")
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.textInput.Value())
		mode := m.mode
		m.mode = modeNormal
		m.textInput.SetValue("")
		if value == "" {
			return m, nil
		}
		switch mode {
		case modeMkdir:
			m.doMkdir(value)
		case modeNewFile:
			m.doCreateFile(value)
		default:
			m.doRename(value)
		}
		return m, nil
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *model) doMkdir(name string) {
	path := filepath.Join(m.activePane().dir, name)
	if err := fileops.CreateDirectory(path); err != nil {
		m.showError("MKDIR FAILED", fmt.Sprintf("Failed to create directory: %s", name))
		return
	}
	m.undoMgr.RecordMkdir(path)
	m.loadPane(m.active)
	m.setStatus(fmt.Sprintf("Created directory: %s", name), statusShort)
}

// doCreateFile makes an empty file in the active pane's directory. File
// creation is not recorded for undo.
func (m *model) doCreateFile(name string) {
	dir := m.activePane().dir
	if err := fileops.CreateFile(dir, name); err != nil {
		m.showError("CREATE FAILED", fmt.Sprintf("Failed to create file: %s", name))
		return
	}
	m.loadPane(m.active)
	m.setStatus(fmt.Sprintf("Created file: %s", name), statusShort)
}

func (m *model) doRename(newName string) {
	item := m.renameFrom
	if newName == item.name {
		// Renaming to the same name is a no-op and is not recorded
		return
	}
	if err := fileops.Rename(item.path, newName); err != nil {
		m.showError("RENAME FAILED", fmt.Sprintf("Failed to rename: %s", item.name))
		return
	}
	newPath := filepath.Join(filepath.Dir(item.path), newName)
	m.undoMgr.RecordRename(item.path, newPath)
	m.loadPane(paneLeft)
	m.loadPane(paneRight)
	m.setStatus(fmt.Sprintf("Renamed: %s -> %s", item.name, newName), statusShort)
}

func (m *model) doUndo() {
	if !m.undoMgr.CanUndo() {
		m.setStatus("Nothing to undo", statusShort)
		return
	}
	ok, message := m.undoMgr.Undo()
	m.loadPane(paneLeft)
	m.loadPane(paneRight)
	if ok {
		m.setStatus(message, statusLong)
	} else {
		m.showError("UNDO FAILED", message)
	}
}

func (m *model) updateSortMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c", "q":
		m.mode = modeNormal
	case "up", "k":
		if m.sortCursor > 0 {
			m.sortCursor--
		}
	case "down", "j":
		if m.sortCursor < len(sortOptions)-1 {
			m.sortCursor++
		}
	case "enter":
		m.sortOrder = sortOptions[m.sortCursor].order
		m.config.SortOrder = m.sortOrder
		m.saveConfig()
		m.loadPane(paneLeft)
		m.loadPane(paneRight)
		m.mode = modeNormal
		m.setStatus(fmt.Sprintf("Sort order: %s", sortOptions[m.sortCursor].label), statusShort)
	}
	return m, nil
}

func (m *model) updateThemePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "esc", "ctrl+c":
		m.mode = modeNormal
		m.textInput.SetValue("")
		return m, nil
	case "up", "ctrl+k":
		if m.themeCursor > 0 {
			m.themeCursor--
		}
		return m, nil
	case "down", "ctrl+j":
		if m.themeCursor < len(m.themeMatches)-1 {
			m.themeCursor++
		}
		return m, nil
	case "enter":
		if m.themeCursor < len(m.themeMatches) {
			name := m.themeMatches[m.themeCursor]
			if err := m.themes.Set(name); err == nil {
				m.config.Theme = name
				m.saveConfig()
				m.setStatus(fmt.Sprintf("Theme changed to: %s", name), statusShort)
			}
		}
		m.mode = modeNormal
		m.textInput.SetValue("")
		return m, nil
	}

	m.textInput, cmd = m.textInput.Update(msg)
	m.themeMatches = theme.Match(m.textInput.Value())
	if m.themeCursor >= len(m.themeMatches) {
		m.themeCursor = 0
	}
	return m, cmd
}

// viewFile loads the focused file into the read-only viewer
func (m *model) viewFile() {
	item := m.activePane().currentItem()
	if item == nil || item.name == ".." {
		return
	}
	if item.isDir {
		m.setStatus("Cannot view directory", statusShort)
		return
	}
	if utils.IsBinaryFile(item.path) {
		m.setStatus(fmt.Sprintf("%s looks binary, not viewing", item.name), statusShort)
		return
	}
	if item.size > maxViewerSize {
		m.setStatus(fmt.Sprintf("%s is too large to view", item.name), statusShort)
		return
	}

	data, err := os.ReadFile(item.path)
	if err != nil {
		m.showError("VIEW FAILED", fmt.Sprintf("Cannot read %s: %v", item.name, err))
		return
	}
	m.viewerTitle = item.name
	m.viewerLines = strings.Split(string(data), "\n")
	m.viewerScroll = 0
	m.mode = modeViewer
}

func (m *model) updateViewer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pageSize := m.getContentHeight()
	maxScroll := len(m.viewerLines) - pageSize
	if maxScroll < 0 {
		maxScroll = 0
	}

	switch msg.String() {
	case "esc", "q", "f3":
		m.mode = modeNormal
	case "up", "k":
		if m.viewerScroll > 0 {
			m.viewerScroll--
		}
	case "down", "j":
		if m.viewerScroll < maxScroll {
			m.viewerScroll++
		}
	case "pgup":
		m.viewerScroll -= pageSize
		if m.viewerScroll < 0 {
			m.viewerScroll = 0
		}
	case "pgdown":
		m.viewerScroll += pageSize
		if m.viewerScroll > maxScroll {
			m.viewerScroll = maxScroll
		}
	case "home", "g":
		m.viewerScroll = 0
	case "end", "G":
		m.viewerScroll = maxScroll
	}
	return m, nil
}

func (m *model) openDrives() {
	m.driveList = drives.List()
	m.driveCursor = 0
	m.mode = modeDrives
}

func (m *model) updateDrives(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c", "q":
		m.mode = modeNormal
	case "up", "k":
		if m.driveCursor > 0 {
			m.driveCursor--
		}
	case "down", "j":
		if m.driveCursor < len(m.driveList)-1 {
			m.driveCursor++
		}
	case "enter":
		if m.driveCursor < len(m.driveList) {
			m.navigate(m.active, m.driveList[m.driveCursor].Path)
		}
		m.mode = modeNormal
	}
	return m, nil
}

func (m *model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	p := m.activePane()

	switch msg.String() {
	case "esc", "ctrl+c":
		p.filter = ""
		p.applyFilter()
		m.mode = modeNormal
		m.textInput.SetValue("")
		return m, nil
	case "enter":
		m.mode = modeNormal
		m.textInput.SetValue("")
		return m, nil
	}

	m.textInput, cmd = m.textInput.Update(msg)
	p.filter = m.textInput.Value()
	p.applyFilter()
	return m, cmd
}

func (m *model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "f1", "?":
		m.mode = modeNormal
	case "up", "k":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	case "down", "j":
		m.helpScroll++
	}
	return m, nil
}

func (m *model) saveConfig() {
	if err := config.Save(m.config); err != nil {
		m.setStatus(fmt.Sprintf("Failed to save config: %v", err), statusLong)
	}
}

// quit tears down the undo backups and exits
func (m *model) quit() tea.Cmd {
	m.savePanePaths()
	m.undoMgr.Cleanup()
	return tea.Quit
}
