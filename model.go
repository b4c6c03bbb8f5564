package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sahilm/fuzzy"

	"gcmdr/internal/config"
	"gcmdr/internal/drives"
	"gcmdr/internal/logger"
	"gcmdr/internal/theme"
	"gcmdr/internal/undo"
	"gcmdr/internal/utils"
)

// Terminal dimension constants
const (
	minTerminalWidth  = 60 // Minimum usable width
	minTerminalHeight = 16 // Minimum usable height
	uiOverhead        = 6  // Header (1) + pane borders (2) + pane header (1) + status (1) + footer (1)
)

const (
	statusShort = 2 * time.Second
	statusLong  = 3 * time.Second
)

type mode int

const (
	modeNormal mode = iota
	modeConfirmDelete
	modeRename
	modeMkdir
	modeNewFile
	modeSortMenu
	modeThemePicker
	modeViewer
	modeDrives
	modeFilter
	modeHelp
	modeErrorDialog
)

const (
	paneLeft  = 0
	paneRight = 1
)

type fileItem struct {
	path    string
	name    string
	isDir   bool
	size    int64
	modTime time.Time
}

// pane is one of the two directory views
type pane struct {
	dir          string
	files        []fileItem // Entries after hidden-filter and sort, ".." first
	visible      []fileItem // files after the quick filter
	cursor       int
	scrollOffset int
	selected     map[string]bool // Multi-selection, keyed by absolute path
	filter       string
}

// deleteBatch is the state machine for a multi-item delete: one item at a
// time, each gated by a confirmation unless apply-to-all was chosen.
type deleteBatch struct {
	items    []fileItem
	index    int
	deleted  int
	failed   int
	applyAll bool
}

type model struct {
	mode         mode
	panes        [2]pane
	active       int // paneLeft or paneRight
	width        int
	height       int
	config       *config.Config
	themes       *theme.Manager
	undoMgr      *undo.Manager
	showHidden   bool
	sortOrder    string
	textInput    textinput.Model // Rename, mkdir, filter and theme dialogs
	statusMsg    string
	statusExpiry time.Time
	errorTitle   string
	errorDetails string
	pendingDel   *deleteBatch
	renameFrom   fileItem // Item being renamed
	sortCursor   int
	themeCursor  int
	themeMatches []string
	viewerTitle  string
	viewerLines  []string
	viewerScroll int
	driveList    []drives.Drive
	driveCursor  int
	helpScroll   int
}

func initialModel(cfg *config.Config, undoMgr *undo.Manager) model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40

	m := model{
		mode:         modeNormal,
		config:       cfg,
		themes:       theme.NewManager(cfg.Theme),
		undoMgr:      undoMgr,
		showHidden:   cfg.ShowHidden,
		sortOrder:    cfg.SortOrder,
		textInput:    ti,
		themeMatches: theme.Available(),
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = string(filepath.Separator)
	}
	m.panes[paneLeft] = newPane(firstValidDir(cfg.LeftPanelPath, cwd))
	m.panes[paneRight] = newPane(firstValidDir(cfg.RightPanelPath, cwd))
	m.loadPane(paneLeft)
	m.loadPane(paneRight)
	return m
}

func newPane(dir string) pane {
	return pane{
		dir:      dir,
		selected: make(map[string]bool),
	}
}

// firstValidDir returns path if it is an existing directory, else fallback
func firstValidDir(path, fallback string) string {
	if path != "" {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}
	return fallback
}

func (m *model) activePane() *pane {
	return &m.panes[m.active]
}

func (m *model) inactivePane() *pane {
	return &m.panes[1-m.active]
}

// loadPane reads the pane's directory and rebuilds its entry list
func (m *model) loadPane(side int) {
	p := &m.panes[side]
	p.files = p.files[:0]

	// ".." leads to the parent, or to the drives view at a root
	parent := filepath.Dir(p.dir)
	if parent != p.dir {
		p.files = append(p.files, fileItem{path: parent, name: "..", isDir: true})
	} else {
		p.files = append(p.files, fileItem{path: "", name: "..", isDir: true})
	}

	entries, err := os.ReadDir(p.dir)
	if err != nil {
		logger.Warn("Failed to read directory %s: %v", p.dir, err)
	}

	var items []fileItem
	for _, entry := range entries {
		name := entry.Name()
		if !m.showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		item := fileItem{
			path:  filepath.Join(p.dir, name),
			name:  name,
			isDir: entry.IsDir(),
		}
		// Entries we cannot stat stay listed with zero size
		if info, err := entry.Info(); err == nil {
			item.size = info.Size()
			item.modTime = info.ModTime()
		}
		items = append(items, item)
	}

	sortItems(items, m.sortOrder)
	p.files = append(p.files, items...)
	p.applyFilter()
	p.clampCursor()
}

// sortItems orders entries by the configured sort order. Directories come
// before files in every order.
func sortItems(items []fileItem, order string) {
	key, _, _ := strings.Cut(order, "_")
	desc := strings.HasSuffix(order, "_desc")

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.isDir != b.isDir {
			return a.isDir
		}
		var less bool
		switch key {
		case "size":
			if a.size == b.size {
				less = strings.ToLower(a.name) < strings.ToLower(b.name)
			} else {
				less = a.size < b.size
			}
		case "date":
			if a.modTime.Equal(b.modTime) {
				less = strings.ToLower(a.name) < strings.ToLower(b.name)
			} else {
				less = a.modTime.Before(b.modTime)
			}
		case "ext":
			ea, eb := utils.Ext(a.name), utils.Ext(b.name)
			if ea == eb {
				less = strings.ToLower(a.name) < strings.ToLower(b.name)
			} else {
				less = ea < eb
			}
		default:
			less = strings.ToLower(a.name) < strings.ToLower(b.name)
		}
		if desc {
			return !less
		}
		return less
	})
}

// applyFilter narrows the visible entry list by fuzzy-matching the pane
// filter against entry names. ".." is always kept.
func (p *pane) applyFilter() {
	if p.filter == "" {
		p.visible = p.files
		return
	}

	names := make([]string, 0, len(p.files))
	for _, f := range p.files {
		names = append(names, f.name)
	}

	// Filter into a fresh slice: p.visible may alias p.files after an
	// unfiltered pass, and appending through it would clobber the file list
	visible := make([]fileItem, 0, len(p.files))
	if len(p.files) > 0 && p.files[0].name == ".." {
		visible = append(visible, p.files[0])
	}
	for _, match := range fuzzy.Find(p.filter, names) {
		if p.files[match.Index].name == ".." {
			continue
		}
		visible = append(visible, p.files[match.Index])
	}
	p.visible = visible
	p.clampCursor()
}

func (p *pane) clampCursor() {
	if p.cursor >= len(p.visible) {
		p.cursor = len(p.visible) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.scrollOffset > p.cursor {
		p.scrollOffset = p.cursor
	}
}

// currentItem returns the entry under the cursor, or nil
func (p *pane) currentItem() *fileItem {
	if len(p.visible) == 0 || p.cursor >= len(p.visible) {
		return nil
	}
	return &p.visible[p.cursor]
}

// selectedItems returns the multi-selected entries in display order, or
// the focused entry when nothing is selected. ".." is never included.
func (p *pane) selectedItems() []fileItem {
	var items []fileItem
	if len(p.selected) > 0 {
		for _, f := range p.visible {
			if p.selected[f.path] {
				items = append(items, f)
			}
		}
		return items
	}
	if item := p.currentItem(); item != nil && item.name != ".." {
		items = append(items, *item)
	}
	return items
}

func (p *pane) clearSelection() {
	p.selected = make(map[string]bool)
}

// navigate moves the pane to dir and resets cursor, scroll and filter
func (m *model) navigate(side int, dir string) {
	p := &m.panes[side]
	p.dir = dir
	p.cursor = 0
	p.scrollOffset = 0
	p.filter = ""
	p.clearSelection()
	m.loadPane(side)
	m.savePanePaths()
}

// savePanePaths persists the pane directories so the next run starts there
func (m *model) savePanePaths() {
	m.config.LeftPanelPath = m.panes[paneLeft].dir
	m.config.RightPanelPath = m.panes[paneRight].dir
	if err := config.Save(m.config); err != nil {
		logger.Warn("Failed to save config: %v", err)
	}
}

func (m *model) setStatus(msg string, d time.Duration) {
	m.statusMsg = msg
	m.statusExpiry = time.Now().Add(d)
}

func (m *model) showError(title, details string) {
	m.errorTitle = title
	m.errorDetails = details
	m.mode = modeErrorDialog
	logger.Error("%s: %s", title, details)
}

// Helper methods for safe dimensions
func (m *model) getSafeWidth() int {
	if m.width < minTerminalWidth {
		return minTerminalWidth
	}
	return m.width
}

func (m *model) getSafeHeight() int {
	if m.height < minTerminalHeight {
		return minTerminalHeight
	}
	return m.height
}

// getContentHeight returns available rows for pane entries
func (m *model) getContentHeight() int {
	h := m.getSafeHeight() - uiOverhead
	if h < 3 {
		h = 3
	}
	return h
}
