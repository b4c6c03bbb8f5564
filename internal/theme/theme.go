package theme

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// Scheme holds the colors for one theme
type Scheme struct {
	PanelBg      lipgloss.Color
	PanelFg      lipgloss.Color
	PanelBorder  lipgloss.Color
	SelectedBg   lipgloss.Color
	SelectedFg   lipgloss.Color
	HeaderBg     lipgloss.Color
	HeaderFg     lipgloss.Color
	FooterBg     lipgloss.Color
	FooterFg     lipgloss.Color
	CursorBg     lipgloss.Color
	CursorFg     lipgloss.Color
	DirectoryFg  lipgloss.Color
	ExecutableFg lipgloss.Color
	ArchiveFg    lipgloss.Color
}

var schemes = map[string]Scheme{
	"classic": {
		PanelBg:      "#0000aa",
		PanelFg:      "#00ffff",
		PanelBorder:  "#ffffff",
		SelectedBg:   "#00ffff",
		SelectedFg:   "#000000",
		HeaderBg:     "#00ffff",
		HeaderFg:     "#000000",
		FooterBg:     "#000000",
		FooterFg:     "#ffffff",
		CursorBg:     "#00aa00",
		CursorFg:     "#000000",
		DirectoryFg:  "#ffff00",
		ExecutableFg: "#00ff00",
		ArchiveFg:    "#ff00ff",
	},
	"dark": {
		PanelBg:      "#1e1e1e",
		PanelFg:      "#d4d4d4",
		PanelBorder:  "#3e3e3e",
		SelectedBg:   "#264f78",
		SelectedFg:   "#ffffff",
		HeaderBg:     "#007acc",
		HeaderFg:     "#ffffff",
		FooterBg:     "#000000",
		FooterFg:     "#ffffff",
		CursorBg:     "#0e639c",
		CursorFg:     "#ffffff",
		DirectoryFg:  "#4ec9b0",
		ExecutableFg: "#4fc1ff",
		ArchiveFg:    "#c586c0",
	},
	"light": {
		PanelBg:      "#ffffff",
		PanelFg:      "#000000",
		PanelBorder:  "#cccccc",
		SelectedBg:   "#0078d4",
		SelectedFg:   "#ffffff",
		HeaderBg:     "#f3f3f3",
		HeaderFg:     "#000000",
		FooterBg:     "#000000",
		FooterFg:     "#ffffff",
		CursorBg:     "#0078d4",
		CursorFg:     "#ffffff",
		DirectoryFg:  "#0066cc",
		ExecutableFg: "#008000",
		ArchiveFg:    "#800080",
	},
	"retro": {
		PanelBg:      "#000080",
		PanelFg:      "#00ffff",
		PanelBorder:  "#ffff00",
		SelectedBg:   "#00ffff",
		SelectedFg:   "#000080",
		HeaderBg:     "#00ffff",
		HeaderFg:     "#000080",
		FooterBg:     "#000000",
		FooterFg:     "#00ffff",
		CursorBg:     "#00ff00",
		CursorFg:     "#000000",
		DirectoryFg:  "#ffff00",
		ExecutableFg: "#00ff00",
		ArchiveFg:    "#ff00ff",
	},
	"monokai": {
		PanelBg:      "#272822",
		PanelFg:      "#f8f8f2",
		PanelBorder:  "#75715e",
		SelectedBg:   "#49483e",
		SelectedFg:   "#f8f8f2",
		HeaderBg:     "#3e3d32",
		HeaderFg:     "#f8f8f2",
		FooterBg:     "#000000",
		FooterFg:     "#f8f8f2",
		CursorBg:     "#66d9ef",
		CursorFg:     "#272822",
		DirectoryFg:  "#66d9ef",
		ExecutableFg: "#a6e22e",
		ArchiveFg:    "#ae81ff",
	},
}

// DefaultTheme is used when the configured theme name is unknown
const DefaultTheme = "retro"

// Manager tracks the active theme
type Manager struct {
	current string
}

// NewManager creates a theme manager, falling back to the default theme if
// name is unknown.
func NewManager(name string) *Manager {
	if _, ok := schemes[name]; !ok {
		name = DefaultTheme
	}
	return &Manager{current: name}
}

// Current returns the active theme name
func (m *Manager) Current() string {
	return m.current
}

// Scheme returns the active color scheme
func (m *Manager) Scheme() Scheme {
	return schemes[m.current]
}

// Set switches to the named theme
func (m *Manager) Set(name string) error {
	if _, ok := schemes[name]; !ok {
		return fmt.Errorf("theme %q not found", name)
	}
	m.current = name
	return nil
}

// Next cycles to the next theme in name order and returns its name
func (m *Manager) Next() string {
	names := Available()
	for i, name := range names {
		if name == m.current {
			m.current = names[(i+1)%len(names)]
			return m.current
		}
	}
	m.current = names[0]
	return m.current
}

// Available returns all theme names in stable order
func Available() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Match fuzzy-matches query against the theme names, best match first.
// An empty query returns all themes.
func Match(query string) []string {
	names := Available()
	if query == "" {
		return names
	}
	matches := fuzzy.Find(query, names)
	result := make([]string, 0, len(matches))
	for _, match := range matches {
		result = append(result, match.Str)
	}
	return result
}
