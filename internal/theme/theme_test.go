package theme

import "testing"

func TestNewManagerUnknownTheme(t *testing.T) {
	m := NewManager("doesnotexist")
	if m.Current() != DefaultTheme {
		t.Errorf("Unknown theme should fall back to %q, got %q", DefaultTheme, m.Current())
	}
}

func TestSet(t *testing.T) {
	m := NewManager("retro")

	if err := m.Set("dark"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if m.Current() != "dark" {
		t.Errorf("Current = %q, want dark", m.Current())
	}

	if err := m.Set("bogus"); err == nil {
		t.Error("Expected error for unknown theme")
	}
	if m.Current() != "dark" {
		t.Error("Failed Set must not change the active theme")
	}
}

func TestNextCyclesAllThemes(t *testing.T) {
	m := NewManager(DefaultTheme)
	names := Available()

	seen := map[string]bool{m.Current(): true}
	for i := 1; i < len(names); i++ {
		seen[m.Next()] = true
	}
	if len(seen) != len(names) {
		t.Errorf("Cycling visited %d themes, want %d", len(seen), len(names))
	}

	// One full cycle returns to the start
	start := m.Current()
	for range names {
		m.Next()
	}
	if m.Current() != start {
		t.Error("Full cycle did not wrap around")
	}
}

func TestSchemeHasColors(t *testing.T) {
	for _, name := range Available() {
		m := NewManager(name)
		scheme := m.Scheme()
		if scheme.PanelBg == "" || scheme.CursorBg == "" || scheme.DirectoryFg == "" {
			t.Errorf("Theme %q has unset colors", name)
		}
	}
}

func TestMatch(t *testing.T) {
	matches := Match("mono")
	if len(matches) == 0 || matches[0] != "monokai" {
		t.Errorf("Match(mono) = %v, want monokai first", matches)
	}

	if got := Match(""); len(got) != len(Available()) {
		t.Errorf("Empty query should return all themes, got %v", got)
	}

	if got := Match("zzzzz"); len(got) != 0 {
		t.Errorf("Match(zzzzz) = %v, want none", got)
	}
}
