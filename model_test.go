package main

import "testing"

func testPane(names ...string) pane {
	p := pane{selected: make(map[string]bool)}
	p.files = append(p.files, fileItem{name: "..", isDir: true})
	for _, name := range names {
		p.files = append(p.files, fileItem{name: name, path: "/tmp/" + name})
	}
	p.applyFilter()
	return p
}

func TestApplyFilterNarrowsEntries(t *testing.T) {
	p := testPane("beta", "delta", "gamma")

	p.filter = "gamma"
	p.applyFilter()

	if len(p.visible) != 2 {
		t.Fatalf("visible = %d entries, want 2 (.. and gamma)", len(p.visible))
	}
	if p.visible[0].name != ".." || p.visible[1].name != "gamma" {
		t.Errorf("visible = [%s %s], want [.. gamma]", p.visible[0].name, p.visible[1].name)
	}
}

func TestApplyFilterLeavesFileListIntact(t *testing.T) {
	p := testPane("beta", "delta", "gamma")

	// An unfiltered pass leaves visible aliasing files; the filtered pass
	// that follows must not write through that alias
	p.filter = "gamma"
	p.applyFilter()

	want := []string{"..", "beta", "delta", "gamma"}
	for i, name := range want {
		if p.files[i].name != name {
			t.Fatalf("files[%d] = %q, want %q", i, p.files[i].name, name)
		}
	}

	// Clearing the filter restores the full list
	p.filter = ""
	p.applyFilter()
	if len(p.visible) != len(want) {
		t.Fatalf("after clearing filter, visible = %d entries, want %d", len(p.visible), len(want))
	}
	for i, name := range want {
		if p.visible[i].name != name {
			t.Errorf("visible[%d] = %q, want %q", i, p.visible[i].name, name)
		}
	}
}

func TestSortItemsDirsFirst(t *testing.T) {
	items := []fileItem{
		{name: "zebra.txt", size: 10},
		{name: "alpha", isDir: true},
		{name: "beta.txt", size: 5},
	}
	sortItems(items, "size_desc")

	if !items[0].isDir {
		t.Error("Directories should sort before files in every order")
	}
	if items[1].name != "zebra.txt" || items[2].name != "beta.txt" {
		t.Errorf("Files not in descending size order: %s, %s", items[1].name, items[2].name)
	}
}
