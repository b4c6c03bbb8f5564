package drives

import (
	"runtime"
	"testing"
)

func TestLabel(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix labels only")
	}

	cases := map[string]string{
		"/":           "Root",
		"/mnt/c":      "C:",
		"/mnt/backup": "backup",
		"/media/usb":  "usb",
		"/Volumes/TM": "TM",
	}
	for path, want := range cases {
		if got := Label(path); got != want {
			t.Errorf("Label(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestListHasRoot(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix mount points only")
	}

	var root *Drive
	all := List()
	for i := range all {
		if all[i].Path == "/" {
			root = &all[i]
			break
		}
	}
	if root == nil {
		t.Fatal("List() should include the root filesystem")
	}
	if root.Label != "Root" {
		t.Errorf("Root label = %q, want Root", root.Label)
	}
	if root.Total == 0 {
		t.Error("Root filesystem should report a total size")
	}
}

func TestListNoDuplicates(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range List() {
		if seen[d.Path] {
			t.Errorf("Duplicate drive path %q", d.Path)
		}
		seen[d.Path] = true
	}
}
