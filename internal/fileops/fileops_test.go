package fileops

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCopyFile(t *testing.T) {
	tempDir := t.TempDir()

	// Create source file
	srcPath := filepath.Join(tempDir, "source.txt")
	content := []byte("test content")
	os.WriteFile(srcPath, content, 0644)

	// Copy file
	dstPath := filepath.Join(tempDir, "dest.txt")
	if err := Copy(srcPath, dstPath); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	// Verify content matches
	dstContent, err := os.ReadFile(dstPath)
	if err != nil {
		t.Fatalf("Destination file was not created: %v", err)
	}
	if string(dstContent) != string(content) {
		t.Error("Copied file content doesn't match original")
	}
}

func TestCopyPreservesModTime(t *testing.T) {
	tempDir := t.TempDir()

	srcPath := filepath.Join(tempDir, "source.txt")
	os.WriteFile(srcPath, []byte("x"), 0644)
	mtime := time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)
	os.Chtimes(srcPath, mtime, mtime)

	dstPath := filepath.Join(tempDir, "dest.txt")
	if err := Copy(srcPath, dstPath); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	info, err := os.Stat(dstPath)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(mtime) {
		t.Errorf("Modification time not preserved: got %v, want %v", info.ModTime(), mtime)
	}
}

func TestCopyDir(t *testing.T) {
	tempDir := t.TempDir()

	// Create source directory structure
	srcDir := filepath.Join(tempDir, "srcdir")
	os.Mkdir(srcDir, 0755)
	os.WriteFile(filepath.Join(srcDir, "file1.txt"), []byte("content1"), 0644)

	subdir := filepath.Join(srcDir, "subdir")
	os.Mkdir(subdir, 0755)
	os.WriteFile(filepath.Join(subdir, "file2.txt"), []byte("content2"), 0644)

	// Copy directory
	dstDir := filepath.Join(tempDir, "dstdir")
	if err := Copy(srcDir, dstDir); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	// Verify files were copied
	if _, err := os.Stat(filepath.Join(dstDir, "file1.txt")); os.IsNotExist(err) {
		t.Error("file1.txt was not copied")
	}
	if _, err := os.Stat(filepath.Join(dstDir, "subdir", "file2.txt")); os.IsNotExist(err) {
		t.Error("subdir/file2.txt was not copied")
	}
}

func TestCopyDirMergesExisting(t *testing.T) {
	tempDir := t.TempDir()

	srcDir := filepath.Join(tempDir, "srcdir")
	os.Mkdir(srcDir, 0755)
	os.WriteFile(filepath.Join(srcDir, "new.txt"), []byte("new"), 0644)

	// Destination exists and already has a file
	dstDir := filepath.Join(tempDir, "dstdir")
	os.Mkdir(dstDir, 0755)
	os.WriteFile(filepath.Join(dstDir, "old.txt"), []byte("old"), 0644)

	if err := Copy(srcDir, dstDir); err != nil {
		t.Fatalf("Copy into existing directory failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dstDir, "new.txt")); os.IsNotExist(err) {
		t.Error("new.txt was not merged into the existing destination")
	}
	if _, err := os.Stat(filepath.Join(dstDir, "old.txt")); os.IsNotExist(err) {
		t.Error("Existing destination contents were lost")
	}
}

func TestCopyMissingSource(t *testing.T) {
	tempDir := t.TempDir()

	err := Copy(filepath.Join(tempDir, "nope"), filepath.Join(tempDir, "dst"))
	if err == nil {
		t.Error("Expected error when copying a nonexistent source")
	}
}

func TestMove(t *testing.T) {
	tempDir := t.TempDir()

	srcPath := filepath.Join(tempDir, "source.txt")
	os.WriteFile(srcPath, []byte("moving"), 0644)

	dstPath := filepath.Join(tempDir, "dest.txt")
	if err := Move(srcPath, dstPath); err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	if _, err := os.Stat(srcPath); !os.IsNotExist(err) {
		t.Error("Source still exists after move")
	}
	data, err := os.ReadFile(dstPath)
	if err != nil || string(data) != "moving" {
		t.Error("Destination content doesn't match original")
	}
}

func TestMoveDirectory(t *testing.T) {
	tempDir := t.TempDir()

	srcDir := filepath.Join(tempDir, "srcdir")
	os.MkdirAll(filepath.Join(srcDir, "sub"), 0755)
	os.WriteFile(filepath.Join(srcDir, "sub", "f.txt"), []byte("deep"), 0644)

	dstDir := filepath.Join(tempDir, "dstdir")
	if err := Move(srcDir, dstDir); err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	if _, err := os.Stat(srcDir); !os.IsNotExist(err) {
		t.Error("Source directory still exists after move")
	}
	if _, err := os.Stat(filepath.Join(dstDir, "sub", "f.txt")); os.IsNotExist(err) {
		t.Error("Nested file missing after move")
	}
}

func TestDeleteFile(t *testing.T) {
	tempDir := t.TempDir()

	path := filepath.Join(tempDir, "doomed.txt")
	os.WriteFile(path, []byte("x"), 0644)

	if err := Delete(path); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("File still exists after delete")
	}
}

func TestDeleteDirectory(t *testing.T) {
	tempDir := t.TempDir()

	dir := filepath.Join(tempDir, "doomed")
	os.MkdirAll(filepath.Join(dir, "sub"), 0755)
	os.WriteFile(filepath.Join(dir, "sub", "f.txt"), []byte("x"), 0644)

	if err := Delete(dir); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("Directory still exists after delete")
	}
}

func TestDeleteMissing(t *testing.T) {
	if err := Delete(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Expected error when deleting a nonexistent path")
	}
}

func TestCreateDirectory(t *testing.T) {
	tempDir := t.TempDir()

	// Creates missing ancestors
	dir := filepath.Join(tempDir, "a", "b", "c")
	if err := CreateDirectory(dir); err != nil {
		t.Fatalf("CreateDirectory failed: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Error("Directory was not created")
	}

	// Creating an existing directory succeeds
	if err := CreateDirectory(dir); err != nil {
		t.Errorf("CreateDirectory on existing path should succeed, got %v", err)
	}
}

func TestRename(t *testing.T) {
	tempDir := t.TempDir()

	// Create a test file
	oldPath := filepath.Join(tempDir, "oldname.txt")
	os.WriteFile(oldPath, []byte("test content"), 0644)

	// Test successful rename
	if err := Rename(oldPath, "newname.txt"); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}

	// Verify new file exists, old one doesn't
	newPath := filepath.Join(tempDir, "newname.txt")
	if _, err := os.Stat(newPath); os.IsNotExist(err) {
		t.Error("Renamed file does not exist")
	}
	if _, err := os.Stat(oldPath); !os.IsNotExist(err) {
		t.Error("Old file still exists after rename")
	}
}

func TestCreateFile(t *testing.T) {
	tempDir := t.TempDir()

	if err := CreateFile(tempDir, "testfile.txt"); err != nil {
		t.Fatalf("CreateFile failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tempDir, "testfile.txt")); os.IsNotExist(err) {
		t.Error("File was not created")
	}
}

func TestGetInfo(t *testing.T) {
	tempDir := t.TempDir()

	path := filepath.Join(tempDir, "info.txt")
	os.WriteFile(path, []byte("12345"), 0644)

	info, err := GetInfo(path)
	if err != nil {
		t.Fatalf("GetInfo failed: %v", err)
	}
	if info.Name != "info.txt" {
		t.Errorf("Name = %q, want info.txt", info.Name)
	}
	if info.Size != 5 {
		t.Errorf("Size = %d, want 5", info.Size)
	}
	if info.IsDir {
		t.Error("IsDir = true for a regular file")
	}
	if info.ModTime.IsZero() {
		t.Error("ModTime not populated")
	}

	if _, err := GetInfo(filepath.Join(tempDir, "nope")); err == nil {
		t.Error("Expected error for a nonexistent path")
	}
}
