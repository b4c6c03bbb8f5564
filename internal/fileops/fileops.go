package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	cp "github.com/otiai10/copy"
)

// Info describes a single file or directory
type Info struct {
	Name    string
	Size    int64
	IsDir   bool
	ModTime time.Time
}

// Copy copies a file or directory from src to dst. Directories are copied
// recursively and merge into an existing destination directory; modification
// times are preserved.
func Copy(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("cannot copy %s: %w", src, err)
	}

	opts := cp.Options{
		PreserveTimes: true,
		OnDirExists: func(src, dst string) cp.DirExistsAction {
			return cp.Merge
		},
	}
	if err := cp.Copy(src, dst, opts); err != nil {
		return fmt.Errorf("cannot copy %s to %s: %w", info.Name(), dst, err)
	}
	return nil
}

// Move relocates a file or directory, crossing devices if required
func Move(src, dst string) error {
	if err := os.Rename(src, dst); err != nil {
		// Rename fails across devices; copy then delete instead
		if err := Copy(src, dst); err != nil {
			return err
		}
		if err := os.RemoveAll(src); err != nil {
			return fmt.Errorf("cannot remove %s after copy: %w", src, err)
		}
	}
	return nil
}

// Delete removes a file or, recursively, a directory
func Delete(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot delete %s: %w", path, err)
	}
	if info.IsDir() {
		return os.RemoveAll(path)
	}
	return os.Remove(path)
}

// CreateDirectory creates path and any missing parents. Succeeds if the
// directory already exists.
func CreateDirectory(path string) error {
	return os.MkdirAll(path, 0755)
}

// Rename renames a file or directory in place. newName is a bare name, not
// a path; the destination is a sibling of src.
func Rename(src, newName string) error {
	dst := filepath.Join(filepath.Dir(src), newName)
	return os.Rename(src, dst)
}

// CreateFile creates a new empty file
func CreateFile(dir, name string) error {
	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	return file.Close()
}

// GetInfo queries size, directory flag and modification time for a path
func GetInfo(path string) (*Info, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return &Info{
		Name:    stat.Name(),
		Size:    stat.Size(),
		IsDir:   stat.IsDir(),
		ModTime: stat.ModTime(),
	}, nil
}
