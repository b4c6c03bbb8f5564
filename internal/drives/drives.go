package drives

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Drive is one mounted volume
type Drive struct {
	Path  string
	Label string
	Total uint64
	Free  uint64
}

// List returns all mounted drives/volumes with their labels and, where the
// platform allows it, total and free space.
func List() []Drive {
	var drives []Drive
	for _, path := range mountPoints() {
		drive := Drive{Path: path, Label: Label(path)}
		if total, free, err := diskUsage(path); err == nil {
			drive.Total = total
			drive.Free = free
		}
		drives = append(drives, drive)
	}
	return drives
}

// mountPoints returns candidate mount point paths per platform
func mountPoints() []string {
	var paths []string

	switch runtime.GOOS {
	case "windows":
		// Windows: Check drive letters A-Z
		for letter := 'A'; letter <= 'Z'; letter++ {
			drive := string(letter) + ":\\"
			if _, err := os.Stat(drive); err == nil {
				paths = append(paths, drive)
			}
		}

	case "darwin":
		// macOS: Check /Volumes
		volumesDir := "/Volumes"
		if entries, err := os.ReadDir(volumesDir); err == nil {
			for _, entry := range entries {
				if entry.IsDir() {
					paths = append(paths, filepath.Join(volumesDir, entry.Name()))
				}
			}
		}
		paths = append(paths, "/")

	default:
		// Linux/Unix: root plus anything under /mnt and /media
		paths = append(paths, "/")

		mntDir := "/mnt"
		if entries, err := os.ReadDir(mntDir); err == nil {
			for _, entry := range entries {
				if entry.IsDir() {
					mntPath := filepath.Join(mntDir, entry.Name())
					// Verify it's actually accessible
					if _, err := os.Stat(mntPath); err == nil {
						paths = append(paths, mntPath)
					}
				}
			}
		}

		mediaDir := "/media"
		if entries, err := os.ReadDir(mediaDir); err == nil {
			for _, entry := range entries {
				if entry.IsDir() {
					// /media often has user subdirectories
					userDir := filepath.Join(mediaDir, entry.Name())
					if userEntries, err := os.ReadDir(userDir); err == nil {
						for _, userEntry := range userEntries {
							if userEntry.IsDir() {
								mediaPath := filepath.Join(userDir, userEntry.Name())
								if _, err := os.Stat(mediaPath); err == nil {
									paths = append(paths, mediaPath)
								}
							}
						}
					}
				}
			}
		}
	}

	return removeDuplicates(paths)
}

// Label returns a human-readable label for a drive path
func Label(path string) string {
	switch runtime.GOOS {
	case "windows":
		return strings.ToUpper(string(path[0])) + ":"
	default:
		if path == "/" {
			return "Root"
		}
		if strings.HasPrefix(path, "/mnt/") {
			// WSL drives like /mnt/c -> "C:"
			driveLetter := strings.TrimPrefix(path, "/mnt/")
			if len(driveLetter) == 1 {
				return strings.ToUpper(driveLetter) + ":"
			}
		}
		return filepath.Base(path)
	}
}

func removeDuplicates(paths []string) []string {
	seen := make(map[string]bool)
	result := []string{}
	for _, path := range paths {
		if !seen[path] {
			seen[path] = true
			result = append(result, path)
		}
	}
	return result
}
