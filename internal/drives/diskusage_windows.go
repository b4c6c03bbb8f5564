//go:build windows

package drives

import "golang.org/x/sys/windows"

// diskUsage returns total and free bytes for the drive holding path
func diskUsage(path string) (total, free uint64, err error) {
	var freeToCaller, totalBytes, freeBytes uint64
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, 0, err
	}
	if err := windows.GetDiskFreeSpaceEx(pathPtr, &freeToCaller, &totalBytes, &freeBytes); err != nil {
		return 0, 0, err
	}
	return totalBytes, freeToCaller, nil
}
