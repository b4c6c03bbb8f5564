//go:build !windows

package drives

import "golang.org/x/sys/unix"

// diskUsage returns total and free bytes for the filesystem holding path
func diskUsage(path string) (total, free uint64, err error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, 0, err
	}
	bsize := uint64(stat.Bsize)
	return stat.Blocks * bsize, stat.Bavail * bsize, nil
}
