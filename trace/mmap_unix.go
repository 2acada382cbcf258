//go:build linux || darwin || freebsd || netbsd || openbsd

package trace

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// mapFile maps the whole file read-only. The returned release function
// unmaps it; the file itself stays open.
func mapFile(file *os.File) ([]byte, func() error, error) {
	info, err := file.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to stat file: %w", err)
	}

	size := info.Size()
	if size == 0 {
		// mmap rejects empty mappings
		return nil, func() error { return nil }, nil
	}

	data, err := unix.Mmap(int(file.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, fmt.Errorf("mmap failed: %w", err)
	}
	// access pattern hint only; reads work the same if it is rejected
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)

	return data, func() error { return unix.Munmap(data) }, nil
}
