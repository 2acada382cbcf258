//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package trace

import (
	"io"
	"os"
)

// mapFile reads the whole file where memory mapping is not available
func mapFile(file *os.File) ([]byte, func() error, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
