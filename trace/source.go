package trace

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"github.com/pierrec/lz4/v4"
)

// Compression represents the compression format of a trace file
type Compression string

const (
	CompressionAuto   Compression = "auto"
	CompressionNone   Compression = "none"
	CompressionSnappy Compression = "snappy"
	CompressionLZ4    Compression = "lz4"
)

// DetectCompression guesses the compression of a trace file from its extension
func DetectCompression(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sz", ".snappy":
		return CompressionSnappy
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// Open opens a trace file. CompressionAuto picks the format from the file
// extension. Uncompressed files are memory mapped where supported.
func Open(path string, compression Compression, pageSize uint64) (*Reader, error) {
	if pageSize == 0 {
		return nil, ErrInvalidPageSize
	}
	if compression == CompressionAuto || compression == "" {
		compression = DetectCompression(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace %s: %w", path, err)
	}

	var (
		src     io.Reader
		closers = []func() error{file.Close}
	)

	switch compression {
	case CompressionNone:
		data, release, err := mapFile(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to map trace %s: %w", path, err)
		}
		src = bytes.NewReader(data)
		closers = append(closers, release)

	case CompressionSnappy:
		src = snappy.NewReader(file)

	case CompressionLZ4:
		src = lz4.NewReader(file)

	default:
		file.Close()
		return nil, fmt.Errorf("unsupported trace compression: %s", compression)
	}

	reader := NewReader(src, pageSize)
	reader.closers = closers
	return reader, nil
}

// NewCompressedWriter wraps w so that everything written is encoded in the
// given format. Close flushes the encoder but does not close w.
func NewCompressedWriter(w io.Writer, compression Compression) (io.WriteCloser, error) {
	switch compression {
	case CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionSnappy:
		return snappy.NewBufferedWriter(w), nil
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported trace compression: %s", compression)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// Convert re-encodes the trace at src into dst using the given compression.
// Records are validated on the way through.
func Convert(src, dst string, from, to Compression, pageSize uint64) (int, error) {
	if to == CompressionAuto || to == "" {
		to = DetectCompression(dst)
	}

	reader, err := Open(src, from, pageSize)
	if err != nil {
		return 0, err
	}
	defer reader.Close()

	records, err := reader.ReadAll()
	if err != nil {
		return 0, err
	}

	out, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	enc, err := NewCompressedWriter(out, to)
	if err != nil {
		return 0, err
	}
	if err := WriteRecords(enc, records); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", dst, err)
	}
	if err := enc.Close(); err != nil {
		return 0, fmt.Errorf("failed to flush %s: %w", dst, err)
	}
	return len(records), out.Close()
}
