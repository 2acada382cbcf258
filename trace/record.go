// Package trace reads memory access traces and replays them against an MMU.
//
// A trace holds one access per line: a hexadecimal virtual address, with or
// without a 0x prefix, followed by R for a read or W for a write. Blank
// lines are skipped. Addresses are turned into page numbers by dividing by
// the page size.
package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/sibexico/memsim/mmu"
)

var (
	// ErrMalformedRecord is returned for lines that are not "<hex address> <R|W>"
	ErrMalformedRecord = errors.New("malformed trace record")
	// ErrInvalidPageSize is returned when the page size is zero
	ErrInvalidPageSize = errors.New("page size must be greater than 0")
)

// Record is a single memory access
type Record struct {
	Address uint64
	Page    mmu.PageID
	Write   bool
}

// String renders the record in trace file syntax
func (r Record) String() string {
	op := "R"
	if r.Write {
		op = "W"
	}
	return fmt.Sprintf("%08x %s", r.Address, op)
}

// ParseRecord parses one non-blank trace line
func ParseRecord(line string, pageSize uint64) (Record, error) {
	if pageSize == 0 {
		return Record{}, ErrInvalidPageSize
	}

	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Record{}, fmt.Errorf("%w: expected 2 fields, got %d", ErrMalformedRecord, len(fields))
	}

	hex := strings.TrimPrefix(strings.TrimPrefix(fields[0], "0x"), "0X")
	address, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: bad address %q", ErrMalformedRecord, fields[0])
	}

	var write bool
	switch strings.ToUpper(fields[1]) {
	case "R":
		write = false
	case "W":
		write = true
	default:
		return Record{}, fmt.Errorf("%w: bad access type %q", ErrMalformedRecord, fields[1])
	}

	page := address / pageSize
	if page > math.MaxInt64 {
		return Record{}, fmt.Errorf("%w: page of address %q out of range", ErrMalformedRecord, fields[0])
	}

	return Record{Address: address, Page: mmu.PageID(page), Write: write}, nil
}

// Reader decodes records from a trace stream
type Reader struct {
	scanner  *bufio.Scanner
	pageSize uint64
	line     int
	closers  []func() error
}

// NewReader creates a reader over an uncompressed trace stream
func NewReader(r io.Reader, pageSize uint64) *Reader {
	return &Reader{
		scanner:  bufio.NewScanner(r),
		pageSize: pageSize,
	}
}

// Next returns the next record, or io.EOF at the end of the trace.
// Parse errors carry the line number.
func (r *Reader) Next() (Record, error) {
	for r.scanner.Scan() {
		r.line++
		text := strings.TrimSpace(r.scanner.Text())
		if text == "" {
			continue
		}
		rec, err := ParseRecord(text, r.pageSize)
		if err != nil {
			return Record{}, fmt.Errorf("line %d: %w", r.line, err)
		}
		return rec, nil
	}
	if err := r.scanner.Err(); err != nil {
		return Record{}, fmt.Errorf("failed to read trace: %w", err)
	}
	return Record{}, io.EOF
}

// Line returns the number of the last line read
func (r *Reader) Line() int {
	return r.line
}

// ReadAll returns every remaining record
func (r *Reader) ReadAll() ([]Record, error) {
	var records []Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
}

// Close releases the underlying file, mapping and decompressor, in reverse order of acquisition
func (r *Reader) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	r.closers = nil
	return errors.Join(errs...)
}

// WriteRecords writes records in trace file syntax
func WriteRecords(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		if _, err := fmt.Fprintln(bw, rec.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}
