package trace

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sibexico/memsim/mmu"
)

func TestParseRecord(t *testing.T) {
	tests := []struct {
		line  string
		page  mmu.PageID
		write bool
	}{
		{"0041f7a0 R", 0x41f, false},
		{"13f5e2c0 W", 0x13f5e, true},
		{"0x00001000 r", 1, false},
		{"0X2fff w", 2, true},
		{"  00000fff   R  ", 0, false},
	}

	for _, tt := range tests {
		rec, err := ParseRecord(tt.line, mmu.DefaultPageSize)
		if err != nil {
			t.Errorf("ParseRecord(%q) failed: %v", tt.line, err)
			continue
		}
		if rec.Page != tt.page || rec.Write != tt.write {
			t.Errorf("ParseRecord(%q): expected page %d write=%v, got page %d write=%v",
				tt.line, tt.page, tt.write, rec.Page, rec.Write)
		}
	}
}

func TestParseRecordMalformed(t *testing.T) {
	for _, line := range []string{
		"0041f7a0",
		"0041f7a0 R extra",
		"zz R",
		"-10 R",
		"0041f7a0 X",
	} {
		if _, err := ParseRecord(line, mmu.DefaultPageSize); !errors.Is(err, ErrMalformedRecord) {
			t.Errorf("ParseRecord(%q): expected malformed record, got %v", line, err)
		}
	}

	if _, err := ParseRecord("ffffffffffffffff R", 1); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("Expected out of range page to be rejected, got %v", err)
	}
	if _, err := ParseRecord("1000 R", 0); !errors.Is(err, ErrInvalidPageSize) {
		t.Errorf("Expected invalid page size, got %v", err)
	}
}

func TestReaderSkipsBlankLines(t *testing.T) {
	input := "00001000 R\n\n   \n00002000 W\n"
	reader := NewReader(strings.NewReader(input), 4096)

	records, err := reader.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[1].Page != 2 || !records[1].Write {
		t.Errorf("Unexpected second record %+v", records[1])
	}
	if reader.Line() != 4 {
		t.Errorf("Expected 4 lines read, got %d", reader.Line())
	}
	if _, err := reader.Next(); err != io.EOF {
		t.Errorf("Expected EOF, got %v", err)
	}
}

func TestReaderReportsLine(t *testing.T) {
	reader := NewReader(strings.NewReader("00001000 R\nbogus\n"), 4096)

	if _, err := reader.Next(); err != nil {
		t.Fatal(err)
	}
	_, err := reader.Next()
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("Expected malformed record, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Expected line number in %q", err.Error())
	}
}

func TestWriteRecords(t *testing.T) {
	records := []Record{
		{Address: 0x1000, Page: 1},
		{Address: 0x2a00, Page: 2, Write: true},
	}

	var buf bytes.Buffer
	if err := WriteRecords(&buf, records); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "00001000 R\n00002a00 W\n" {
		t.Errorf("Unexpected output %q", buf.String())
	}

	back, err := NewReader(&buf, 4096).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != 2 || back[0] != records[0] || back[1] != records[1] {
		t.Errorf("Expected %v, got %v", records, back)
	}
}
