package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sibexico/memsim/mmu"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"memsim"}, args...))
	return out.String(), err
}

func TestRunPrintsFinalStats(t *testing.T) {
	dir := t.TempDir()
	tracePath := filepath.Join(dir, "small.trace")
	writeFile(t, tracePath, "00001000 R\n00002000 W\n00003000 R\n")

	out, err := runApp(t, "run", "--frames", "2", "--policy", "clock", "--log-level", "error", tracePath)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for _, want := range []string{
		"Final Stats:",
		"Page Faults   : 3",
		"Disk Reads    : 3",
		"Disk Writes   : 1",
		"Total accesses: 3",
		"Page Fault Rate: 1.0000",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRunRejectsZeroFrames(t *testing.T) {
	dir := t.TempDir()
	tracePath := filepath.Join(dir, "small.trace")
	writeFile(t, tracePath, "00001000 R\n")

	_, err := runApp(t, "run", "--frames", "0", tracePath)
	if !mmu.IsErrorCode(err, mmu.ErrCodeInvalidFrameCount) {
		t.Errorf("Expected invalid frame count error, got %v", err)
	}
}

func TestRunStoresAndListsHistory(t *testing.T) {
	dir := t.TempDir()
	tracePath := filepath.Join(dir, "small.trace")
	dbPath := filepath.Join(dir, "results")
	writeFile(t, tracePath, "00001000 R\n00002000 W\n00001000 R\n")

	for _, policy := range []string{"lru", "clock"} {
		if _, err := runApp(t, "run", "--frames", "4", "--policy", policy,
			"--log-level", "error", "--results-db", dbPath, tracePath); err != nil {
			t.Fatalf("run %s failed: %v", policy, err)
		}
	}

	out, err := runApp(t, "history", "--results-db", dbPath)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header and 2 runs, got:\n%s", out)
	}
	if !strings.HasPrefix(lines[1], "clock") || !strings.HasPrefix(lines[2], "lru") {
		t.Errorf("Expected runs ordered by policy, got:\n%s", out)
	}

	out, err = runApp(t, "history", "--results-db", dbPath, "--policy", "lru")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(strings.TrimSpace(out), "\n") != 1 {
		t.Errorf("Expected a single lru run, got:\n%s", out)
	}
}

func TestRunRandomAliasesShareHistory(t *testing.T) {
	dir := t.TempDir()
	tracePath := filepath.Join(dir, "small.trace")
	dbPath := filepath.Join(dir, "results")
	writeFile(t, tracePath, "00001000 R\n00002000 W\n00003000 R\n")

	for _, policy := range []string{"random", "rand"} {
		if _, err := runApp(t, "run", "--frames", "2", "--policy", policy,
			"--log-level", "error", "--results-db", dbPath, tracePath); err != nil {
			t.Fatalf("run %s failed: %v", policy, err)
		}
	}

	for _, filter := range []string{"rand", "random"} {
		out, err := runApp(t, "history", "--results-db", dbPath, "--policy", filter)
		if err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(strings.TrimSpace(out), "\n")
		if len(lines) != 2 {
			t.Fatalf("history --policy %s: expected header and 1 run, got:\n%s", filter, out)
		}
		if !strings.HasPrefix(lines[1], mmu.PolicyRandom+" ") {
			t.Errorf("Expected run stored as %s, got %q", mmu.PolicyRandom, lines[1])
		}
	}
}

func TestConvertRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "plain.trace")
	dst := filepath.Join(dir, "packed.trace.lz4")
	writeFile(t, src, "00001000 R\n00002000 W\n")

	out, err := runApp(t, "convert", src, dst)
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if !strings.Contains(out, "converted 2 records") {
		t.Errorf("Unexpected output: %s", out)
	}

	out, err = runApp(t, "run", "--frames", "1", "--log-level", "error", dst)
	if err != nil {
		t.Fatalf("run on converted trace failed: %v", err)
	}
	if !strings.Contains(out, "Page Faults   : 2") {
		t.Errorf("Expected 2 faults, got:\n%s", out)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range tests {
		got, err := parseLogLevel(in)
		if err != nil {
			t.Errorf("parseLogLevel(%q) failed: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("parseLogLevel(%q): expected %v, got %v", in, want, got)
		}
	}

	if _, err := parseLogLevel("verbose"); err == nil {
		t.Error("Expected error for unknown level")
	}
}
