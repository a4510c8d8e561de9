package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"wiiuid/internal/preflight"
	"wiiuid/internal/testsupport"
)

func TestCheckPassesForValidRecordFile(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithTitleDB("HAZA = Photo Channel\n"))

	out, _, err := runCLI(t, []string{"check", env.recordPath}, env.configPath)
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	requireContains(t, out, "== Preflight ==")
	requireContains(t, out, "[OK]")
	requireContains(t, out, "(3 records)")
	requireContains(t, out, "(1 titles)")
}

func TestCheckFailsForTruncatedRecordFile(t *testing.T) {
	env := setupCLITestEnv(t)
	path := filepath.Join(env.baseDir, "short.sys")
	testsupport.WriteBytes(t, path, make([]byte, 7))

	out, _, err := runCLI(t, []string{"check", path}, env.configPath)
	if err == nil {
		t.Fatal("expected preflight failure")
	}
	requireContains(t, out, "[ERROR]")
	requireContains(t, out, "not a multiple of 12")
}

func TestCheckWithoutInputs(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"check"}, env.configPath)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	requireContains(t, out, "nothing to check")
}

func TestCheckLinesOptionalFailureWarns(t *testing.T) {
	lines := checkLines([]preflight.Result{
		{Name: "Record file", Passed: true, Detail: "uid.sys (2 records)"},
		{Name: "Title catalog", Optional: true, Detail: "not imported yet"},
		{Name: "Log directory", Detail: "logs (error: does not exist)"},
	}, false)
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d: %q", len(lines), lines)
	}
	if !strings.Contains(lines[2], "[OK] uid.sys (2 records)") {
		t.Fatalf("unexpected ok line %q", lines[2])
	}
	if !strings.Contains(lines[3], "[WARN] not imported yet") {
		t.Fatalf("unexpected warn line %q", lines[3])
	}
	if !strings.Contains(lines[4], "[ERROR] logs") {
		t.Fatalf("unexpected error line %q", lines[4])
	}
}

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("Record file", statusError, "missing", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "Record file:", "[ERROR] missing")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("Record file", statusOK, "ok", true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatalf("expected non-file writer to disable color")
	}
}
