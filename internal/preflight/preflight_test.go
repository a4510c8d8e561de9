package preflight_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"wiiuid/internal/preflight"
	"wiiuid/internal/testsupport"
	"wiiuid/internal/uidsys"
)

func TestRunAllWithRecordFileAndTitleDB(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithTitleDB("ABCD = Test Title\n"))
	recordPath := filepath.Join(testsupport.BaseDir(cfg), "uid.sys")
	testsupport.WriteUIDFile(t, recordPath,
		uidsys.TitleRecord{TitleID: 0x0000000100000002, InstallSlot: 0x1000},
		uidsys.TitleRecord{TitleID: 0x0001000141424344, InstallSlot: 0x1001})

	results := preflight.RunAll(context.Background(), cfg, recordPath)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %+v", results)
	}
	if !results[0].Passed || !strings.Contains(results[0].Detail, "2 records") {
		t.Fatalf("unexpected record file result: %+v", results[0])
	}
	if !results[1].Passed || !strings.Contains(results[1].Detail, "1 titles") {
		t.Fatalf("unexpected title db result: %+v", results[1])
	}
	if preflight.Failed(results) {
		t.Fatal("expected no failures")
	}
}

func TestCheckRecordFileDetectsPartialRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uid.sys")
	testsupport.WriteBytes(t, path, make([]byte, 13))

	res := preflight.CheckRecordFile("Record file", path)
	if res.Passed || !strings.Contains(res.Detail, "not a multiple of 12") {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestCheckRecordFileMissing(t *testing.T) {
	res := preflight.CheckRecordFile("Record file", filepath.Join(t.TempDir(), "missing.sys"))
	if res.Passed || !strings.Contains(res.Detail, "does not exist") {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !preflight.Failed([]preflight.Result{res}) {
		t.Fatal("expected required failure to be reported")
	}
}

func TestCheckTitleDBMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titles.txt")
	testsupport.WriteTitleDB(t, path, "ABCD = ok\nbroken\n")

	res := preflight.CheckTitleDB("Title database", path)
	if res.Passed || !strings.Contains(res.Detail, "malformed line 2") {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestRunAllCatalogNotImported(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithCatalog())
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}

	results := preflight.RunAll(context.Background(), cfg, "")
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %+v", results)
	}
	if !results[0].Passed {
		t.Fatalf("expected catalog directory to pass: %+v", results[0])
	}
	if results[1].Passed || !results[1].Optional || !strings.Contains(results[1].Detail, "not imported yet") {
		t.Fatalf("unexpected catalog result: %+v", results[1])
	}
	if preflight.Failed(results) {
		t.Fatal("optional catalog result must not fail the run")
	}
}

func TestCheckDirectoryAccessRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	testsupport.WriteBytes(t, path, []byte("x"))

	res := preflight.CheckDirectoryAccess("Dir", path)
	if res.Passed || !strings.Contains(res.Detail, "is not a directory") {
		t.Fatalf("unexpected result: %+v", res)
	}
}
