package titlecatalog_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"

	"wiiuid/internal/logging"
	"wiiuid/internal/titlecatalog"
	"wiiuid/internal/titledb"
)

func openCatalog(t *testing.T) *titlecatalog.Catalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "catalog.db")
	catalog, err := titlecatalog.Open(context.Background(), path, logging.NewNop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = catalog.Close() })
	return catalog
}

func mustParse(t *testing.T, text string) *titledb.Database {
	t.Helper()
	db, err := titledb.Parse(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return db
}

func TestImportAndLookup(t *testing.T) {
	ctx := context.Background()
	catalog := openCatalog(t)

	result, err := catalog.Import(ctx, "first.txt", mustParse(t, "ABCD = Test Title\nRSBE = Brawl\n"))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if result.Entries != 2 || result.ID == "" || result.Source != "first.txt" {
		t.Fatalf("unexpected import result: %+v", result)
	}

	name, err := catalog.Get(ctx, "ABCD")
	if err != nil || name != "Test Title" {
		t.Fatalf("Get(ABCD) = %q, %v", name, err)
	}
	if _, err := catalog.Get(ctx, "ZZZZ"); !errors.Is(err, titlecatalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	second, err := catalog.Import(ctx, "second.txt", mustParse(t, "ABCD = Renamed\n"))
	if err != nil {
		t.Fatalf("second Import: %v", err)
	}
	if second.ID == result.ID {
		t.Fatal("expected distinct import ids")
	}

	snapshot, err := catalog.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snapshot.Len() != 2 {
		t.Fatalf("expected 2 titles, got %d", snapshot.Len())
	}
	if name, _ := snapshot.Lookup("ABCD"); name != "Renamed" {
		t.Fatalf("expected re-import to replace name, got %q", name)
	}
	if name, _ := snapshot.Lookup("RSBE"); name != "Brawl" {
		t.Fatalf("expected earlier entry to survive, got %q", name)
	}

	stats, err := catalog.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Titles != 2 || stats.Imports != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.LastImport == nil || stats.LastImport.ID != second.ID {
		t.Fatalf("expected last import %s, got %+v", second.ID, stats.LastImport)
	}
}

func TestStatsEmptyCatalog(t *testing.T) {
	stats, err := openCatalog(t).Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Titles != 0 || stats.Imports != 0 || stats.LastImport != nil {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestImportRejectsConcurrentImport(t *testing.T) {
	catalog := openCatalog(t)

	other := flock.New(catalog.Path() + ".lock")
	locked, err := other.TryLock()
	if err != nil || !locked {
		t.Fatalf("acquire competing lock: %v (locked=%v)", err, locked)
	}
	defer func() { _ = other.Unlock() }()

	_, err = catalog.Import(context.Background(), "titles.txt", mustParse(t, "ABCD = Test Title\n"))
	if !errors.Is(err, titlecatalog.ErrCatalogBusy) {
		t.Fatalf("expected ErrCatalogBusy, got %v", err)
	}
}

func TestReopenPreservesEntries(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	first, err := titlecatalog.Open(ctx, path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := first.Import(ctx, "titles.txt", mustParse(t, "ABCD = Test Title\n")); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	second, err := titlecatalog.Open(ctx, path, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()
	if name, err := second.Get(ctx, "ABCD"); err != nil || name != "Test Title" {
		t.Fatalf("Get after reopen = %q, %v", name, err)
	}
}

func TestOpenDetectsSchemaMismatch(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	catalog, err := titlecatalog.Open(ctx, path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	_ = catalog.Close()

	raw, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open raw db: %v", err)
	}
	if _, err := raw.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	_ = raw.Close()

	if _, err := titlecatalog.Open(ctx, path, nil); !errors.Is(err, titlecatalog.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}
