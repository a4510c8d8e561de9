package titlecatalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"wiiuid/internal/logging"
	"wiiuid/internal/titledb"
)

// Catalog manages title names persisted in SQLite.
type Catalog struct {
	db     *sql.DB
	path   string
	lock   *flock.Flock
	logger *slog.Logger
}

// ImportResult summarizes a completed import.
type ImportResult struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	Entries    int       `json:"entries"`
	ImportedAt time.Time `json:"imported_at"`
}

// Stats describes catalog contents.
type Stats struct {
	Path       string        `json:"path"`
	Titles     int           `json:"titles"`
	Imports    int           `json:"imports"`
	LastImport *ImportResult `json:"last_import,omitempty"`
}

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

// Open initializes or connects to the catalog database at path.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Catalog, error) {
	ctx = ensureContext(ctx)
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("catalog path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	c := &Catalog{
		db:     db,
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: logging.NewComponentLogger(logger, "catalog"),
	}
	if err := c.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return c, nil
}

// Close releases the database handle.
func (c *Catalog) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Path returns the database location.
func (c *Catalog) Path() string {
	return c.path
}

// Import stores every entry of db, replacing names for codes already present.
func (c *Catalog) Import(ctx context.Context, source string, db *titledb.Database) (ImportResult, error) {
	ctx = ensureContext(ctx)
	locked, err := c.lock.TryLock()
	if err != nil {
		return ImportResult{}, fmt.Errorf("acquire catalog lock: %w", err)
	}
	if !locked {
		return ImportResult{}, ErrCatalogBusy
	}
	defer func() { _ = c.lock.Unlock() }()

	result := ImportResult{
		ID:         uuid.NewString(),
		Source:     source,
		Entries:    db.Len(),
		ImportedAt: time.Now().UTC(),
	}
	stamp := result.ImportedAt.Format(time.RFC3339)

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportResult{}, fmt.Errorf("begin import tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO titles (code, name, import_id, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(code) DO UPDATE SET name = excluded.name, import_id = excluded.import_id, updated_at = excluded.updated_at`)
	if err != nil {
		return ImportResult{}, fmt.Errorf("prepare title upsert: %w", err)
	}
	defer stmt.Close()

	for _, entry := range db.Entries() {
		if _, err := stmt.ExecContext(ctx, entry.Code, entry.Name, result.ID, stamp); err != nil {
			return ImportResult{}, fmt.Errorf("store %q: %w", entry.Code, err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO imports (id, source, entries, imported_at) VALUES (?, ?, ?, ?)",
		result.ID, source, result.Entries, stamp,
	); err != nil {
		return ImportResult{}, fmt.Errorf("record import: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return ImportResult{}, fmt.Errorf("commit import: %w", err)
	}

	c.logger.Info("imported title database",
		logging.String("import_id", result.ID),
		logging.String(logging.FieldPath, source),
		logging.Int("entries", result.Entries))
	return result, nil
}

// Get returns the stored name for code.
func (c *Catalog) Get(ctx context.Context, code string) (string, error) {
	var name string
	err := c.db.QueryRowContext(ensureContext(ctx), "SELECT name FROM titles WHERE code = ?", code).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %q", ErrNotFound, code)
	}
	if err != nil {
		return "", fmt.Errorf("query title %q: %w", code, err)
	}
	return name, nil
}

// Snapshot loads the full catalog into memory.
func (c *Catalog) Snapshot(ctx context.Context) (*titledb.Database, error) {
	rows, err := c.db.QueryContext(ensureContext(ctx), "SELECT code, name FROM titles ORDER BY code")
	if err != nil {
		return nil, fmt.Errorf("query titles: %w", err)
	}
	defer rows.Close()

	var entries []titledb.Entry
	for rows.Next() {
		var e titledb.Entry
		if err := rows.Scan(&e.Code, &e.Name); err != nil {
			return nil, fmt.Errorf("scan title: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate titles: %w", err)
	}
	return titledb.New(entries), nil
}

// Stats reports counts and the most recent import.
func (c *Catalog) Stats(ctx context.Context) (Stats, error) {
	ctx = ensureContext(ctx)
	stats := Stats{Path: c.path}
	if err := c.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM titles").Scan(&stats.Titles); err != nil {
		return Stats{}, fmt.Errorf("count titles: %w", err)
	}
	if err := c.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM imports").Scan(&stats.Imports); err != nil {
		return Stats{}, fmt.Errorf("count imports: %w", err)
	}
	if stats.Imports == 0 {
		return stats, nil
	}

	var last ImportResult
	var stamp string
	err := c.db.QueryRowContext(ctx,
		"SELECT id, source, entries, imported_at FROM imports ORDER BY imported_at DESC, rowid DESC LIMIT 1",
	).Scan(&last.ID, &last.Source, &last.Entries, &stamp)
	if err != nil {
		return Stats{}, fmt.Errorf("read last import: %w", err)
	}
	if last.ImportedAt, err = time.Parse(time.RFC3339, stamp); err != nil {
		return Stats{}, fmt.Errorf("parse import time %q: %w", stamp, err)
	}
	stats.LastImport = &last
	return stats, nil
}
