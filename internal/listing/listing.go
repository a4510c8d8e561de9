package listing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"wiiuid/internal/config"
	"wiiuid/internal/logging"
	"wiiuid/internal/titlecatalog"
	"wiiuid/internal/titledb"
	"wiiuid/internal/titleid"
	"wiiuid/internal/uidsys"
)

// Options selects the input, lookup source and presentation of a listing.
type Options struct {
	RecordPath   string
	DecodePrefix bool
	Format       string
	// TitleDBPath takes precedence over the catalog when both are set.
	TitleDBPath string
	UseCatalog  bool
	CatalogPath string
}

// Run lists the records of opts.RecordPath to out.
func Run(ctx context.Context, opts Options, out io.Writer, logger *slog.Logger) error {
	logger = logging.NewComponentLogger(logger, "listing")

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = config.FormatText
	}
	if !config.ValidFormat(format) {
		return fmt.Errorf("unsupported output format %q", opts.Format)
	}

	records, err := uidsys.ReadFile(opts.RecordPath)
	if err != nil {
		return err
	}
	logger.Debug("decoded record file",
		logging.String(logging.FieldPath, opts.RecordPath),
		logging.Int("records", len(records)))

	lookup := resolveLookup(ctx, opts, logger)
	return Render(out, format, records, opts.DecodePrefix, lookup)
}

// resolveLookup returns nil when no name source is configured or loading fails.
func resolveLookup(ctx context.Context, opts Options, logger *slog.Logger) titleid.Lookup {
	if path := strings.TrimSpace(opts.TitleDBPath); path != "" {
		db, err := titledb.Load(path)
		if err != nil {
			logging.WarnWithContext(logger, "error while reading title database", "title_db_load_failed",
				logging.String(logging.FieldPath, path),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "fix or remove the listed line; each line must read CODE = Name"),
				logging.String(logging.FieldImpact, "titles are listed without names"))
			return nil
		}
		logger.Debug("loaded title database",
			logging.String(logging.FieldPath, path),
			logging.Int("titles", db.Len()))
		return db
	}

	if opts.UseCatalog {
		db, err := loadCatalog(ctx, opts.CatalogPath, logger)
		if err != nil {
			logging.WarnWithContext(logger, "error while reading title catalog", "catalog_load_failed",
				logging.String(logging.FieldPath, opts.CatalogPath),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "run `wiiuid catalog import <titles.txt>`"),
				logging.String(logging.FieldImpact, "titles are listed without names"))
			return nil
		}
		return db
	}

	return nil
}

// loadCatalog never creates the catalog; a missing file means nothing was imported.
func loadCatalog(ctx context.Context, path string, logger *slog.Logger) (*titledb.Database, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("title catalog not imported yet: %w", err)
		}
		return nil, fmt.Errorf("stat title catalog: %w", err)
	}
	catalog, err := titlecatalog.Open(ctx, path, logger)
	if err != nil {
		return nil, err
	}
	defer catalog.Close()
	return catalog.Snapshot(ctx)
}
