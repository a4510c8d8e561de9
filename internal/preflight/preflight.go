package preflight

import (
	"context"
	"path/filepath"
	"strings"

	"wiiuid/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name     string
	Passed   bool
	Optional bool
	Detail   string
}

// RunAll executes all applicable preflight checks for the given config.
// recordPath may be empty when no uid.sys file was named.
func RunAll(ctx context.Context, cfg *config.Config, recordPath string) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	if recordPath = strings.TrimSpace(recordPath); recordPath != "" {
		results = append(results, CheckRecordFile("Record file", recordPath))
	}

	if cfg.TitleDB.Path != "" {
		res := CheckTitleDB("Title database", cfg.TitleDB.Path)
		res.Optional = true
		results = append(results, res)
	}

	if cfg.Catalog.Enabled {
		results = append(results, CheckDirectoryAccess("Catalog directory", filepath.Dir(cfg.Catalog.Path)))
		res := CheckCatalog(ctx, "Title catalog", cfg.Catalog.Path)
		res.Optional = true
		results = append(results, res)
	}

	if cfg.Logging.File {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
	}

	return results
}

// Failed reports whether any required check failed.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed && !r.Optional {
			return true
		}
	}
	return false
}
