package preflight

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"wiiuid/internal/logging"
	"wiiuid/internal/titlecatalog"
	"wiiuid/internal/titledb"
	"wiiuid/internal/uidsys"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckFileReadable verifies that path is a regular file the current user can read.
func CheckFileReadable(name, path string) (Result, os.FileInfo) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}, nil
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}, nil
	}
	if info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", path)}, nil
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not readable: %v)", path, err)}, nil
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (readable)", path)}, info
}

// CheckRecordFile verifies the uid.sys file is readable and whole records long.
func CheckRecordFile(name, path string) Result {
	res, info := CheckFileReadable(name, path)
	if !res.Passed {
		return res
	}
	size := info.Size()
	if size%uidsys.RecordSize != 0 {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %d bytes is not a multiple of %d)", path, size, uidsys.RecordSize)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d records)", path, size/uidsys.RecordSize)}
}

// CheckTitleDB verifies the name database parses.
func CheckTitleDB(name, path string) Result {
	res, _ := CheckFileReadable(name, path)
	if !res.Passed {
		return res
	}
	db, err := titledb.Load(path)
	if err != nil {
		var lineErr *titledb.LineError
		if errors.As(err, &lineErr) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: malformed line %d)", path, lineErr.Line)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d titles)", path, db.Len())}
}

// CheckCatalog opens the catalog and reports how many titles it holds.
func CheckCatalog(ctx context.Context, name, path string) Result {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (not imported yet; run `wiiuid catalog import`)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	catalog, err := titlecatalog.Open(ctx, path, logging.NewNop())
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	defer catalog.Close()
	stats, err := catalog.Stats(ctx)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d titles)", path, stats.Titles)}
}
