package titlecatalog

import "errors"

var (
	// ErrCatalogBusy reports that another process holds the import lock.
	ErrCatalogBusy = errors.New("title catalog is locked by another import")
	// ErrSchemaMismatch indicates the database schema version doesn't match the expected version.
	ErrSchemaMismatch = errors.New("schema version mismatch")
	// ErrNotFound reports a code with no catalog entry.
	ErrNotFound = errors.New("title not found in catalog")
)
