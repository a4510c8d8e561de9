// Package titlecatalog keeps a persistent SQLite copy of a title database.
//
// Imports replace the stored names for every code in the source and record
// an import row tagged with a UUID. An advisory file lock next to the
// database serializes imports across processes. Snapshot loads the whole
// catalog into a titledb.Database so listing stays a pure in-memory pass.
package titlecatalog
