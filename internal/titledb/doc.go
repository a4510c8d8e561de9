// Package titledb parses the line-oriented title name database.
//
// Each non-empty line has the form `CODE = Name`, split at the first ` = `;
// a line holding only whitespace is malformed.
// The resulting Database satisfies titleid.Lookup and is read-only once
// parsed. Files may carry a byte order mark; UTF-16 files with a BOM are
// decoded as well. Invalid UTF-8 fails the parse rather than being replaced.
package titledb
