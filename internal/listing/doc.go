// Package listing runs one uid.sys listing: read and decode the record file,
// resolve the optional name lookup, and render every record in file order.
//
// Record-file failures abort before anything is written. Name database and
// catalog failures are logged as warnings and the listing continues without
// names.
package listing
