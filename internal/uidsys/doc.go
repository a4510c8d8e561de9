// Package uidsys decodes the console's uid.sys title-ownership file.
//
// The file is a flat run of 12-byte big-endian records with no header or
// trailer. Each record carries a 64-bit title identifier, two reserved bytes,
// and a 16-bit install slot. Decode validates the total length before touching
// any record so truncated files are rejected instead of misread.
package uidsys
