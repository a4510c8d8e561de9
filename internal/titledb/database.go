package titledb

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Separator splits a code from its name.
const Separator = " = "

// maxLineBytes bounds a single database line.
const maxLineBytes = 1 << 20

// Entry is a single code/name pair.
type Entry struct {
	Code string
	Name string
}

// Database maps code strings to title names.
type Database struct {
	names map[string]string
}

// New builds a Database from entries; later duplicates win.
func New(entries []Entry) *Database {
	db := &Database{names: make(map[string]string, len(entries))}
	for _, e := range entries {
		db.names[e.Code] = e.Name
	}
	return db
}

// Parse reads a title database. Any malformed line aborts the parse with a
// *LineError; bytes that are not valid UTF-8 abort it with
// encoding.ErrInvalidUTF8.
func Parse(r io.Reader) (*Database, error) {
	decoded := transform.NewReader(r, transform.Chain(
		unicode.BOMOverride(transform.Nop),
		encoding.UTF8Validator,
	))
	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	db := &Database{names: make(map[string]string)}
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		code, name, ok := strings.Cut(line, Separator)
		if !ok {
			return nil, &LineError{Line: lineNo, Text: line}
		}
		db.names[code] = name
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read title database: %w", err)
	}
	return db, nil
}

// Load opens and parses the title database at path.
func Load(path string) (*Database, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open title database: %w", err)
	}
	defer file.Close()

	db, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return db, nil
}

// Lookup implements titleid.Lookup.
func (d *Database) Lookup(code string) (string, bool) {
	if d == nil {
		return "", false
	}
	name, ok := d.names[code]
	return name, ok
}

// Len reports the number of distinct codes.
func (d *Database) Len() int {
	if d == nil {
		return 0
	}
	return len(d.names)
}

// Entries returns all pairs sorted by code.
func (d *Database) Entries() []Entry {
	if d == nil {
		return nil
	}
	out := make([]Entry, 0, len(d.names))
	for code, name := range d.names {
		out = append(out, Entry{Code: code, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
