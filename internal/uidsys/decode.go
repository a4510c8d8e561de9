package uidsys

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Decode splits buf into TitleRecords in file order. A length that is not a
// multiple of RecordSize fails before any record is produced.
func Decode(buf []byte) ([]TitleRecord, error) {
	if len(buf)%RecordSize != 0 {
		return nil, &LengthError{Length: len(buf)}
	}
	records := make([]TitleRecord, 0, len(buf)/RecordSize)
	for off := 0; off < len(buf); off += RecordSize {
		records = append(records, decodeRecord(buf[off:off+RecordSize]))
	}
	return records, nil
}

// ReadFile reads and decodes the record file at path.
func ReadFile(path string) ([]TitleRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%q: %w: %w", path, ErrInputNotFound, err)
		}
		return nil, fmt.Errorf("%q: %w: %w", path, ErrInputRead, err)
	}
	records, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return records, nil
}
