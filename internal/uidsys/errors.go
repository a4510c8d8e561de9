package uidsys

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecordLength reports a buffer whose length is not a multiple of RecordSize.
	ErrMalformedRecordLength = errors.New("malformed record length")
	// ErrInputNotFound reports a record file path that does not exist.
	ErrInputNotFound = errors.New("file not found")
	// ErrInputRead reports any other failure reading the record file.
	ErrInputRead = errors.New("error opening file")
)

// LengthError carries the offending buffer length.
type LengthError struct {
	Length int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%v: %d bytes is not a multiple of %d (%d trailing bytes)",
		ErrMalformedRecordLength, e.Length, RecordSize, e.Length%RecordSize)
}

// Unwrap lets errors.Is match ErrMalformedRecordLength.
func (e *LengthError) Unwrap() error {
	return ErrMalformedRecordLength
}
