package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"wiiuid/internal/uidsys"
)

// WriteUIDFile encodes records into a uid.sys file at path.
func WriteUIDFile(t testing.TB, path string, records ...uidsys.TitleRecord) {
	t.Helper()
	WriteBytes(t, path, uidsys.EncodeAll(records))
}

// WriteTitleDB writes a `CODE = Name` database at path.
func WriteTitleDB(t testing.TB, path, contents string) {
	t.Helper()
	WriteBytes(t, path, []byte(contents))
}

// WriteBytes writes data to path, creating parent directories.
func WriteBytes(t testing.TB, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
