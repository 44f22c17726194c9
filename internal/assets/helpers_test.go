package assets

import (
	"os"
	"path/filepath"
	"testing"
)

// fakeWOFF2 returns bytes that pass the woff2 signature check.
func fakeWOFF2(tag string) []byte {
	return append([]byte("wOF2"), []byte(tag)...)
}

// writeFonts creates a directory holding the given font names.
func writeFonts(t *testing.T, names ...string) string {
	t.Helper()

	dir := t.TempDir()
	for _, name := range names {
		path := filepath.Join(dir, name+".woff2")
		if err := os.WriteFile(path, fakeWOFF2(name), 0o644); err != nil {
			t.Fatalf("failed to write font %s: %v", name, err)
		}
	}
	return dir
}

// defaultFontNames lists the files named by DefaultFaces.
func defaultFontNames() []string {
	names := make([]string, 0, len(DefaultFaces))
	for _, f := range DefaultFaces {
		names = append(names, f.File)
	}
	return names
}
