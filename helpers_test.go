package ogimage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-ogimage/internal/assets"
)

// testFonts returns a set with one short, distinct payload per default face.
func testFonts() *Fonts {
	faces := make([]assets.LoadedFace, 0, len(assets.DefaultFaces))
	for i, face := range assets.DefaultFaces {
		faces = append(faces, assets.LoadedFace{
			Face:   face,
			Base64: fmt.Sprintf("Rk9OVA%d", i),
		})
	}
	return assets.NewFontSet(faces...)
}

// writeTestFonts creates a directory holding every default face as a
// minimal woff2 file.
func writeTestFonts(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	for _, face := range assets.DefaultFaces {
		path := filepath.Join(dir, face.File+".woff2")
		if err := os.WriteFile(path, []byte("wOF2"+face.File), 0o644); err != nil {
			t.Fatalf("failed to write font %s: %v", face.File, err)
		}
	}
	return dir
}

// newTestRenderer builds a Renderer over testFonts.
func newTestRenderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()

	r, err := NewRenderer(append([]Option{WithFonts(testFonts())}, opts...)...)
	if err != nil {
		t.Fatalf("NewRenderer() unexpected error: %v", err)
	}
	return r
}
