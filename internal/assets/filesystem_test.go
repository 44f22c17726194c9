package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	t.Run("valid directory", func(t *testing.T) {
		t.Parallel()

		loader, err := NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}
		if loader.BasePath() == "" {
			t.Error("BasePath() is empty")
		}
	})

	t.Run("empty path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader("")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader(\"\") error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("nonexistent directory returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("file instead of directory returns error", func(t *testing.T) {
		t.Parallel()

		filePath := filepath.Join(t.TempDir(), "file.txt")
		if err := os.WriteFile(filePath, []byte("test"), 0o644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		_, err := NewFilesystemLoader(filePath)
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestFilesystemLoader_LoadFont(t *testing.T) {
	t.Parallel()

	dir := writeFonts(t, "SourceSansPro-Regular")
	loader, err := NewFilesystemLoader(dir)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	t.Run("loads existing font", func(t *testing.T) {
		t.Parallel()

		data, err := loader.LoadFont("SourceSansPro-Regular")
		if err != nil {
			t.Fatalf("LoadFont() error = %v", err)
		}
		if string(data) != string(fakeWOFF2("SourceSansPro-Regular")) {
			t.Errorf("LoadFont() = %q, unexpected content", data)
		}
	})

	t.Run("returns ErrFontNotFound for nonexistent", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadFont("RobotoCondensed-Bold")
		if !errors.Is(err, ErrFontNotFound) {
			t.Errorf("LoadFont() error = %v, want ErrFontNotFound", err)
		}
	})

	t.Run("returns ErrInvalidAssetName for invalid name", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"", "../etc/passwd", "font.woff2"} {
			_, err := loader.LoadFont(name)
			if !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("LoadFont(%q) error = %v, want ErrInvalidAssetName", name, err)
			}
		}
	})
}

func TestFilesystemLoader_PathContainment(t *testing.T) {
	t.Parallel()

	t.Run("rejects symlink escape attempt", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()

		secretFile := filepath.Join(t.TempDir(), "secret.woff2")
		if err := os.WriteFile(secretFile, fakeWOFF2("secret"), 0o644); err != nil {
			t.Fatalf("failed to write secret file: %v", err)
		}

		if err := os.Symlink(secretFile, filepath.Join(baseDir, "evil.woff2")); err != nil {
			t.Skipf("symlink creation not supported: %v", err)
		}

		loader, err := NewFilesystemLoader(baseDir)
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}

		_, err = loader.LoadFont("evil")
		if !errors.Is(err, ErrPathTraversal) {
			t.Errorf("LoadFont() with symlink escape error = %v, want ErrPathTraversal", err)
		}
	})
}
