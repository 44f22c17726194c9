package ogimage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/alnah/go-ogimage/internal/assets"
)

// Fonts is the immutable set of base64 font payloads embedded in every
// stylesheet.
type Fonts = assets.FontSet

// defaultFontDirName is the directory searched next to the executable and
// in the working directory.
const defaultFontDirName = "fonts"

// DefaultFontDirs returns the directories searched when no font directory
// is configured, in priority order.
func DefaultFontDirs() []string {
	dirs := make([]string, 0, 2)
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Join(filepath.Dir(exe), defaultFontDirName))
	}
	return append(dirs, defaultFontDirName)
}

// LoadFonts reads the four default faces from dirs, first match wins.
// Every directory must exist.
func LoadFonts(dirs ...string) (*Fonts, error) {
	resolver, err := assets.NewFontResolver(dirs...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontLoad, err)
	}
	return loadFontSet(resolver)
}

// defaultFonts loads from DefaultFontDirs once per process, skipping
// directories that do not exist.
var defaultFonts = sync.OnceValues(func() (*Fonts, error) {
	resolver, err := assets.NewFontResolverLenient(DefaultFontDirs()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontLoad, err)
	}
	return loadFontSet(resolver)
})

func loadFontSet(loader assets.FontLoader) (*Fonts, error) {
	set, err := assets.LoadFontSet(loader, assets.DefaultFaces)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontLoad, err)
	}
	return set, nil
}
