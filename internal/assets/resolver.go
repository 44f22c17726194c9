package assets

import (
	"errors"
	"fmt"
	"strings"
)

// FontResolver chains loaders: the first loader that has a font wins.
type FontResolver struct {
	loaders []FontLoader
}

// NewFontResolver builds a resolver over existing directories in dirs, in
// priority order. Empty entries are skipped. An explicitly configured
// directory that is invalid is an error; use NewFontResolverLenient for
// best-effort search paths.
func NewFontResolver(dirs ...string) (*FontResolver, error) {
	r := &FontResolver{}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		fsLoader, err := NewFilesystemLoader(dir)
		if err != nil {
			return nil, err
		}
		r.loaders = append(r.loaders, fsLoader)
	}
	if len(r.loaders) == 0 {
		return nil, ErrNoLoaders
	}
	return r, nil
}

// NewFontResolverLenient is NewFontResolver but silently skips directories
// that do not exist or cannot be read.
func NewFontResolverLenient(dirs ...string) (*FontResolver, error) {
	r := &FontResolver{}
	var tried []string
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		tried = append(tried, dir)
		fsLoader, err := NewFilesystemLoader(dir)
		if err != nil {
			continue
		}
		r.loaders = append(r.loaders, fsLoader)
	}
	if len(r.loaders) == 0 {
		return nil, fmt.Errorf("%w: tried %s", ErrNoLoaders, strings.Join(tried, ", "))
	}
	return r, nil
}

// LoadFont asks each loader in turn, falling through only on ErrFontNotFound.
func (r *FontResolver) LoadFont(name string) ([]byte, error) {
	var lastErr error
	for _, loader := range r.loaders {
		data, err := loader.LoadFont(name)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, ErrFontNotFound) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

// Len returns the number of loaders in the chain.
func (r *FontResolver) Len() int {
	return len(r.loaders)
}

// Compile-time interface check.
var _ FontLoader = (*FontResolver)(nil)
