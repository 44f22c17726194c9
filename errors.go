package ogimage

import (
	"errors"

	"github.com/alnah/go-ogimage/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	// ErrFontLoad means the font files could not be read; no renderer exists.
	ErrFontLoad = errors.New("failed to load fonts")

	// ErrHTMLConversion means the markdown converter failed.
	ErrHTMLConversion = pipeline.ErrHTMLConversion

	// ErrEmojify means the emoji stage could not process the heading.
	ErrEmojify = pipeline.ErrEmojify
)
