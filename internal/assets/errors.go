package assets

import "errors"

// Sentinel errors for font asset operations.
var (
	// ErrFontNotFound indicates the requested font file does not exist.
	ErrFontNotFound = errors.New("font not found")

	// ErrInvalidFont indicates the file is not a woff2 container.
	ErrInvalidFont = errors.New("invalid woff2 font")

	// ErrInvalidAssetName indicates the asset name contains invalid characters
	// such as path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates an I/O error occurred while reading an asset file.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrNoLoaders indicates a FontResolver was built without any loader.
	ErrNoLoaders = errors.New("no font loaders configured")
)
