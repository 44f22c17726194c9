package assets

// FontLoader defines the contract for loading raw font files.
// Implementations may read from disk, an embedded FS, object storage, etc.
type FontLoader interface {
	// LoadFont returns the bytes of the woff2 file called name (without
	// the .woff2 extension).
	// Returns ErrFontNotFound if the font doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadFont(name string) ([]byte, error)
}
