package assets

import (
	"bytes"
	"fmt"
	"strings"
)

// woff2Magic is the signature at offset 0 of every woff2 file.
var woff2Magic = []byte("wOF2")

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Returns ErrInvalidAssetName if the name is empty or contains path separators,
// dots (which could allow extension manipulation), or traversal characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// ValidateWOFF2 checks the woff2 signature.
func ValidateWOFF2(name string, data []byte) error {
	if !bytes.HasPrefix(data, woff2Magic) {
		return fmt.Errorf("%w: %q", ErrInvalidFont, name)
	}
	return nil
}
