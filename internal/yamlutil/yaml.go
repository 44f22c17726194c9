// Package yamlutil wraps YAML decoding so config and request files share
// one size limit and one strictness policy.
package yamlutil

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps YAML documents at 1MB.
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func checkInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := checkInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// ReadFileStrict reads path and decodes it with UnmarshalStrict.
// The size limit is checked against the file size before reading.
func ReadFileStrict(path string, v any) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() > int64(MaxInputSize) {
		return fmt.Errorf("%w: %s is %d bytes (max %d)", ErrInputTooLarge, path, info.Size(), MaxInputSize)
	}
	data, err := os.ReadFile(path) // #nosec G304 -- caller-provided path
	if err != nil {
		return err
	}
	return UnmarshalStrict(data, v)
}
