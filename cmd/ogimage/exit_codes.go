package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	ogimage "github.com/alnah/go-ogimage"
	"github.com/alnah/go-ogimage/internal/config"
	"github.com/alnah/go-ogimage/internal/hints"
)

// Exit codes for the ogimage CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful render
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or request
	ExitIO      = 3 // File not found, permission denied
	ExitFonts   = 4 // Font files missing or invalid
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Font errors (exit 4)
	if errors.Is(err, ogimage.ErrFontLoad) {
		return ExitFonts
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoText) ||
		errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadText) ||
		errors.Is(err, ErrReadRequest) ||
		errors.Is(err, ErrWriteHTML) ||
		errors.Is(err, ErrCreateOutputDir) {
		return ExitIO
	}

	return ExitGeneral
}

// reportError prints err with an actionable hint when one applies and
// returns the exit code.
func reportError(w io.Writer, err error, configName string) int {
	msg := err.Error()
	switch {
	case errors.Is(err, ogimage.ErrFontLoad):
		msg += hints.ForFontLoad()
	case errors.Is(err, config.ErrConfigNotFound):
		msg += hints.ForConfigNotFound(config.SearchPaths(configName))
	case errors.Is(err, ErrInvalidRequest):
		msg += hints.ForRequestFile()
	case errors.Is(err, ErrCreateOutputDir):
		msg += hints.ForOutputDirectory()
	}
	fmt.Fprintf(w, "error: %s\n", msg)
	return exitCodeFor(err)
}
