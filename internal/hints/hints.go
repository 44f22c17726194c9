// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-ogimage/internal/fileutil"
)

// fontFiles are the files every font directory must hold.
var fontFiles = []string{
	"SourceSansPro-Regular.woff2",
	"SourceSansPro-Bold.woff2",
	"RobotoCondensed-Regular.woff2",
	"RobotoCondensed-Bold.woff2",
}

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForFontLoad returns hints for font loading errors.
// Lists the expected files and, in containers, suggests mounting them.
func ForFontLoad() string {
	hints := []string{"font directory must contain " + strings.Join(fontFiles, ", ")}

	if os.Getenv("OGIMAGE_FONT_DIR") == "" {
		hints = append(hints, "use --font-dir or set OGIMAGE_FONT_DIR")
	}
	if IsInContainer() {
		hints = append(hints, "mount the fonts directory into the container")
	}

	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-ogimage/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-ogimage") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForRequestFile returns hints for malformed batch request files.
func ForRequestFile() string {
	return format("request keys: text, theme, md, fontFamily, fontSize, images, widths, heights")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
