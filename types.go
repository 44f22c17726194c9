package ogimage

// Theme values. Anything other than ThemeDark renders the light palette.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Image size defaults for entries missing from Request.Widths/Heights.
const (
	DefaultImageWidth  = "auto"
	DefaultImageHeight = "225"
)

// Request holds the parameters of one card. It is read-only to the renderer.
type Request struct {
	Text       string   // heading, plain text or markdown source
	Theme      string   // "dark" or anything else (light)
	Markdown   bool     // convert Text as markdown instead of escaping it
	FontFamily string   // heading font-family, escaped before use
	FontSize   string   // heading font-size CSS length, escaped before use
	Images     []string // logo URLs or data URIs, left to right
	Widths     []string // index-aligned with Images
	Heights    []string // index-aligned with Images
}

// ImageWidth returns the width for Images[i], or DefaultImageWidth when
// Widths is shorter than Images or the entry is empty.
func (r Request) ImageWidth(i int) string {
	return valueAt(r.Widths, i, DefaultImageWidth)
}

// ImageHeight returns the height for Images[i], or DefaultImageHeight when
// Heights is shorter than Images or the entry is empty.
func (r Request) ImageHeight(i int) string {
	return valueAt(r.Heights, i, DefaultImageHeight)
}

func valueAt(values []string, i int, fallback string) string {
	if i < 0 || i >= len(values) || values[i] == "" {
		return fallback
	}
	return values[i]
}

// palette is the set of theme colors used by the stylesheet.
type palette struct {
	background string
	foreground string
	radial     string
}

var (
	lightPalette = palette{background: "white", foreground: "black", radial: "lightgray"}
	darkPalette  = palette{background: "black", foreground: "white", radial: "dimgray"}
)

// paletteFor picks the dark palette for exactly "dark" and light otherwise.
func paletteFor(theme string) palette {
	if theme == ThemeDark {
		return darkPalette
	}
	return lightPalette
}
