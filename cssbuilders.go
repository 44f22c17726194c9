package ogimage

import (
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	chromastyles "github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-ogimage/internal/assets"
	"github.com/alnah/go-ogimage/internal/pipeline"
)

// fallbackFontFamily follows the caller's font in the heading font stack.
const fallbackFontFamily = "sans-serif"

// Default chroma styles for highlighted code in markdown headings.
const (
	DefaultLightCodeStyle = "github"
	DefaultDarkCodeStyle  = "monokai"
)

// fixedCSS is the part of the stylesheet that depends on nothing.
const fixedCSS = `
code {
  color: #D400FF;
  font-family: 'Vera';
  white-space: pre-wrap;
  letter-spacing: -5px;
}

code:before, code:after {
  content: '` + "`" + `';
}

.logo-wrapper {
  display: flex;
  align-items: center;
  align-content: center;
  justify-content: center;
  justify-items: center;
}

.logo {
  margin: 0 75px;
  max-width: 100%;
}

.dark-svg {
  filter: invert(100%) sepia(0%) saturate(0%) hue-rotate(12deg) brightness(103%) contrast(103%);
}

.plus {
  color: #BBB;
  font-family: Times New Roman, Verdana;
  font-size: 100px;
}

.spacer {
  margin: 150px;
}

.emoji {
  height: 1em;
  width: 1em;
  margin: 0 .05em 0 .1em;
  vertical-align: -0.1em;
}
`

// buildStyles generates the document stylesheet. fontFamily and fontSize
// come from the request and are escaped before interpolation.
func buildStyles(theme, fontFamily, fontSize string, fonts *assets.FontSet) string {
	p := paletteFor(theme)

	var buf strings.Builder
	buf.WriteString(buildFontFaceCSS(fonts))
	buf.WriteString(buildBodyCSS(p))
	buf.WriteString(fixedCSS)
	buf.WriteString(buildHeadingCSS(p, fontFamily, fontSize))
	return buf.String()
}

// buildFontFaceCSS declares one @font-face per loaded face.
func buildFontFaceCSS(fonts *assets.FontSet) string {
	var buf strings.Builder
	for _, face := range fonts.Faces() {
		fmt.Fprintf(&buf, `
@font-face {
  font-family: '%s';
  font-style: normal;
  font-weight: %s;
  src: url(data:font/woff2;charset=utf-8;base64,%s) format('woff2');
}
`, face.Family, face.Weight, face.Base64)
	}
	return buf.String()
}

// buildBodyCSS generates the dotted, flex-centered page background.
func buildBodyCSS(p palette) string {
	return fmt.Sprintf(`
body {
  background: %[1]s;
  background-image: radial-gradient(circle at 25px 25px, %[2]s 2%%, transparent 0%%), radial-gradient(circle at 75px 75px, %[2]s 2%%, transparent 0%%);
  background-size: 100px 100px;
  height: 100vh;
  display: flex;
  text-align: center;
  align-items: center;
  justify-content: center;
}
`, p.background, p.radial)
}

// buildHeadingCSS styles the heading with the caller's font and the theme
// foreground.
func buildHeadingCSS(p palette, fontFamily, fontSize string) string {
	return fmt.Sprintf(`
.heading {
  font-family: '%s', %s;
  font-size: %s;
  font-style: normal;
  color: %s;
  line-height: 1.8;
}
`, cssValue(fontFamily), fallbackFontFamily, cssValue(fontSize), p.foreground)
}

// cssDelimiters end a declaration or open and close rules.
var cssDelimiters = strings.NewReplacer(";", "", "{", "", "}", "")

// cssValue makes caller text safe inside a declaration: delimiters are
// dropped, then HTML specials escaped so </style> cannot appear.
func cssValue(s string) string {
	return pipeline.EscapeHTML(cssDelimiters.Replace(s))
}

// buildCodeCSS returns chroma class rules for the named style. Unknown
// names fall back to chroma's default style.
func buildCodeCSS(styleName string) (string, error) {
	var buf strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, chromastyles.Get(styleName)); err != nil {
		return "", fmt.Errorf("writing %s code styles: %w", styleName, err)
	}
	return buf.String(), nil
}
