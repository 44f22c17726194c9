package ogimage

import (
	"strings"

	"github.com/alnah/go-ogimage/internal/pipeline"
)

// Fixed document strings.
const (
	documentTitle = "Generated Image"
	imageAlt      = "Generated Image"
	separatorHTML = `<div class="plus">+</div>`
)

// buildSeparator returns the plus sign placed before every image but the
// first.
func buildSeparator(index int) string {
	if index <= 0 {
		return ""
	}
	return separatorHTML
}

// buildImageTag renders one logo. Empty width or height fall back to the
// defaults; all three values are escaped.
func buildImageTag(src, theme, width, height string) string {
	if width == "" {
		width = DefaultImageWidth
	}
	if height == "" {
		height = DefaultImageHeight
	}

	class := "logo"
	if theme == ThemeDark {
		class = "logo dark-svg"
	}

	var b strings.Builder
	b.WriteString(`<img class="`)
	b.WriteString(class)
	b.WriteString(`" alt="`)
	b.WriteString(imageAlt)
	b.WriteString(`" src="`)
	b.WriteString(pipeline.EscapeHTML(src))
	b.WriteString(`" width="`)
	b.WriteString(pipeline.EscapeHTML(width))
	b.WriteString(`" height="`)
	b.WriteString(pipeline.EscapeHTML(height))
	b.WriteString(`"/>`)
	return b.String()
}

// buildImageRow concatenates separator and image tag for each image in
// request order.
func buildImageRow(req Request) string {
	var b strings.Builder
	for i, src := range req.Images {
		b.WriteString(buildSeparator(i))
		b.WriteString(buildImageTag(src, req.Theme, req.ImageWidth(i), req.ImageHeight(i)))
	}
	return b.String()
}

// buildDocument assembles the final page from its finished parts.
func buildDocument(styles, imageRow, heading string) string {
	var b strings.Builder
	b.Grow(len(styles) + len(imageRow) + len(heading) + 512)

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString(`<meta charset="utf-8">` + "\n")
	b.WriteString("<title>" + documentTitle + "</title>\n")
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
	b.WriteString("<style>\n")
	b.WriteString(styles)
	b.WriteString("\n</style>\n</head>\n<body>\n<div>\n")
	b.WriteString(`<div class="spacer"><div class="logo-wrapper">`)
	b.WriteString(imageRow)
	b.WriteString("</div></div>\n")
	b.WriteString(`<div class="spacer"><div class="heading">`)
	b.WriteString(heading)
	b.WriteString("</div></div>\n")
	b.WriteString("</div>\n</body>\n</html>\n")
	return b.String()
}
