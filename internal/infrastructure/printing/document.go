package printing

import (
	"strings"

	"github.com/gaolamthuy/backend/internal/domain/printing"
)

// fontURL is the default webfont shipped into every print document so
// Vietnamese diacritics render consistently across print surfaces.
const fontURL = "https://fonts.googleapis.com/css2?family=Be+Vietnam+Pro:wght@400;700&display=swap"

// DocumentBuilder assembles complete HTML print documents from a
// compiled body, generated CSS, and a template's custom CSS.
type DocumentBuilder struct {
	fontURL string
}

// NewDocumentBuilder creates a builder using the default webfont
func NewDocumentBuilder() *DocumentBuilder {
	return &DocumentBuilder{fontURL: fontURL}
}

// NewDocumentBuilderWithFont creates a builder with a custom webfont URL
func NewDocumentBuilderWithFont(url string) *DocumentBuilder {
	if url == "" {
		url = fontURL
	}
	return &DocumentBuilder{fontURL: url}
}

// Build assembles the full document written into a print surface: the
// doctype, a title naming the template type, the webfont link, a style
// block with generated CSS followed by the template's custom CSS (the
// ordering lets custom rules override generated ones), the compiled
// body, and the lifecycle script that closes the surface after print.
func (b *DocumentBuilder) Build(templateType printing.TemplateType, css, customCSS, body string) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html lang=\"vi\">\n<head>\n")
	sb.WriteString("<meta charset=\"UTF-8\">\n")
	sb.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	sb.WriteString("<title>")
	sb.WriteString(templateType.DisplayName())
	sb.WriteString("</title>\n")
	sb.WriteString("<link rel=\"stylesheet\" href=\"")
	sb.WriteString(b.fontURL)
	sb.WriteString("\">\n")
	sb.WriteString("<style>\n")
	sb.WriteString(css)
	if strings.TrimSpace(customCSS) != "" {
		sb.WriteString("\n/* template custom css */\n")
		sb.WriteString(customCSS)
	}
	sb.WriteString("\n</style>\n</head>\n<body>\n")
	sb.WriteString(body)
	sb.WriteString("\n<script>\n")
	// afterprint closes the surface so a finished or cancelled print
	// dialog never leaves a stray window. beforeunload is reserved for
	// future cleanup hooks.
	sb.WriteString("window.addEventListener('afterprint', function () { window.close(); });\n")
	sb.WriteString("window.addEventListener('beforeunload', function () {});\n")
	sb.WriteString("</script>\n</body>\n</html>\n")
	return sb.String()
}
