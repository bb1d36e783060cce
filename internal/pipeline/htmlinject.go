package pipeline

import (
	"html"
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Inline code elements produced by goldmark from backtick spans.
	// Math spans wrapped by WrapMathInCodeSpans come out of the
	// markdown renderer in exactly this shape.
	codeElementPattern = regexp.MustCompile(`<code>([^<]*)</code>`)
)

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
// CSS content is sanitized so it cannot break out of the style block.
func InjectCSS(htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could close the <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// RewriteMathCodeSpans converts <code> elements that hold a complete
// dollar-delimited math span into the markup KaTeX auto-render picks
// up: the delimiters stay in the element text, only the wrapper tag
// changes. Code elements with anything other than math are untouched.
func RewriteMathCodeSpans(htmlContent string) string {
	return codeElementPattern.ReplaceAllStringFunc(htmlContent, func(match string) string {
		sub := codeElementPattern.FindStringSubmatch(match)
		content := html.UnescapeString(sub[1])

		span, ok := ParseMathSpan(content)
		if !ok {
			return match
		}

		if span.Block {
			return `<div class="math math-display">` + html.EscapeString("$$"+span.Body+"$$") + `</div>`
		}
		return `<span class="math math-inline">` + html.EscapeString("$"+span.Body+"$") + `</span>`
	})
}
