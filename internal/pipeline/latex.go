package pipeline

import "regexp"

// Precompiled regex patterns for performance. (?s) lets the body span
// multiple lines, which display math frequently does.
var (
	displayDelimPattern = regexp.MustCompile(`(?s)\\\[(.*?)\\\]`)
	inlineDelimPattern  = regexp.MustCompile(`(?s)\\\((.*?)\\\)`)
)

// NormalizeLaTeXDelimiters rewrites \(...\) spans to $...$ and \[...\]
// spans to $$...$$ so every later stage only has to deal with
// dollar-style delimiters. Text already using $-delimiters passes
// through unchanged. This is pure delimiter substitution; the LaTeX
// body is not validated.
func NormalizeLaTeXDelimiters(content string) string {
	content = displayDelimPattern.ReplaceAllString(content, `$$$$${1}$$$$`)
	content = inlineDelimPattern.ReplaceAllString(content, `$$${1}$$`)
	return content
}
