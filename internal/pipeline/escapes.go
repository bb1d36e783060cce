package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Backslash-escaped block marker at the start of a line (up to 3
	// leading spaces, per CommonMark): heading, list item, ordered list
	// item, blockquote, table row, or code fence.
	// List markers require their trailing space so escaped emphasis at
	// the start of a line (\*word\*) is not mistaken for a list item.
	escapedBlockMarkerPattern = regexp.MustCompile("(?m)^( {0,3})\\\\(#|\\d+\\. |[-*] |[>|]|```)")

	// Escaped bracket citation marker: \[3\] -> [3].
	escapedCitationPattern = regexp.MustCompile(`\\\[(\d+)\\\]`)

	// Backslash-space directly after a closed emphasis span.
	emphasisTrailPattern = regexp.MustCompile(`(\*[^*\n]+\*|_[^_\n]+_)\\ `)

	// Runs of two or more backslashes before whitespace or end of line.
	backslashRunPattern    = regexp.MustCompile(`\\{2,}(\s)`)
	backslashRunEOLPattern = regexp.MustCompile(`(?m)\\{2,}$`)
)

// NormalizeEscapedMarkdown undoes the over-escaping some models apply
// to markdown structure. Block markers are only unescaped when they are
// line-initial; a mid-line \# is inline content and passes through
// literally.
//
// The literal-\n conversion is a legacy heuristic: two-character "\n"
// sequences become real newlines only when the input contains no real
// newlines at all, so mixed content is never corrupted.
func NormalizeEscapedMarkdown(content string) string {
	content = convertLiteralNewlines(content)
	content = escapedBlockMarkerPattern.ReplaceAllString(content, "$1$2")
	content = escapedCitationPattern.ReplaceAllString(content, "[$1]")
	content = emphasisTrailPattern.ReplaceAllString(content, "$1 ")
	content = backslashRunPattern.ReplaceAllString(content, "$1")
	content = backslashRunEOLPattern.ReplaceAllString(content, "")
	return content
}

// convertLiteralNewlines turns literal "\n" escape sequences into real
// newlines when the input has none of its own.
func convertLiteralNewlines(content string) string {
	if strings.Contains(content, "\n") {
		return content
	}
	return strings.ReplaceAll(content, `\n`, "\n")
}
