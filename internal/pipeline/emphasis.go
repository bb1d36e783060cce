package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance. Character classes match
// newlines, so italic bodies may wrap across lines.
var (
	parenStarItalicPattern       = regexp.MustCompile(`\(\s*(\*[^*]+\*)\s*\)`)
	parenUnderscoreItalicPattern = regexp.MustCompile(`\(\s*(_[^_]+_)\s*\)`)
)

// StripRedundantItalicParens removes a parenthesis pair wrapping an
// italic span, but only when the italic body is multi-word. Parentheses
// around a single emphasized word are usually deliberate punctuation
// and stay.
func StripRedundantItalicParens(content string) string {
	content = stripItalicParens(content, parenStarItalicPattern)
	content = stripItalicParens(content, parenUnderscoreItalicPattern)
	return content
}

func stripItalicParens(content string, pattern *regexp.Regexp) string {
	return pattern.ReplaceAllStringFunc(content, func(match string) string {
		sub := pattern.FindStringSubmatch(match)
		span := sub[1]
		body := strings.TrimSpace(span[1 : len(span)-1])
		if !containsInternalWhitespace(body) {
			return match
		}
		return span
	})
}

// containsInternalWhitespace reports whether s has whitespace between
// non-whitespace characters, i.e. is multi-word.
func containsInternalWhitespace(s string) bool {
	return strings.ContainsAny(s, " \t\n")
}
