package pipeline

import "regexp"

// Precompiled regex patterns for performance.
var (
	// The four stream entities some providers emit for significant
	// whitespace. Hex digits are matched case-insensitively.
	spaceEntityPattern   = regexp.MustCompile(`&#32;|&#[xX]20;`)
	newlineEntityPattern = regexp.MustCompile(`&#10;|&#[xX]0[aA];`)
)

// BufferIncompleteEntities removes a trailing partial HTML entity from
// content so it is never rendered half-formed mid-stream. A partial
// entity is a final "&" followed by one or more alphanumeric, "#", or
// "x" characters with no terminating ";". A lone trailing "&" and the
// malformed-but-terminated "&;" are left alone; they are ordinary text,
// not the start of an entity the next chunk could complete.
//
// Streaming callers apply this to every chunk before decoding.
// Non-streaming callers can skip it.
func BufferIncompleteEntities(content string) string {
	amp := -1
	for i := len(content) - 1; i >= 0; i-- {
		if content[i] == '&' {
			amp = i
			break
		}
	}
	if amp == -1 || amp == len(content)-1 {
		return content
	}

	for i := amp + 1; i < len(content); i++ {
		if !isEntityChar(content[i]) {
			// Terminated or invalid: nothing to withhold.
			return content
		}
	}

	return content[:amp]
}

// isEntityChar reports whether c may appear in an entity body after "&".
func isEntityChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '#':
		return true
	}
	return false
}

// DecodeStreamEntities decodes the fixed set of numeric character
// entities some providers use for significant whitespace: &#32; and
// &#x20; become a space, &#10; and &#x0A; become a newline. Every other
// entity (&nbsp;, &amp;, ...) is intentionally left untouched for the
// downstream HTML-aware renderer to resolve.
func DecodeStreamEntities(content string) string {
	content = spaceEntityPattern.ReplaceAllString(content, " ")
	content = newlineEntityPattern.ReplaceAllString(content, "\n")
	return content
}
