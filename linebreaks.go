package streammd

import (
	"regexp"
	"strconv"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Hard break markup: two-or-more trailing spaces, or a trailing
	// backslash, before a newline. Windows and Unix endings supported.
	hardBreakPattern = regexp.MustCompile(`(?: {2,}|\\)\r?\n`)
)

// ApplyHardLineBreaks splits text on hard-break markup, replacing each
// match with an explicit break segment between the surrounding text.
// Each break carries a deterministic key derived from its position in
// the sequence, not from content, so a consuming renderer can key
// repeated renders stably.
//
// A trailing backslash+space with no following newline is incomplete
// markup left behind by some models; it is stripped rather than turned
// into a break.
func ApplyHardLineBreaks(text string) []Segment {
	segments, _ := applyHardLineBreaksFrom(text, 0)
	return segments
}

// applyHardLineBreaksFrom numbers break keys starting at next, so
// callers splitting several text segments of one message keep keys
// unique across the whole sequence.
func applyHardLineBreaksFrom(text string, next int) ([]Segment, int) {
	parts := hardBreakPattern.Split(text, -1)

	segments := make([]Segment, 0, 2*len(parts)-1)
	for i, part := range parts {
		if i > 0 {
			segments = append(segments, Segment{
				Kind: SegmentBreak,
				Key:  "br-" + strconv.Itoa(next),
			})
			next++
		}
		segments = append(segments, textSegment(stripStrayBackslashSpace(part)))
	}
	return segments, next
}

// stripStrayBackslashSpace removes backslash+space sequences that never
// became hard breaks. Runs after splitting, so real break markup is
// already gone.
func stripStrayBackslashSpace(text string) string {
	return strings.ReplaceAll(text, `\ `, " ")
}
