package streammd

import "github.com/pollyhq/go-streammd/internal/pipeline"

// ParseMath decides whether candidate (typically the content of a code
// span produced by math wrapping) is a complete dollar-delimited math
// span. It returns nil, false for anything else — including dollar
// amounts like "$10" — so the caller renders the candidate as ordinary
// text or code.
func ParseMath(candidate string) (*Math, bool) {
	span, ok := pipeline.ParseMathSpan(candidate)
	if !ok {
		return nil, false
	}
	return toMath(span), true
}

// RenderLine decomposes one line of normalized text into ordered
// segments using a Normalizer with default configuration. See
// Normalizer.RenderMessage for the multi-line, configurable path.
func RenderLine(line string) []Segment {
	return NewNormalizer().renderLine(line)
}

// renderLine locates the first complete math span (same dollar-amount
// heuristic as the wrapping stage), citation-links the text before it,
// emits the math directive, and recurses on the remainder. A line with
// no complete math span — including a span truncated mid-stream — is
// citation-linked in full and returned as a single text segment.
func (n *Normalizer) renderLine(line string) []Segment {
	if line == "" {
		return nil
	}

	start, end, _, ok := pipeline.FindMathSpan(line)
	if !ok {
		return []Segment{textSegment(n.linkCitations(line))}
	}

	span, parsed := pipeline.ParseMathSpan(line[start:end])
	if !parsed {
		// Located but unparseable spans degrade to literal text.
		return []Segment{textSegment(n.linkCitations(line))}
	}

	var segments []Segment
	if start > 0 {
		segments = append(segments, textSegment(n.linkCitations(line[:start])))
	}
	segments = append(segments, Segment{Kind: SegmentMath, Math: toMath(span)})
	segments = append(segments, n.renderLine(line[end:])...)
	return segments
}
