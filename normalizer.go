package streammd

import (
	"context"

	"github.com/pollyhq/go-streammd/internal/pipeline"
)

// Normalizer runs the text-normalization chain over streamed model
// output. Create with NewNormalizer, then call Normalize on whole
// messages or NewStream for chunked input. A Normalizer is stateless
// and safe for concurrent use.
type Normalizer struct {
	cfg normalizerConfig
}

// NewNormalizer creates a Normalizer with default configuration.
// Use options to customize behavior (e.g., WithoutCitationLinks).
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{
		cfg: normalizerConfig{
			citations: true,
			mathSpans: true,
		},
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Normalize applies the full chain to content and returns plain
// markdown safe for a generic renderer. Stage order is fixed: entity
// decode, escaped-markdown repair, LaTeX delimiter normalization,
// italic paren cleanup, then math wrapping and citation linking — each
// stage's input assumptions are produced by the one before it.
//
// Normalize never fails; a canceled context returns the text-so-far
// unprocessed, matching the streaming contract that any prefix is
// renderable.
func (n *Normalizer) Normalize(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = pipeline.DecodeStreamEntities(content)
	content = pipeline.NormalizeEscapedMarkdown(content)
	content = pipeline.NormalizeLaTeXDelimiters(content)
	content = pipeline.StripRedundantItalicParens(content)

	if ctx.Err() != nil {
		return content
	}

	if n.cfg.mathSpans {
		content = pipeline.WrapMathInCodeSpans(content)
	}
	if n.cfg.citations {
		content = pipeline.ConvertCitationsToMarkdownLinks(content)
	}

	return content
}

// RenderMessage normalizes content and decomposes every line into
// ordered render segments: citation-linked text, math directives, and
// hard line breaks. This is the segment-producing path for UI renderers
// that draw math and breaks themselves instead of consuming markdown.
func (n *Normalizer) RenderMessage(ctx context.Context, content string) []Segment {
	if ctx.Err() != nil {
		return []Segment{textSegment(content)}
	}

	content = pipeline.DecodeStreamEntities(content)
	content = pipeline.NormalizeEscapedMarkdown(content)
	content = pipeline.NormalizeLaTeXDelimiters(content)
	content = pipeline.StripRedundantItalicParens(content)

	// Citation/math rendering runs before hard-break splitting: break
	// markup inside a math span is part of the LaTeX body, not layout.
	var segments []Segment
	nextBreak := 0
	for _, seg := range n.renderText(content) {
		if seg.Kind != SegmentText {
			segments = append(segments, seg)
			continue
		}
		var split []Segment
		split, nextBreak = applyHardLineBreaksFrom(seg.Text, nextBreak)
		segments = append(segments, split...)
	}
	return segments
}

// renderText runs the combined citation+math decomposition on one text
// piece, honoring the disabled-stage configuration.
func (n *Normalizer) renderText(text string) []Segment {
	if !n.cfg.mathSpans {
		return []Segment{textSegment(n.linkCitations(text))}
	}
	return n.renderLine(text)
}

// linkCitations applies citation linking when enabled.
func (n *Normalizer) linkCitations(text string) string {
	if !n.cfg.citations {
		return text
	}
	return pipeline.ConvertCitationsToMarkdownLinks(text)
}
