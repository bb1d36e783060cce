package streammd

import (
	"time"

	"github.com/pollyhq/go-streammd/internal/pipeline"
)

// SegmentKind discriminates the members of the Segment union.
type SegmentKind int

// Segment kinds, in the order a renderer usually switches on them.
const (
	SegmentText SegmentKind = iota
	SegmentMath
	SegmentBreak
)

// Segment is one element of a rendered line: literal text, a math
// render directive, or a hard line break. Segments are ordered;
// concatenating them reconstructs the reading order of the source.
type Segment struct {
	Kind SegmentKind

	// Text holds the literal content for SegmentText.
	Text string

	// Math holds the render directive for SegmentMath.
	Math *Math

	// Key is a stable identifier for SegmentBreak, derived from the
	// break's position in the sequence so consuming renderers can key
	// repeated renders deterministically.
	Key string
}

// Math is the render handoff for a detected math span. Rendering the
// LaTeX body (and surfacing malformed LaTeX without crashing) is the
// consuming math renderer's concern.
type Math struct {
	Body  string
	Block bool
}

// toMath converts the internal pipeline span to the public directive.
func toMath(span *pipeline.MathSpan) *Math {
	if span == nil {
		return nil
	}
	return &Math{Body: span.Body, Block: span.Block}
}

// textSegment builds a SegmentText segment.
func textSegment(text string) Segment {
	return Segment{Kind: SegmentText, Text: text}
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// normalizerConfig holds internal configuration for Normalizer.
type normalizerConfig struct {
	citations bool
	mathSpans bool
}

// WithoutCitationLinks disables citation-to-link conversion. Useful for
// renderers that resolve [n] markers against a reference list of their
// own.
func WithoutCitationLinks() Option {
	return func(n *Normalizer) {
		n.cfg.citations = false
	}
}

// WithoutMathSpans disables math detection and code-span wrapping.
// Dollar signs pass through as literal text.
func WithoutMathSpans() Option {
	return func(n *Normalizer) {
		n.cfg.mathSpans = false
	}
}

// ExportOption configures an Exporter.
type ExportOption func(*Exporter)

// defaultExportTimeout bounds PDF generation in headless Chrome.
const defaultExportTimeout = 30 * time.Second

// WithExportTimeout sets the PDF generation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithExportTimeout(d time.Duration) ExportOption {
	if d <= 0 {
		panic("streammd: WithExportTimeout duration must be positive")
	}
	return func(e *Exporter) {
		e.timeout = d
	}
}

// WithExportCSS appends custom CSS after the built-in transcript
// stylesheet, so it can override any rule.
func WithExportCSS(css string) ExportOption {
	return func(e *Exporter) {
		e.extraCSS = css
	}
}

// WithExportTitle sets the HTML document title of the transcript.
func WithExportTitle(title string) ExportOption {
	return func(e *Exporter) {
		e.title = title
	}
}

// WithExportStyle selects an embedded stylesheet by name. Unknown
// names surface as ErrStyleNotFound at export time.
func WithExportStyle(name string) ExportOption {
	return func(e *Exporter) {
		e.styleName = name
	}
}

// WithExportMeta sets a metadata line rendered under the transcript
// title, typically the export date.
func WithExportMeta(meta string) ExportOption {
	return func(e *Exporter) {
		e.meta = meta
	}
}
