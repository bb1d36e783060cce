// Package streammd normalizes streamed AI chat output for markdown
// rendering: streaming-safe entity handling, over-escaped markdown
// repair, LaTeX delimiter normalization, citation linking, and math
// span detection.
//
// # Quick Start
//
// Create a Normalizer and run a message through it:
//
//	n := streammd.NewNormalizer()
//	out := n.Normalize(ctx, "The equation \\(E=mc^2\\) [1][2] is famous")
//	// out: "The equation `$E=mc^2$` [1,2](#cite-group-1-2) is famous"
//
// The normalized string is plain markdown: math spans are wrapped in
// backtick code spans so any generic markdown renderer carries them
// through untouched, and citations are ordinary links. A renderer that
// wants to draw math itself intercepts code spans and calls ParseMath:
//
//	if m, ok := streammd.ParseMath(codeSpanContent); ok {
//	    drawMath(m.Body, m.Block)
//	}
//
// # Streaming
//
// Model output arrives in chunks, and every prefix of a message must
// render sanely: truncated entities, half-open math delimiters, and
// unterminated citation brackets are the steady state mid-stream, not
// errors. StreamNormalizer accumulates chunks and returns the
// normalized text-so-far, withholding a trailing partial entity until
// the next chunk completes it:
//
//	s := n.NewStream()
//	for chunk := range chunks {
//	    redraw(s.Feed(chunk))
//	}
//	redraw(s.Flush())
//
// Every transformation is idempotent and converges: re-running a stage
// on its own output is a no-op, and the output for a prefix never
// commits to an interpretation (math vs. dollar amount) that a longer
// prefix could contradict.
//
// # Segment Rendering
//
// UI renderers that consume a line at a time use RenderLine, which
// decomposes a line into ordered text, math, and citation segments, and
// ApplyHardLineBreaks, which converts trailing-space and trailing-
// backslash hard breaks into explicit break segments with stable keys.
//
// # Transcript Export
//
// Exporter renders a normalized conversation to a standalone HTML
// transcript (Goldmark, syntax highlighting, KaTeX auto-render for the
// math spans) and optionally to PDF via headless Chrome (go-rod). PDF
// export requires Chrome/Chromium; rod downloads a managed Chromium on
// first run. Set ROD_NO_SANDBOX=1 in containers and ROD_BROWSER_BIN to
// use a custom binary.
package streammd
