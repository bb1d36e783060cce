// Package pipeline implements the text-normalization stages applied to
// streamed model output before markdown rendering.
//
// This package handles the string-to-string stages:
//   - HTML entity buffering and decoding for incremental chunks
//   - Escaped-markdown normalization (over-escaped block markers)
//   - LaTeX delimiter normalization (\( \) and \[ \] to $-style)
//   - Citation marker linking ([1][2] to markdown links)
//   - Math span detection, code-span wrapping, and render dispatch
//   - Markdown to HTML conversion via Goldmark (transcript export)
//
// Segment composition (combined text/math/citation rendering and hard
// line-break splitting) is handled by the root streammd package, which
// consumes the span locations and parsed math produced here. Every
// normalization function in this package is a pure function over its
// input string and is safe to call on any prefix of a streaming message:
// truncated entities, truncated math, and truncated citation brackets
// are the expected steady state mid-stream and always resolve to
// literal text.
package pipeline
