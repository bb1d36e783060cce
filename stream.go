package streammd

import (
	"context"
	"strings"

	"github.com/pollyhq/go-streammd/internal/pipeline"
)

// StreamNormalizer accumulates the chunks of one streamed message and
// produces a renderable view of the text-so-far after every chunk. A
// trailing partial HTML entity is withheld until the chunk that
// completes it arrives, so half-formed entities never reach the
// renderer. All other truncation (open math delimiters, unterminated
// citation brackets) already renders safely as literal text, so no
// further buffering is needed.
//
// A StreamNormalizer is single-message state and is not safe for
// concurrent use; create one per stream.
type StreamNormalizer struct {
	n   *Normalizer
	buf strings.Builder
}

// NewStream creates a StreamNormalizer for one message using the
// Normalizer's configuration.
func (n *Normalizer) NewStream() *StreamNormalizer {
	return &StreamNormalizer{n: n}
}

// Feed appends chunk to the message and returns the normalized
// text-so-far, minus any trailing partial entity. The returned string
// is a complete rendering input: callers typically redraw with it,
// replacing the previous render.
func (s *StreamNormalizer) Feed(chunk string) string {
	s.buf.WriteString(chunk)
	safe := pipeline.BufferIncompleteEntities(s.buf.String())
	return s.n.Normalize(context.Background(), safe)
}

// Segments returns the render segments for the safe text-so-far. Like
// Feed, a trailing partial entity is withheld.
func (s *StreamNormalizer) Segments() []Segment {
	safe := pipeline.BufferIncompleteEntities(s.buf.String())
	return s.n.RenderMessage(context.Background(), safe)
}

// Flush normalizes everything received, including a trailing partial
// entity that never completed — at end of stream it is literal text,
// not a truncation. Call once after the final chunk.
func (s *StreamNormalizer) Flush() string {
	return s.n.Normalize(context.Background(), s.buf.String())
}

// Text returns the raw accumulated message.
func (s *StreamNormalizer) Text() string {
	return s.buf.String()
}

// Reset clears the accumulated message so the StreamNormalizer can be
// reused for a new stream.
func (s *StreamNormalizer) Reset() {
	s.buf.Reset()
}
