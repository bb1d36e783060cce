package streammd

import (
	"context"
	"reflect"
	"strings"
	"testing"
)

func TestStreamFeedBuffersPartialEntity(t *testing.T) {
	t.Parallel()

	s := NewNormalizer().NewStream()

	if got := s.Feed("Alpha&#3"); got != "Alpha" {
		t.Errorf("Feed(partial entity) = %q, want %q", got, "Alpha")
	}
	if got := s.Feed("2;Beta"); got != "Alpha Beta" {
		t.Errorf("Feed(completing chunk) = %q, want %q", got, "Alpha Beta")
	}
}

func TestStreamFlushKeepsTrailingAmpersandText(t *testing.T) {
	t.Parallel()

	s := NewNormalizer().NewStream()

	if got := s.Feed("AT&#3"); got != "AT" {
		t.Errorf("Feed() = %q, want %q", got, "AT")
	}

	// At end of stream the partial entity is literal text.
	if got := s.Flush(); got != "AT&#3" {
		t.Errorf("Flush() = %q, want %q", got, "AT&#3")
	}
}

func TestStreamSnapshotsAreStable(t *testing.T) {
	t.Parallel()

	// Every Feed snapshot must be a fixed point of Normalize: redrawing
	// an already-normalized snapshot may not change it again.
	message := "Fact \\[1\\] holds. The equation \\(E=mc^2\\) [2][3] " +
		"costs $10 to verify.&#10;And $x^2 - 1 = 0$ has two roots."

	n := NewNormalizer()
	s := n.NewStream()
	ctx := context.Background()

	for i := 0; i < len(message); i += 7 {
		end := i + 7
		if end > len(message) {
			end = len(message)
		}
		snapshot := s.Feed(message[i:end])
		if again := n.Normalize(ctx, snapshot); again != snapshot {
			t.Fatalf("snapshot after %d bytes is not stable:\n snapshot: %q\nrenormalized: %q",
				end, snapshot, again)
		}
	}

	final := s.Flush()
	if want := n.Normalize(ctx, message); final != want {
		t.Errorf("Flush() = %q, want %q", final, want)
	}
}

func TestStreamConvergesToFullMessage(t *testing.T) {
	t.Parallel()

	message := "The equation $E=mc^2$ [1][2] is famous"
	want := NewNormalizer().Normalize(context.Background(), message)

	// Chunk size must not affect the final result.
	for _, chunk := range []int{1, 3, 5, 16, len(message)} {
		s := NewNormalizer().NewStream()
		for i := 0; i < len(message); i += chunk {
			end := i + chunk
			if end > len(message) {
				end = len(message)
			}
			s.Feed(message[i:end])
		}
		if got := s.Flush(); got != want {
			t.Errorf("chunk size %d: Flush() = %q, want %q", chunk, got, want)
		}
	}
}

func TestStreamSegments(t *testing.T) {
	t.Parallel()

	s := NewNormalizer().NewStream()
	s.Feed("solve $x^")
	s.Feed("2$ [1]")

	got := s.Segments()
	want := []Segment{
		textSegment("solve "),
		mathSeg("x^2", false),
		textSegment(" [1](#cite-1)"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segments() = %+v, want %+v", got, want)
	}
}

func TestStreamTextAndReset(t *testing.T) {
	t.Parallel()

	s := NewNormalizer().NewStream()
	s.Feed("hello ")
	s.Feed("world")

	if got := s.Text(); got != "hello world" {
		t.Errorf("Text() = %q, want %q", got, "hello world")
	}

	s.Reset()
	if got := s.Text(); got != "" {
		t.Errorf("Text() after Reset = %q, want empty", got)
	}
	if got := s.Feed("fresh"); got != "fresh" {
		t.Errorf("Feed() after Reset = %q, want %q", got, "fresh")
	}
}

func TestStreamNoFlickerOnDollarAmounts(t *testing.T) {
	t.Parallel()

	// While "from $10 to $" could still become math, no snapshot may
	// commit to a math reading that a later chunk would retract.
	message := "from $10 to $20 total"
	s := NewNormalizer().NewStream()

	for i := 0; i < len(message); i++ {
		snapshot := s.Feed(message[i : i+1])
		if strings.Contains(snapshot, "`") {
			t.Fatalf("snapshot %q after %d bytes wrapped a dollar amount as math", snapshot, i+1)
		}
	}
}
