package pipeline

import (
	"strings"
	"testing"
)

func TestInjectCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		html     string
		css      string
		expected string
	}{
		{
			name:     "empty css returns html unchanged",
			html:     "<html><body>content</body></html>",
			css:      "",
			expected: "<html><body>content</body></html>",
		},
		{
			name:     "inserted before closing head",
			html:     "<html><head></head><body>x</body></html>",
			css:      "body{color:red}",
			expected: "<html><head><style>body{color:red}</style></head><body>x</body></html>",
		},
		{
			name:     "inserted after body when no head",
			html:     "<html><body>x</body></html>",
			css:      "p{margin:0}",
			expected: "<html><body><style>p{margin:0}</style>x</body></html>",
		},
		{
			name:     "prepended when neither head nor body",
			html:     "<p>bare fragment</p>",
			css:      "p{margin:0}",
			expected: "<style>p{margin:0}</style><p>bare fragment</p>",
		},
		{
			name:     "closing sequences sanitized",
			html:     "<html><head></head><body>x</body></html>",
			css:      "p{}</style><script>evil()</script>",
			expected: `<html><head><style>p{}<\/style><script>evil()<\/script></style></head><body>x</body></html>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := InjectCSS(tt.html, tt.css)
			if got != tt.expected {
				t.Errorf("InjectCSS():\ngot:  %q\nwant: %q", got, tt.expected)
			}
		})
	}
}

func TestRewriteMathCodeSpans(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "inline math rewritten",
			input:    `<p>equation <code>$E=mc^2$</code> here</p>`,
			expected: `<p>equation <span class="math math-inline">$E=mc^2$</span> here</p>`,
		},
		{
			name:     "display math rewritten",
			input:    `<p><code>$$x + y$$</code></p>`,
			expected: `<p><div class="math math-display">$$x + y$$</div></p>`,
		},
		{
			name:     "ordinary code untouched",
			input:    `<p>run <code>go test</code></p>`,
			expected: `<p>run <code>go test</code></p>`,
		},
		{
			name:     "dollar amount code untouched",
			input:    `<p>price <code>$10</code></p>`,
			expected: `<p>price <code>$10</code></p>`,
		},
		{
			name:     "escaped entities in math body",
			input:    `<p><code>$a &lt; b$</code></p>`,
			expected: `<p><span class="math math-inline">$a &lt; b$</span></p>`,
		},
		{
			name:     "ai escaping removed from emitted body",
			input:    `<p><code>$r\_1$</code></p>`,
			expected: `<p><span class="math math-inline">$r_1$</span></p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := RewriteMathCodeSpans(tt.input)
			if got != tt.expected {
				t.Errorf("RewriteMathCodeSpans():\ngot:  %q\nwant: %q", got, tt.expected)
			}
		})
	}
}

func TestRewriteMathCodeSpansIdempotent(t *testing.T) {
	t.Parallel()

	input := `<p>mix <code>$x$</code> and <code>plain</code></p>`
	once := RewriteMathCodeSpans(input)
	twice := RewriteMathCodeSpans(once)
	if once != twice {
		t.Errorf("not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}

	if !strings.Contains(once, `<code>plain</code>`) {
		t.Errorf("plain code span lost: %q", once)
	}
}
