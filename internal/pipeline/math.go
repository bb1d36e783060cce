package pipeline

import "strings"

// MathSpan is the render handoff for a detected math span. The body is
// raw LaTeX with delimiters stripped; rendering it (and surfacing
// malformed LaTeX) belongs to the consuming math renderer.
type MathSpan struct {
	Body  string
	Block bool
}

// aiEscapeReplacer undoes the escaping some models apply to avoid
// accidental markdown emphasis inside math. Only \_ and \* are
// unescaped; every other backslash sequence (\frac, \sum, \{, \alpha,
// ...) is a real LaTeX command and must survive verbatim.
var aiEscapeReplacer = strings.NewReplacer(`\_`, "_", `\*`, "*")

// ParseMathSpan decides whether candidate is a complete dollar-delimited
// math span and produces its render handoff. It returns nil, false for
// anything else (no delimiters, unmatched delimiters, blank body) so the
// caller renders the candidate as ordinary text.
func ParseMathSpan(candidate string) (*MathSpan, bool) {
	var body string
	var block bool

	switch {
	case strings.HasPrefix(candidate, "$$") && strings.HasSuffix(candidate, "$$"):
		// A $$-prefixed candidate is display math or nothing; it must
		// never degrade into an inline span with a '$' in its body.
		if len(candidate) <= 4 {
			return nil, false
		}
		body = candidate[2 : len(candidate)-2]
		block = true
	case len(candidate) > 2 && strings.HasPrefix(candidate, "$") && strings.HasSuffix(candidate, "$"):
		body = candidate[1 : len(candidate)-1]
	default:
		return nil, false
	}

	if strings.TrimSpace(body) == "" {
		return nil, false
	}

	return &MathSpan{Body: aiEscapeReplacer.Replace(body), Block: block}, true
}

// FindMathSpan locates the first complete math span in content, using
// the same dollar-amount heuristic as WrapMathInCodeSpans. It returns
// the byte offsets of the delimited span (end exclusive). Spans inside
// backtick code are skipped. ok is false when no complete span exists,
// which includes every mid-stream truncation (an opening delimiter
// whose closing half has not arrived yet).
func FindMathSpan(content string) (start, end int, block, ok bool) {
	i := 0
	inCode := false
	for i < len(content) {
		c := content[i]
		if c == '`' {
			for i < len(content) && content[i] == '`' {
				i++
			}
			inCode = !inCode
			continue
		}
		if c == '$' && !inCode {
			if e, bl, matched := matchMathSpanAt(content, i); matched {
				return i, e, bl, true
			}
		}
		i++
	}
	return 0, 0, false, false
}

// matchMathSpanAt tries to match a complete math span anchored at
// content[i] (which must be '$').
//
// Display spans ($$...$$) require a closing $$ and a non-blank body;
// the body may contain newlines.
//
// Inline spans ($...$) are confined to one line and the body may not
// contain '$'. Two rules keep plain dollar amounts out:
//   - a closing '$' immediately followed by a digit is an amount
//     ("$10 to $20"), not a delimiter;
//   - a closing '$' at the very end of the input with a digit-initial
//     body is ambiguous while streaming ("$10 to $" may continue as
//     "$20"), so it is not matched until more text disambiguates.
func matchMathSpanAt(content string, i int) (end int, block, ok bool) {
	if i+1 < len(content) && content[i+1] == '$' {
		rel := strings.Index(content[i+2:], "$$")
		if rel == -1 {
			return 0, false, false
		}
		body := content[i+2 : i+2+rel]
		if strings.TrimSpace(body) == "" {
			return 0, false, false
		}
		return i + 2 + rel + 2, true, true
	}

	for j := i + 1; j < len(content); j++ {
		switch content[j] {
		case '\n':
			return 0, false, false
		case '$':
			body := content[i+1 : j]
			if strings.TrimSpace(body) == "" {
				return 0, false, false
			}
			if j+1 < len(content) && isDigit(content[j+1]) {
				return 0, false, false
			}
			if j == len(content)-1 && isDigit(body[0]) {
				return 0, false, false
			}
			return j + 1, false, true
		}
	}
	return 0, false, false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// WrapMathInCodeSpans wraps every complete top-level math span in
// backticks so a generic markdown renderer carries the span through as
// a literal code token; the renderer's code-span hook then hands the
// content to ParseMathSpan. Spans already inside code (including spans
// wrapped by a previous application) are left alone, making the
// function idempotent. Newlines inside display math collapse to spaces
// because code spans cannot hold raw newlines.
func WrapMathInCodeSpans(content string) string {
	if !strings.Contains(content, "$") {
		return content
	}

	var b strings.Builder
	b.Grow(len(content) + 16)

	i := 0
	inCode := false
	for i < len(content) {
		c := content[i]
		if c == '`' {
			j := i
			for j < len(content) && content[j] == '`' {
				j++
			}
			b.WriteString(content[i:j])
			inCode = !inCode
			i = j
			continue
		}
		if c == '$' && !inCode {
			if end, block, ok := matchMathSpanAt(content, i); ok {
				span := content[i:end]
				if block {
					span = collapseNewlines(span)
				}
				b.WriteByte('`')
				b.WriteString(span)
				b.WriteByte('`')
				i = end
				continue
			}
		}
		b.WriteByte(c)
		i++
	}

	return b.String()
}

// collapseNewlines flattens a display-math span onto one line.
func collapseNewlines(span string) string {
	span = strings.ReplaceAll(span, "\r\n", " ")
	return strings.ReplaceAll(span, "\n", " ")
}
