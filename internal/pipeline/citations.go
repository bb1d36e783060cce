package pipeline

import "strings"

// ConvertCitationsToMarkdownLinks rewrites bracketed numeric citation
// markers into markdown links resolvable against the reference list
// rendered elsewhere on the page. A single marker [1] becomes
// [1](#cite-1). A maximal run of adjacent markers ([1][2], [1] [2])
// collapses into one combined link [1,2](#cite-group-1-2) preserving
// order and the exact numeric strings.
//
// The function is idempotent: a bracket group immediately followed by
// "(" is already a markdown link and is copied through untouched.
// Non-numeric bracket content is never a citation. Brackets inside
// backtick code spans are never citations either; math wrapped by
// WrapMathInCodeSpans (subscripts like $A[1]$) must pass through
// verbatim.
//
// Implemented as a single-pass scanner rather than chained regex
// substitutions so idempotence and linear time hold by construction.
func ConvertCitationsToMarkdownLinks(content string) string {
	if !strings.Contains(content, "[") {
		return content
	}

	var b strings.Builder
	b.Grow(len(content) + len(content)/4)

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
		if c != '[' || inCode {
			b.WriteByte(c)
			i++
			continue
		}

		run, end := scanCitationRun(content, i)
		if len(run) == 0 {
			// Not a citation marker: copy the bracket and move on.
			b.WriteByte(c)
			i++
			continue
		}

		writeCitationLink(&b, run)
		i = end
	}

	return b.String()
}

// scanCitationRun reads a maximal run of adjacent [int] markers
// starting at content[start] ('['). Markers may touch or be separated
// by spaces and tabs. It returns the numeric strings in reading order
// and the index just past the run. A marker directly followed by "("
// is an existing markdown link; it is excluded and terminates the run.
// An empty slice means content[start:] is not a citation run at all.
func scanCitationRun(content string, start int) (run []string, end int) {
	i := start
	end = start
	for {
		num, next, ok := scanCitationMarker(content, i)
		if !ok {
			return run, end
		}
		run = append(run, num)
		end = next

		// Skip inter-marker whitespace, then continue only if another
		// marker follows directly.
		j := next
		for j < len(content) && (content[j] == ' ' || content[j] == '\t') {
			j++
		}
		if j >= len(content) || content[j] != '[' {
			return run, end
		}
		i = j
	}
}

// scanCitationMarker parses one [int] marker at content[i]. It rejects
// non-numeric bodies, empty brackets, unterminated brackets (mid-stream
// truncation), and markers that are the text of an existing link.
func scanCitationMarker(content string, i int) (num string, end int, ok bool) {
	if i >= len(content) || content[i] != '[' {
		return "", i, false
	}
	j := i + 1
	for j < len(content) && content[j] >= '0' && content[j] <= '9' {
		j++
	}
	if j == i+1 || j >= len(content) || content[j] != ']' {
		return "", i, false
	}
	if j+1 < len(content) && content[j+1] == '(' {
		// Already-linked citation (or an ordinary markdown link).
		return "", i, false
	}
	return content[i+1 : j], j + 1, true
}

// writeCitationLink emits the link form for a citation run.
func writeCitationLink(b *strings.Builder, run []string) {
	if len(run) == 1 {
		b.WriteString("[")
		b.WriteString(run[0])
		b.WriteString("](#cite-")
		b.WriteString(run[0])
		b.WriteString(")")
		return
	}
	b.WriteString("[")
	b.WriteString(strings.Join(run, ","))
	b.WriteString("](#cite-group-")
	b.WriteString(strings.Join(run, "-"))
	b.WriteString(")")
}
