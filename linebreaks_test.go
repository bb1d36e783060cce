package streammd

import (
	"reflect"
	"testing"
)

func TestApplyHardLineBreaks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Segment
	}{
		{
			name:  "no break markup",
			input: "plain text",
			want:  []Segment{textSegment("plain text")},
		},
		{
			name:  "two trailing spaces",
			input: "a  \nb",
			want:  []Segment{textSegment("a"), breakSeg("br-0"), textSegment("b")},
		},
		{
			name:  "three trailing spaces",
			input: "a   \nb",
			want:  []Segment{textSegment("a"), breakSeg("br-0"), textSegment("b")},
		},
		{
			name:  "trailing backslash",
			input: "a\\\nb",
			want:  []Segment{textSegment("a"), breakSeg("br-0"), textSegment("b")},
		},
		{
			name:  "windows line ending",
			input: "a  \r\nb",
			want:  []Segment{textSegment("a"), breakSeg("br-0"), textSegment("b")},
		},
		{
			name:  "single trailing space is soft",
			input: "a \nb",
			want:  []Segment{textSegment("a \nb")},
		},
		{
			name:  "multiple breaks numbered in order",
			input: "a  \nb  \nc",
			want: []Segment{
				textSegment("a"),
				breakSeg("br-0"),
				textSegment("b"),
				breakSeg("br-1"),
				textSegment("c"),
			},
		},
		{
			name:  "stray backslash space stripped",
			input: `text\ more`,
			want:  []Segment{textSegment("text more")},
		},
		{
			name:  "empty input",
			input: "",
			want:  []Segment{textSegment("")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ApplyHardLineBreaks(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ApplyHardLineBreaks(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
