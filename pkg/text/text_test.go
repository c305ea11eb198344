package text

import (
	"slices"
	"testing"
	"unicode/utf8"
)

// fixedFace measures every rune as charWidth points wide.
type fixedFace struct {
	charWidth float64
}

func (f fixedFace) Family() string     { return "Fixed" }
func (f fixedFace) Size() float64      { return 10 }
func (f fixedFace) Ascent() float64    { return 8 }
func (f fixedFace) LineHeight() float64 { return 10 }
func (f fixedFace) WidthOf(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * f.charWidth
}

func collectPieces(s string, f Face) []Piece {
	var out []Piece
	for p := range Pieces(s, f) {
		out = append(out, p)
	}
	return out
}

func collectLines(s string, f Face, maxWidth float64) []Line {
	var out []Line
	for l := range Lines(Pieces(s, f), maxWidth) {
		out = append(out, l)
	}
	return out
}

func TestPieces(t *testing.T) {
	face := fixedFace{charWidth: 1}

	tests := []struct {
		name string
		in   string
		want []Piece
	}{
		{
			name: "empty",
			in:   "",
			want: nil,
		},
		{
			name: "single word",
			in:   "hello",
			want: []Piece{{Text: "hello", Width: 5}},
		},
		{
			name: "two words",
			in:   "hi there",
			want: []Piece{
				{Text: "hi", Trailing: " ", Width: 2, TrailingWhitespace: 1},
				{Text: "there", Width: 5},
			},
		},
		{
			name: "newline marks mandatory break",
			in:   "a\nb",
			want: []Piece{
				{Text: "a", Width: 1, MandatoryBreak: true},
				{Text: "b", Width: 1},
			},
		},
		{
			name: "blank line yields empty mandatory piece",
			in:   "a\n\nb",
			want: []Piece{
				{Text: "a", Width: 1, MandatoryBreak: true},
				{MandatoryBreak: true},
				{Text: "b", Width: 1},
			},
		},
		{
			name: "whitespace run kept literally",
			in:   "a  b",
			want: []Piece{
				{Text: "a", Trailing: "  ", Width: 1, TrailingWhitespace: 2},
				{Text: "b", Width: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectPieces(tt.in, face)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Pieces(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPiecesRestartable(t *testing.T) {
	face := fixedFace{charWidth: 1}
	seq := Pieces("one two three", face)

	first := len(collectFrom(seq))
	second := len(collectFrom(seq))
	if first != 3 || second != 3 {
		t.Errorf("restarted sequence lengths = %d, %d, want 3, 3", first, second)
	}
}

func collectFrom(seq func(func(Piece) bool)) []Piece {
	var out []Piece
	seq(func(p Piece) bool {
		out = append(out, p)
		return true
	})
	return out
}

func TestLines(t *testing.T) {
	face := fixedFace{charWidth: 1}

	tests := []struct {
		name     string
		in       string
		maxWidth float64
		want     []Line
	}{
		{
			name:     "empty input yields one empty line",
			in:       "",
			maxWidth: 10,
			want:     []Line{{}},
		},
		{
			name:     "fits on one line",
			in:       "ab cd",
			maxWidth: 10,
			want:     []Line{{Text: "ab cd", Width: 5}},
		},
		{
			name:     "wraps at width",
			in:       "aaaa bbbb cccc",
			maxWidth: 9,
			want: []Line{
				{Text: "aaaa bbbb", Width: 9},
				{Text: "cccc", Width: 4},
			},
		},
		{
			name:     "trailing whitespace free at line end",
			in:       "aaaa bbbb",
			maxWidth: 4,
			want: []Line{
				{Text: "aaaa", Width: 4},
				{Text: "bbbb", Width: 4},
			},
		},
		{
			name:     "overlong word overflows alone",
			in:       "abcdefgh xy",
			maxWidth: 4,
			want: []Line{
				{Text: "abcdefgh", Width: 8},
				{Text: "xy", Width: 2},
			},
		},
		{
			name:     "mandatory break",
			in:       "ab\ncd",
			maxWidth: 100,
			want: []Line{
				{Text: "ab", Width: 2},
				{Text: "cd", Width: 2},
			},
		},
		{
			name:     "blank line preserved",
			in:       "ab\n\ncd",
			maxWidth: 100,
			want: []Line{
				{Text: "ab", Width: 2},
				{},
				{Text: "cd", Width: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectLines(tt.in, face, tt.maxWidth)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Lines(%q, %v) = %+v, want %+v", tt.in, tt.maxWidth, got, tt.want)
			}
		})
	}
}
