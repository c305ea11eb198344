package text

import (
	"iter"
	"strings"
)

// Face supplies the metrics needed to size text. pkg/fonts provides the
// production implementation; tests substitute fixed-width fakes.
type Face interface {
	Family() string
	Size() float64
	Ascent() float64
	LineHeight() float64
	WidthOf(s string) float64
}

// Piece is one breakable unit of text: a run of non-whitespace characters,
// the literal whitespace that follows it, and their widths. MandatoryBreak
// marks a piece after which a line must end (a newline in the source).
type Piece struct {
	Text               string
	Trailing           string
	Width              float64
	TrailingWhitespace float64
	MandatoryBreak     bool
}

// Pieces yields the breakable units of s, sized by f. The sequence is lazy
// and restartable. An empty string yields no pieces; a newline produces a
// mandatory break on the piece preceding it, or an empty piece when the
// newline starts a line of its own.
func Pieces(s string, f Face) iter.Seq[Piece] {
	return func(yield func(Piece) bool) {
		segments := strings.Split(s, "\n")
		for si, seg := range segments {
			hard := si < len(segments)-1
			if seg == "" {
				if hard && !yield(Piece{MandatoryBreak: true}) {
					return
				}
				continue
			}
			i := 0
			for i < len(seg) {
				start := i
				for i < len(seg) && !isSpace(seg[i]) {
					i++
				}
				word := seg[start:i]
				wsStart := i
				for i < len(seg) && isSpace(seg[i]) {
					i++
				}
				trailing := seg[wsStart:i]
				p := Piece{
					Text:               word,
					Trailing:           trailing,
					Width:              f.WidthOf(word),
					TrailingWhitespace: f.WidthOf(trailing),
					MandatoryBreak:     hard && i == len(seg),
				}
				if !yield(p) {
					return
				}
			}
		}
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}
