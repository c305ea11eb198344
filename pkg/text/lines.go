package text

import (
	"iter"
	"strings"
)

const eps = 1e-6

// Line is one laid-out line of text. Width excludes trailing whitespace.
type Line struct {
	Text  string
	Width float64
}

// Lines folds pieces into lines no wider than maxWidth, greedily. A piece
// wider than maxWidth is placed alone and overflows rather than being split.
// Trailing whitespace at a line end does not count against the limit. The
// sequence is lazy and restartable; an empty piece sequence yields a single
// empty line.
func Lines(pieces iter.Seq[Piece], maxWidth float64) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		var b strings.Builder
		width := 0.0
		pendingWS := ""
		pendingWSWidth := 0.0
		empty := true
		any := false

		flush := func() bool {
			line := Line{Text: b.String(), Width: width}
			b.Reset()
			width = 0
			pendingWS = ""
			pendingWSWidth = 0
			empty = true
			return yield(line)
		}

		for p := range pieces {
			any = true
			if !empty && width+pendingWSWidth+p.Width > maxWidth+eps {
				if !flush() {
					return
				}
			}
			if !empty {
				b.WriteString(pendingWS)
				width += pendingWSWidth
			}
			b.WriteString(p.Text)
			width += p.Width
			pendingWS = p.Trailing
			pendingWSWidth = p.TrailingWhitespace
			empty = false
			if p.MandatoryBreak {
				if !flush() {
					return
				}
			}
		}
		if !empty || !any {
			flush()
		}
	}
}
