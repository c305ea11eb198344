package elements

import (
	"github.com/laser-pdf/laser-pdf/pkg/layout"
	"github.com/laser-pdf/laser-pdf/pkg/text"
)

// Text lays a string out line by line, breaking across locations between
// lines. It never collapses: an empty string still occupies one line.
type Text struct {
	Content string
	Face    text.Face
	Color   layout.Color
}

func (t Text) lineHeight() float64 { return t.Face.LineHeight() }

func (t Text) FirstLocationUsage(ctx layout.FirstLocationUsageCtx) layout.FirstLocationUsage {
	lh := t.lineHeight()
	if lh > ctx.FirstHeight && layout.BreakWouldHelp(ctx.FullHeight, ctx.FirstHeight) {
		return layout.WillSkip
	}
	return layout.WillUse
}

// walk runs the shared line-placement loop. draw is nil on measure passes.
func (t Text) walk(
	width layout.WidthConstraint,
	firstHeight float64,
	breakable bool,
	fullHeight float64,
	draw func(y float64, l text.Line),
	doBreak func(locationIdx int, heightHint layout.Dim),
) (size layout.Size, breaks int) {
	lh := t.lineHeight()
	maxLineWidth := 0.0
	remaining := firstHeight
	used := 0.0

	for l := range text.Lines(text.Pieces(t.Content, t.Face), width.Max) {
		if lh > remaining && breakable &&
			layout.BreakWouldHelp(fullHeight, remaining) {
			if doBreak != nil {
				doBreak(breaks, layout.Some(used))
			}
			breaks++
			remaining = fullHeight
			used = 0
		}
		if draw != nil {
			draw(used, l)
		}
		if l.Width > maxLineWidth {
			maxLineWidth = l.Width
		}
		remaining -= lh
		used += lh
	}

	return layout.Size{
		Width:  layout.Some(width.Constrain(maxLineWidth)),
		Height: layout.Some(used),
	}, breaks
}

func (t Text) Measure(ctx layout.MeasureCtx) layout.Size {
	breakable := ctx.Breakable != nil
	full := 0.0
	if breakable {
		full = ctx.Breakable.FullHeight
	}
	size, breaks := t.walk(ctx.Width, ctx.FirstHeight, breakable, full, nil, nil)
	if breakable {
		ctx.Breakable.BreakCount = breaks
		if breaks > 0 {
			ctx.Breakable.ExtraLocationMinHeight = size.Height
		}
	}
	return size
}

func (t Text) Draw(ctx layout.DrawCtx) layout.Size {
	breakable := ctx.Breakable != nil
	full := 0.0
	if breakable {
		full = ctx.Breakable.FullHeight
	}

	loc := ctx.Location
	ascent := t.Face.Ascent()
	drawLine := func(y float64, l text.Line) {
		if l.Text == "" {
			return
		}
		s := loc.Surface
		s.SetFill(t.Color)
		s.Text(loc.X, loc.Y+y+ascent, t.Face.Family(), t.Face.Size(), l.Text)
	}
	doBreak := func(idx int, hint layout.Dim) {
		loc = ctx.Breakable.DoBreak(idx, hint)
	}

	size, _ := t.walk(ctx.Width, ctx.FirstHeight, breakable, full, drawLine, doBreak)
	return size
}
