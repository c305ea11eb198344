package elements

import "github.com/laser-pdf/laser-pdf/pkg/layout"

// Titled places a title above its content, separated by Gap. The title is
// never orphaned: when the content would skip a cramped first location, the
// whole section pre-breaks so title and content start the fresh location
// together. The title appears only once; content continuing onto further
// locations flows without it.
type Titled struct {
	Title   layout.Element
	Content layout.Element
	Gap     float64
}

func measureUnbreakable(e layout.Element, width layout.WidthConstraint, h float64) layout.Size {
	return e.Measure(layout.MeasureCtx{Width: width, FirstHeight: h})
}

func (t Titled) preBreaks(width layout.WidthConstraint, first, full float64) bool {
	if !layout.BreakWouldHelp(full, first) {
		return false
	}
	ts := measureUnbreakable(t.Title, width, full)
	if ts.Height.Or(0) > first {
		return true
	}
	offset := 0.0
	if ts.Height.IsSome() {
		offset = ts.Height.Or(0) + t.Gap
	}
	u := t.Content.FirstLocationUsage(layout.FirstLocationUsageCtx{
		Width:       width,
		FirstHeight: first - offset,
		FullHeight:  full - offset,
	})
	return u == layout.WillSkip
}

func (t Titled) FirstLocationUsage(ctx layout.FirstLocationUsageCtx) layout.FirstLocationUsage {
	ts := measureUnbreakable(t.Title, ctx.Width, ctx.FullHeight)
	offset := 0.0
	if ts.Height.IsSome() {
		offset = ts.Height.Or(0) + t.Gap
	}
	u := t.Content.FirstLocationUsage(layout.FirstLocationUsageCtx{
		Width:       ctx.Width,
		FirstHeight: ctx.FirstHeight - offset,
		FullHeight:  ctx.FullHeight - offset,
	})
	if ts.Height.IsNone() && u == layout.NoneHeight {
		return layout.NoneHeight
	}
	if t.preBreaks(ctx.Width, ctx.FirstHeight, ctx.FullHeight) {
		return layout.WillSkip
	}
	return layout.WillUse
}

func (t Titled) run(
	width layout.WidthConstraint,
	first float64,
	breakable bool,
	full float64,
	draw bool,
	loc layout.Location,
	doBreak func(int, layout.Dim) layout.Location,
) (layout.Size, int, layout.Dim) {
	measureH := first
	if breakable {
		measureH = full
	}
	ts := measureUnbreakable(t.Title, width, measureH)
	titleH := ts.Height
	offset := 0.0
	if titleH.IsSome() {
		offset = titleH.Or(0) + t.Gap
	}

	breaks := 0
	locFirst := first
	if breakable && t.preBreaks(width, first, full) {
		if draw {
			loc = doBreak(0, layout.None())
		}
		breaks = 1
		locFirst = full
	}

	if draw {
		t.Title.Draw(layout.DrawCtx{Location: loc, Width: width, FirstHeight: locFirst})
	}

	base := breaks
	run := childRun{
		width:       width,
		firstHeight: locFirst - offset,
		breakable:   breakable,
		fullHeight:  full,
		draw:        draw,
		location:    loc.Offset(0, offset),
	}
	if draw && breakable {
		run.doBreak = func(idx int, hint layout.Dim) layout.Location {
			if idx == 0 && titleH.IsSome() {
				if hint.IsSome() {
					hint = layout.Some(offset + hint.Or(0))
				} else {
					hint = titleH
				}
			}
			return doBreak(base+idx, hint)
		}
	}
	csize, cbreaks, cextra := runChild(t.Content, run)
	breaks = base + cbreaks

	w := layout.MaxDim(ts.Width, csize.Width)
	if width.Expand {
		w = layout.Some(width.Max)
	}

	var height layout.Dim
	if cbreaks > 0 {
		height = csize.Height
	} else {
		height = addGapped(titleH, csize.Height, t.Gap)
	}

	extra := layout.None()
	if breaks > 0 {
		if cbreaks > 0 && cextra.IsSome() {
			extra = cextra
		} else {
			extra = layout.Some(height.Or(0))
		}
	}
	return layout.Size{Width: w, Height: height}, breaks, extra
}

func (t Titled) Measure(ctx layout.MeasureCtx) layout.Size {
	breakable := ctx.Breakable != nil
	full := 0.0
	if breakable {
		full = ctx.Breakable.FullHeight
	}
	size, breaks, extra := t.run(ctx.Width, ctx.FirstHeight, breakable, full,
		false, layout.Location{}, nil)
	if breakable {
		ctx.Breakable.BreakCount = breaks
		ctx.Breakable.ExtraLocationMinHeight = extra
	}
	return size
}

func (t Titled) Draw(ctx layout.DrawCtx) layout.Size {
	breakable := ctx.Breakable != nil
	full := 0.0
	var doBreak func(int, layout.Dim) layout.Location
	if breakable {
		full = ctx.Breakable.FullHeight
		doBreak = ctx.Breakable.DoBreak
	}
	size, _, _ := t.run(ctx.Width, ctx.FirstHeight, breakable, full,
		true, ctx.Location, doBreak)
	return size
}
