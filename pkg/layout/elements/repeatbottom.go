package elements

import "github.com/laser-pdf/laser-pdf/pkg/layout"

// RepeatBottom reserves room for a footer on every location its content
// occupies. On locations the content breaks away from, the footer is drawn
// anchored to the bottom of the available area; on the final location it is
// drawn inline, directly below the content.
type RepeatBottom struct {
	Content layout.Element
	Footer  layout.Element
	Gap     float64
}

func (r RepeatBottom) footerOffset(fs layout.Size) float64 {
	if fs.Height.IsNone() {
		return 0
	}
	return fs.Height.Or(0) + r.Gap
}

func (r RepeatBottom) FirstLocationUsage(ctx layout.FirstLocationUsageCtx) layout.FirstLocationUsage {
	fs := measureUnbreakable(r.Footer, ctx.Width, ctx.FullHeight)
	offset := r.footerOffset(fs)
	u := r.Content.FirstLocationUsage(layout.FirstLocationUsageCtx{
		Width:       ctx.Width,
		FirstHeight: ctx.FirstHeight - offset,
		FullHeight:  ctx.FullHeight - offset,
	})
	if u != layout.NoneHeight {
		return u
	}
	if fs.Height.IsNone() {
		return layout.NoneHeight
	}
	return layout.WillUse
}

func (r RepeatBottom) run(
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
	fs := measureUnbreakable(r.Footer, width, measureH)
	offset := r.footerOffset(fs)

	locAvail := first
	run := childRun{
		width:       width,
		firstHeight: first - offset,
		breakable:   breakable,
		fullHeight:  full - offset,
		draw:        draw,
		location:    loc,
	}
	if draw && breakable {
		run.doBreak = func(idx int, hint layout.Dim) layout.Location {
			if fs.Height.IsSome() {
				r.Footer.Draw(layout.DrawCtx{
					Location:    loc.Offset(0, locAvail-fs.Height.Or(0)),
					Width:       width,
					FirstHeight: fs.Height.Or(0),
				})
				hint = layout.Some(locAvail)
			}
			next := doBreak(idx, hint)
			loc = next
			locAvail = full
			return next
		}
	}
	csize, breaks, _ := runChild(r.Content, run)

	height := addGapped(csize.Height, fs.Height, r.Gap)
	if draw && fs.Height.IsSome() {
		r.Footer.Draw(layout.DrawCtx{
			Location:    loc.Offset(0, gapOffset(csize.Height, r.Gap)),
			Width:       width,
			FirstHeight: fs.Height.Or(0),
		})
	}

	w := layout.MaxDim(csize.Width, fs.Width)
	if width.Expand {
		w = layout.Some(width.Max)
	}

	extra := layout.None()
	if breaks > 0 {
		extra = layout.Some(height.Or(0))
	}
	return layout.Size{Width: w, Height: height}, breaks, extra
}

func (r RepeatBottom) Measure(ctx layout.MeasureCtx) layout.Size {
	breakable := ctx.Breakable != nil
	full := 0.0
	if breakable {
		full = ctx.Breakable.FullHeight
	}
	size, breaks, extra := r.run(ctx.Width, ctx.FirstHeight, breakable, full,
		false, layout.Location{}, nil)
	if breakable {
		ctx.Breakable.BreakCount = breaks
		ctx.Breakable.ExtraLocationMinHeight = extra
	}
	return size
}

func (r RepeatBottom) Draw(ctx layout.DrawCtx) layout.Size {
	breakable := ctx.Breakable != nil
	full := 0.0
	var doBreak func(int, layout.Dim) layout.Location
	if breakable {
		full = ctx.Breakable.FullHeight
		doBreak = ctx.Breakable.DoBreak
	}
	size, _, _ := r.run(ctx.Width, ctx.FirstHeight, breakable, full,
		true, ctx.Location, doBreak)
	return size
}
