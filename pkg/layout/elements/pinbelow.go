package elements

import "github.com/laser-pdf/laser-pdf/pkg/layout"

// PinBelow keeps a trailer element directly under its content, on the
// content's final location. When the trailer no longer fits there and a
// break would help, the trailer alone moves to the next location.
type PinBelow struct {
	Content layout.Element
	Pinned  layout.Element
	Gap     float64
}

func (p PinBelow) FirstLocationUsage(ctx layout.FirstLocationUsageCtx) layout.FirstLocationUsage {
	u := p.Content.FirstLocationUsage(ctx)
	if u != layout.NoneHeight {
		return u
	}
	ps := measureUnbreakable(p.Pinned, ctx.Width, ctx.FullHeight)
	if ps.Height.IsNone() {
		return layout.NoneHeight
	}
	if ps.Height.Or(0) <= ctx.FirstHeight || !layout.BreakWouldHelp(ctx.FullHeight, ctx.FirstHeight) {
		return layout.WillUse
	}
	return layout.WillSkip
}

func (p PinBelow) run(
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
	ps := measureUnbreakable(p.Pinned, width, measureH)
	pinH := ps.Height

	locFirst := first
	run := childRun{
		width:       width,
		firstHeight: first,
		breakable:   breakable,
		fullHeight:  full,
		draw:        draw,
		location:    loc,
	}
	if draw && breakable {
		run.doBreak = func(idx int, hint layout.Dim) layout.Location {
			next := doBreak(idx, hint)
			loc = next
			locFirst = full
			return next
		}
	}
	csize, breaks, _ := runChild(p.Content, run)
	if !draw && breaks > 0 {
		locFirst = full
	}

	height := csize.Height
	if pinH.IsSome() {
		offset := gapOffset(csize.Height, p.Gap)
		remaining := locFirst - offset
		if pinH.Or(0) > remaining && breakable && layout.BreakWouldHelp(full, remaining) {
			if draw {
				loc = doBreak(breaks, csize.Height)
			}
			breaks++
			offset = 0
			height = pinH
		} else {
			height = addGapped(csize.Height, pinH, p.Gap)
		}
		if draw {
			p.Pinned.Draw(layout.DrawCtx{
				Location:    loc.Offset(0, offset),
				Width:       width,
				FirstHeight: pinH.Or(0),
			})
		}
	}

	w := layout.MaxDim(csize.Width, ps.Width)
	if width.Expand {
		w = layout.Some(width.Max)
	}

	extra := layout.None()
	if breaks > 0 {
		extra = layout.Some(height.Or(0))
	}
	return layout.Size{Width: w, Height: height}, breaks, extra
}

func (p PinBelow) Measure(ctx layout.MeasureCtx) layout.Size {
	breakable := ctx.Breakable != nil
	full := 0.0
	if breakable {
		full = ctx.Breakable.FullHeight
	}
	size, breaks, extra := p.run(ctx.Width, ctx.FirstHeight, breakable, full,
		false, layout.Location{}, nil)
	if breakable {
		ctx.Breakable.BreakCount = breaks
		ctx.Breakable.ExtraLocationMinHeight = extra
	}
	return size
}

func (p PinBelow) Draw(ctx layout.DrawCtx) layout.Size {
	breakable := ctx.Breakable != nil
	full := 0.0
	var doBreak func(int, layout.Dim) layout.Location
	if breakable {
		full = ctx.Breakable.FullHeight
		doBreak = ctx.Breakable.DoBreak
	}
	size, _, _ := p.run(ctx.Width, ctx.FirstHeight, breakable, full,
		true, ctx.Location, doBreak)
	return size
}
