package elements

import "github.com/laser-pdf/laser-pdf/pkg/layout"

// repeatedTitle is the shared machinery of RepeatAfterBreak and
// ChangingTitle: a title drawn at the top of every location the content
// occupies, with possibly different elements for the first and the following
// locations.
type repeatedTitle struct {
	first     layout.Element
	following layout.Element
	content   layout.Element
	gap       float64
}

func (r repeatedTitle) offsets(width layout.WidthConstraint, measureH float64) (layout.Size, layout.Size, float64, float64) {
	fs := measureUnbreakable(r.first, width, measureH)
	ss := measureUnbreakable(r.following, width, measureH)
	fOffset := 0.0
	if fs.Height.IsSome() {
		fOffset = fs.Height.Or(0) + r.gap
	}
	sOffset := 0.0
	if ss.Height.IsSome() {
		sOffset = ss.Height.Or(0) + r.gap
	}
	return fs, ss, fOffset, sOffset
}

func (r repeatedTitle) preBreaks(width layout.WidthConstraint, first, full float64) bool {
	if !layout.BreakWouldHelp(full, first) {
		return false
	}
	fs, _, fOffset, sOffset := r.offsets(width, full)
	if fs.Height.Or(0) > first {
		return true
	}
	u := r.content.FirstLocationUsage(layout.FirstLocationUsageCtx{
		Width:       width,
		FirstHeight: first - fOffset,
		FullHeight:  full - sOffset,
	})
	return u == layout.WillSkip
}

func (r repeatedTitle) firstLocationUsage(ctx layout.FirstLocationUsageCtx) layout.FirstLocationUsage {
	fs, _, fOffset, sOffset := r.offsets(ctx.Width, ctx.FullHeight)
	u := r.content.FirstLocationUsage(layout.FirstLocationUsageCtx{
		Width:       ctx.Width,
		FirstHeight: ctx.FirstHeight - fOffset,
		FullHeight:  ctx.FullHeight - sOffset,
	})
	if fs.Height.IsNone() && u == layout.NoneHeight {
		return layout.NoneHeight
	}
	if r.preBreaks(ctx.Width, ctx.FirstHeight, ctx.FullHeight) {
		return layout.WillSkip
	}
	return layout.WillUse
}

func (r repeatedTitle) run(
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
	fs, ss, fOffset, sOffset := r.offsets(width, measureH)

	breaks := 0
	locFirst := first
	if breakable && r.preBreaks(width, first, full) {
		if draw {
			loc = doBreak(0, layout.None())
		}
		breaks = 1
		locFirst = full
	}

	if draw {
		r.first.Draw(layout.DrawCtx{Location: loc, Width: width, FirstHeight: locFirst})
	}

	base := breaks
	run := childRun{
		width:       width,
		firstHeight: locFirst - fOffset,
		breakable:   breakable,
		fullHeight:  full - sOffset,
		draw:        draw,
		location:    loc.Offset(0, fOffset),
	}
	if draw && breakable {
		run.doBreak = func(idx int, hint layout.Dim) layout.Location {
			leaving := fs.Height
			if idx > 0 {
				leaving = ss.Height
			}
			if leaving.IsSome() {
				if hint.IsSome() {
					hint = layout.Some(leaving.Or(0) + r.gap + hint.Or(0))
				} else {
					hint = leaving
				}
			}
			next := doBreak(base+idx, hint)
			r.following.Draw(layout.DrawCtx{Location: next, Width: width, FirstHeight: full})
			return next.Offset(0, sOffset)
		}
	}
	csize, cbreaks, cextra := runChild(r.content, run)
	breaks = base + cbreaks

	w := layout.MaxDim(fs.Width, layout.MaxDim(ss.Width, csize.Width))
	if width.Expand {
		w = layout.Some(width.Max)
	}

	var height layout.Dim
	if cbreaks > 0 {
		height = addGapped(ss.Height, csize.Height, r.gap)
	} else {
		height = addGapped(fs.Height, csize.Height, r.gap)
	}

	extra := layout.None()
	if breaks > 0 {
		if cbreaks > 0 && cextra.IsSome() {
			extra = layout.Some(sOffset + cextra.Or(0))
		} else {
			extra = layout.Some(height.Or(0))
		}
	}
	return layout.Size{Width: w, Height: height}, breaks, extra
}

func (r repeatedTitle) measure(ctx layout.MeasureCtx) layout.Size {
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

func (r repeatedTitle) draw(ctx layout.DrawCtx) layout.Size {
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

// RepeatAfterBreak draws Title at the top of every location its content
// occupies, the table-header pattern. Content heights are reduced by the
// title on every location, and the section pre-breaks rather than orphan the
// title at the bottom of a page.
type RepeatAfterBreak struct {
	Title   layout.Element
	Content layout.Element
	Gap     float64
}

func (r RepeatAfterBreak) core() repeatedTitle {
	return repeatedTitle{first: r.Title, following: r.Title, content: r.Content, gap: r.Gap}
}

func (r RepeatAfterBreak) FirstLocationUsage(ctx layout.FirstLocationUsageCtx) layout.FirstLocationUsage {
	return r.core().firstLocationUsage(ctx)
}

func (r RepeatAfterBreak) Measure(ctx layout.MeasureCtx) layout.Size {
	return r.core().measure(ctx)
}

func (r RepeatAfterBreak) Draw(ctx layout.DrawCtx) layout.Size {
	return r.core().draw(ctx)
}

// ChangingTitle is RepeatAfterBreak with distinct titles: FirstTitle on the
// location the section starts at, FollowingTitle (typically a "continued"
// variant) on every location after a break.
type ChangingTitle struct {
	FirstTitle     layout.Element
	FollowingTitle layout.Element
	Content        layout.Element
	Gap            float64
}

func (c ChangingTitle) core() repeatedTitle {
	return repeatedTitle{first: c.FirstTitle, following: c.FollowingTitle, content: c.Content, gap: c.Gap}
}

func (c ChangingTitle) FirstLocationUsage(ctx layout.FirstLocationUsageCtx) layout.FirstLocationUsage {
	return c.core().firstLocationUsage(ctx)
}

func (c ChangingTitle) Measure(ctx layout.MeasureCtx) layout.Size {
	return c.core().measure(ctx)
}

func (c ChangingTitle) Draw(ctx layout.DrawCtx) layout.Size {
	return c.core().draw(ctx)
}
