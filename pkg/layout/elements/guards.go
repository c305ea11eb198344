package elements

import "github.com/laser-pdf/laser-pdf/pkg/layout"

// MinFirstHeight pre-breaks unless the first offered location has at least
// Min height, so its content never starts in a sliver at the bottom of a
// page. Content that consumes no location passes through untouched.
type MinFirstHeight struct {
	Content layout.Element
	Min     float64
}

func (m MinFirstHeight) preBreaks(width layout.WidthConstraint, first, full float64) bool {
	if first >= m.Min || !layout.BreakWouldHelp(full, first) {
		return false
	}
	u := m.Content.FirstLocationUsage(layout.FirstLocationUsageCtx{
		Width:       width,
		FirstHeight: first,
		FullHeight:  full,
	})
	return u != layout.NoneHeight
}

func (m MinFirstHeight) FirstLocationUsage(ctx layout.FirstLocationUsageCtx) layout.FirstLocationUsage {
	u := m.Content.FirstLocationUsage(ctx)
	if u == layout.NoneHeight {
		return layout.NoneHeight
	}
	if m.preBreaks(ctx.Width, ctx.FirstHeight, ctx.FullHeight) {
		return layout.WillSkip
	}
	return u
}

func (m MinFirstHeight) Measure(ctx layout.MeasureCtx) layout.Size {
	if ctx.Breakable == nil {
		return m.Content.Measure(ctx)
	}
	full := ctx.Breakable.FullHeight
	first := ctx.FirstHeight
	base := 0
	if m.preBreaks(ctx.Width, first, full) {
		base = 1
		first = full
	}
	inner := &layout.BreakableMeasure{FullHeight: full}
	size := m.Content.Measure(layout.MeasureCtx{Width: ctx.Width, FirstHeight: first, Breakable: inner})
	ctx.Breakable.BreakCount = base + inner.BreakCount
	if ctx.Breakable.BreakCount > 0 {
		if inner.BreakCount > 0 && inner.ExtraLocationMinHeight.IsSome() {
			ctx.Breakable.ExtraLocationMinHeight = inner.ExtraLocationMinHeight
		} else {
			ctx.Breakable.ExtraLocationMinHeight = layout.Some(size.Height.Or(0))
		}
	}
	return size
}

func (m MinFirstHeight) Draw(ctx layout.DrawCtx) layout.Size {
	if ctx.Breakable == nil {
		return m.Content.Draw(ctx)
	}
	full := ctx.Breakable.FullHeight
	first := ctx.FirstHeight
	loc := ctx.Location
	base := 0
	if m.preBreaks(ctx.Width, first, full) {
		loc = ctx.Breakable.DoBreak(0, layout.None())
		base = 1
		first = full
	}
	outer := ctx.Breakable
	shift := base
	return m.Content.Draw(layout.DrawCtx{
		Location:        loc,
		Width:           ctx.Width,
		FirstHeight:     first,
		PreferredHeight: ctx.PreferredHeight,
		Breakable: &layout.BreakableDraw{
			FullHeight:                full,
			PreferredHeightBreakCount: outer.PreferredHeightBreakCount - shift,
			DoBreak: func(idx int, hint layout.Dim) layout.Location {
				return outer.DoBreak(shift+idx, hint)
			},
		},
	})
}

// BreakWhole keeps its content on a single location: when the whole content
// does not fit the first one and a break would help, it pre-breaks and draws
// the content unbroken on the fresh location, overflowing if even that is
// too small.
type BreakWhole struct {
	Content layout.Element
}

func (b BreakWhole) FirstLocationUsage(ctx layout.FirstLocationUsageCtx) layout.FirstLocationUsage {
	return layout.FirstLocationUsageFromMeasure(b, ctx)
}

func (b BreakWhole) preBreaks(width layout.WidthConstraint, first, full float64) (layout.Size, bool) {
	size := measureUnbreakable(b.Content, width, full)
	pre := size.Height.IsSome() && size.Height.Or(0) > first &&
		layout.BreakWouldHelp(full, first)
	return size, pre
}

func (b BreakWhole) Measure(ctx layout.MeasureCtx) layout.Size {
	if ctx.Breakable == nil {
		return b.Content.Measure(ctx)
	}
	size, pre := b.preBreaks(ctx.Width, ctx.FirstHeight, ctx.Breakable.FullHeight)
	if pre {
		ctx.Breakable.BreakCount = 1
		ctx.Breakable.ExtraLocationMinHeight = size.Height
	}
	return size
}

func (b BreakWhole) Draw(ctx layout.DrawCtx) layout.Size {
	if ctx.Breakable == nil {
		return b.Content.Draw(ctx)
	}
	size, pre := b.preBreaks(ctx.Width, ctx.FirstHeight, ctx.Breakable.FullHeight)
	loc := ctx.Location
	first := ctx.FirstHeight
	if pre {
		loc = ctx.Breakable.DoBreak(0, layout.None())
		first = ctx.Breakable.FullHeight
	}
	b.Content.Draw(layout.DrawCtx{Location: loc, Width: ctx.Width, FirstHeight: first})
	return size
}
