package elements

import "github.com/laser-pdf/laser-pdf/pkg/layout"

// Empty contributes nothing: collapsed in both dimensions, no location
// consumed, no gaps materialized around it.
type Empty struct{}

func (Empty) FirstLocationUsage(layout.FirstLocationUsageCtx) layout.FirstLocationUsage {
	return layout.NoneHeight
}

func (Empty) Measure(layout.MeasureCtx) layout.Size { return layout.Size{} }

func (Empty) Draw(layout.DrawCtx) layout.Size { return layout.Size{} }

// VGap is fixed vertical space. It has no width, never breaks and overflows
// rather than moving to a fresh location.
type VGap struct {
	Height float64
}

func (VGap) FirstLocationUsage(layout.FirstLocationUsageCtx) layout.FirstLocationUsage {
	return layout.WillUse
}

func (g VGap) Measure(layout.MeasureCtx) layout.Size {
	return layout.Size{Height: layout.Some(g.Height)}
}

func (g VGap) Draw(layout.DrawCtx) layout.Size {
	return layout.Size{Height: layout.Some(g.Height)}
}

// HLine is a horizontal rule spanning the offered width.
type HLine struct {
	Style layout.LineStyle
}

func (HLine) FirstLocationUsage(layout.FirstLocationUsageCtx) layout.FirstLocationUsage {
	return layout.WillUse
}

func (l HLine) Measure(ctx layout.MeasureCtx) layout.Size {
	return layout.Size{
		Width:  layout.Some(ctx.Width.Max),
		Height: layout.Some(l.Style.Width),
	}
}

func (l HLine) Draw(ctx layout.DrawCtx) layout.Size {
	s := ctx.Location.Surface
	y := ctx.Location.Y + l.Style.Width/2
	s.SetStroke(l.Style.Color, l.Style.Width)
	s.Line(ctx.Location.X, y, ctx.Location.X+ctx.Width.Max, y)
	return layout.Size{
		Width:  layout.Some(ctx.Width.Max),
		Height: layout.Some(l.Style.Width),
	}
}

// Rectangle is a filled and/or outlined block of fixed size. It is atomic:
// when it does not fit the first location and a break would help, it moves
// whole to the next one.
type Rectangle struct {
	Width   float64
	Height  float64
	Fill    *layout.Color
	Outline *layout.LineStyle
}

func (r Rectangle) FirstLocationUsage(ctx layout.FirstLocationUsageCtx) layout.FirstLocationUsage {
	if r.Height <= ctx.FirstHeight || !layout.BreakWouldHelp(ctx.FullHeight, ctx.FirstHeight) {
		return layout.WillUse
	}
	return layout.WillSkip
}

func (r Rectangle) preBreaks(firstHeight float64, breakable bool, fullHeight float64) bool {
	return breakable && r.Height > firstHeight && layout.BreakWouldHelp(fullHeight, firstHeight)
}

func (r Rectangle) size(ctx layout.WidthConstraint) layout.Size {
	return layout.Size{
		Width:  layout.Some(ctx.Constrain(r.Width)),
		Height: layout.Some(r.Height),
	}
}

func (r Rectangle) Measure(ctx layout.MeasureCtx) layout.Size {
	if ctx.Breakable != nil && r.preBreaks(ctx.FirstHeight, true, ctx.Breakable.FullHeight) {
		ctx.Breakable.BreakCount = 1
		ctx.Breakable.ExtraLocationMinHeight = layout.Some(r.Height)
	}
	return r.size(ctx.Width)
}

func (r Rectangle) Draw(ctx layout.DrawCtx) layout.Size {
	loc := ctx.Location
	if ctx.Breakable != nil && r.preBreaks(ctx.FirstHeight, true, ctx.Breakable.FullHeight) {
		loc = ctx.Breakable.DoBreak(0, layout.None())
	}

	size := r.size(ctx.Width)
	w := size.Width.Or(0)
	s := loc.Surface
	mode := layout.Fill
	if r.Fill != nil {
		s.SetFill(*r.Fill)
	}
	if r.Outline != nil {
		s.SetStroke(r.Outline.Color, r.Outline.Width)
		mode = layout.FillStroke
		if r.Fill == nil {
			mode = layout.Stroke
		}
	}
	if r.Fill != nil || r.Outline != nil {
		s.Rect(loc.X, loc.Y, w, r.Height, mode)
	}
	return size
}

// ForceBreak consumes no size but forces an advance to the next location,
// unless the fresh location would offer no more room than what remains.
type ForceBreak struct{}

func (ForceBreak) FirstLocationUsage(ctx layout.FirstLocationUsageCtx) layout.FirstLocationUsage {
	if layout.BreakWouldHelp(ctx.FullHeight, ctx.FirstHeight) {
		return layout.WillSkip
	}
	return layout.NoneHeight
}

func (ForceBreak) Measure(ctx layout.MeasureCtx) layout.Size {
	if ctx.Breakable != nil && layout.BreakWouldHelp(ctx.Breakable.FullHeight, ctx.FirstHeight) {
		ctx.Breakable.BreakCount = 1
		ctx.Breakable.ExtraLocationMinHeight = layout.Some(0)
	}
	return layout.Size{}
}

func (ForceBreak) Draw(ctx layout.DrawCtx) layout.Size {
	if ctx.Breakable != nil && layout.BreakWouldHelp(ctx.Breakable.FullHeight, ctx.FirstHeight) {
		ctx.Breakable.DoBreak(0, layout.None())
	}
	return layout.Size{}
}
