package elements

import "github.com/laser-pdf/laser-pdf/pkg/layout"

// StyledBox wraps content in padding with an optional fill and outline. The
// chrome is drawn per location, underneath the content: on locations the
// content breaks away from it spans the whole available area, on the final
// location it wraps the content plus padding, stretched toward a preferred
// height negotiated by the parent. A box whose content collapses draws
// nothing and collapses itself.
type StyledBox struct {
	Content layout.Element
	Padding layout.Edges
	Fill    *layout.Color
	Outline *layout.LineStyle
}

func (s StyledBox) childWidth(width layout.WidthConstraint) layout.WidthConstraint {
	return layout.WidthConstraint{Max: width.Max - s.Padding.Horizontal(), Expand: width.Expand}
}

func (s StyledBox) preBreaks(width layout.WidthConstraint, first, full float64) bool {
	if !layout.BreakWouldHelp(full, first) {
		return false
	}
	padV := s.Padding.Vertical()
	u := s.Content.FirstLocationUsage(layout.FirstLocationUsageCtx{
		Width:       s.childWidth(width),
		FirstHeight: first - padV,
		FullHeight:  full - padV,
	})
	return u == layout.WillSkip
}

func (s StyledBox) FirstLocationUsage(ctx layout.FirstLocationUsageCtx) layout.FirstLocationUsage {
	padV := s.Padding.Vertical()
	u := s.Content.FirstLocationUsage(layout.FirstLocationUsageCtx{
		Width:       s.childWidth(ctx.Width),
		FirstHeight: ctx.FirstHeight - padV,
		FullHeight:  ctx.FullHeight - padV,
	})
	if u == layout.NoneHeight {
		return layout.NoneHeight
	}
	if s.preBreaks(ctx.Width, ctx.FirstHeight, ctx.FullHeight) {
		return layout.WillSkip
	}
	return layout.WillUse
}

func (s StyledBox) drawChrome(loc layout.Location, w, h float64) {
	surface := loc.Surface
	mode := layout.Fill
	if s.Fill != nil {
		surface.SetFill(*s.Fill)
	}
	if s.Outline != nil {
		surface.SetStroke(s.Outline.Color, s.Outline.Width)
		mode = layout.FillStroke
		if s.Fill == nil {
			mode = layout.Stroke
		}
	}
	if s.Fill != nil || s.Outline != nil {
		surface.Rect(loc.X, loc.Y, w, h, mode)
	}
}

func (s StyledBox) run(
	width layout.WidthConstraint,
	first float64,
	breakable bool,
	full float64,
	preferred layout.Dim,
	preferredBC int,
	draw bool,
	loc layout.Location,
	doBreak func(int, layout.Dim) layout.Location,
) (layout.Size, int, layout.Dim) {
	padV := s.Padding.Vertical()
	cw := s.childWidth(width)

	breaks := 0
	locFirst := first
	if breakable && s.preBreaks(width, first, full) {
		if draw {
			loc = doBreak(0, layout.None())
		}
		breaks = 1
		locFirst = full
	}
	base := breaks

	// The chrome must be painted before the content, so the content shape is
	// always learned from a measurement first.
	var bm *layout.BreakableMeasure
	if breakable {
		bm = &layout.BreakableMeasure{FullHeight: full - padV}
	}
	csize := s.Content.Measure(layout.MeasureCtx{
		Width:       cw,
		FirstHeight: locFirst - padV,
		Breakable:   bm,
	})
	cbreaks := 0
	cextra := layout.None()
	if bm != nil {
		cbreaks = bm.BreakCount
		cextra = bm.ExtraLocationMinHeight
	}
	breaks = base + cbreaks

	if csize.Height.IsNone() {
		var w layout.Dim
		if csize.Width.IsSome() {
			w = layout.Some(csize.Width.Or(0) + s.Padding.Horizontal())
		}
		if width.Expand {
			w = layout.Some(width.Max)
		}
		return layout.Size{Width: w}, breaks, layout.None()
	}

	boxH := csize.Height.Or(0) + padV
	if preferred.IsSome() && breakable && preferredBC == breaks && preferred.Or(0) > boxH {
		boxH = preferred.Or(0)
	}

	boxW := csize.Width.Or(0) + s.Padding.Horizontal()
	if width.Expand {
		boxW = width.Max
	}

	if draw {
		firstChromeH := boxH
		if cbreaks > 0 {
			firstChromeH = locFirst
		}
		s.drawChrome(loc, boxW, firstChromeH)

		run := childRun{
			width:       cw,
			firstHeight: locFirst - padV,
			breakable:   breakable,
			fullHeight:  full - padV,
			draw:        true,
			location:    loc.Offset(s.Padding.Left, s.Padding.Top),
		}
		if breakable {
			run.doBreak = func(idx int, hint layout.Dim) layout.Location {
				avail := full
				if base+idx == 0 {
					avail = first
				}
				next := doBreak(base+idx, layout.Some(avail))
				chromeH := full
				if idx+1 == cbreaks {
					chromeH = boxH
				}
				s.drawChrome(next, boxW, chromeH)
				return next.Offset(s.Padding.Left, s.Padding.Top)
			}
		}
		s.Content.Draw(layout.DrawCtx{
			Location:    run.location,
			Width:       run.width,
			FirstHeight: run.firstHeight,
			Breakable:   drawBreakable(run),
		})
	}

	extra := layout.None()
	if breaks > 0 {
		if cbreaks > 0 && cextra.IsSome() {
			extra = layout.Some(cextra.Or(0) + padV)
		} else {
			extra = layout.Some(csize.Height.Or(0) + padV)
		}
	}
	return layout.Size{Width: layout.Some(boxW), Height: layout.Some(boxH)}, breaks, extra
}

func (s StyledBox) Measure(ctx layout.MeasureCtx) layout.Size {
	breakable := ctx.Breakable != nil
	full := 0.0
	if breakable {
		full = ctx.Breakable.FullHeight
	}
	size, breaks, extra := s.run(ctx.Width, ctx.FirstHeight, breakable, full,
		layout.None(), 0, false, layout.Location{}, nil)
	if breakable {
		ctx.Breakable.BreakCount = breaks
		ctx.Breakable.ExtraLocationMinHeight = extra
	}
	return size
}

func (s StyledBox) Draw(ctx layout.DrawCtx) layout.Size {
	breakable := ctx.Breakable != nil
	full := 0.0
	preferredBC := 0
	var doBreak func(int, layout.Dim) layout.Location
	if breakable {
		full = ctx.Breakable.FullHeight
		preferredBC = ctx.Breakable.PreferredHeightBreakCount
		doBreak = ctx.Breakable.DoBreak
	}
	size, _, _ := s.run(ctx.Width, ctx.FirstHeight, breakable, full,
		ctx.PreferredHeight, preferredBC, true, ctx.Location, doBreak)
	return size
}
