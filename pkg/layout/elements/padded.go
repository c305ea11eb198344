package elements

import "github.com/laser-pdf/laser-pdf/pkg/layout"

// Padded insets its content by Padding on every location it occupies. It
// draws nothing itself; a collapsed content leaves the wrapper collapsed.
type Padded struct {
	Content layout.Element
	Padding layout.Edges
}

func (p Padded) childWidth(width layout.WidthConstraint) layout.WidthConstraint {
	return layout.WidthConstraint{Max: width.Max - p.Padding.Horizontal(), Expand: width.Expand}
}

func (p Padded) FirstLocationUsage(ctx layout.FirstLocationUsageCtx) layout.FirstLocationUsage {
	padV := p.Padding.Vertical()
	return p.Content.FirstLocationUsage(layout.FirstLocationUsageCtx{
		Width:       p.childWidth(ctx.Width),
		FirstHeight: ctx.FirstHeight - padV,
		FullHeight:  ctx.FullHeight - padV,
	})
}

func (p Padded) size(width layout.WidthConstraint, csize layout.Size) layout.Size {
	padV := p.Padding.Vertical()
	var w layout.Dim
	if csize.Width.IsSome() {
		w = layout.Some(csize.Width.Or(0) + p.Padding.Horizontal())
	}
	if width.Expand {
		w = layout.Some(width.Max)
	}
	var h layout.Dim
	if csize.Height.IsSome() {
		h = layout.Some(csize.Height.Or(0) + padV)
	}
	return layout.Size{Width: w, Height: h}
}

func (p Padded) Measure(ctx layout.MeasureCtx) layout.Size {
	padV := p.Padding.Vertical()
	var bm *layout.BreakableMeasure
	if ctx.Breakable != nil {
		bm = &layout.BreakableMeasure{FullHeight: ctx.Breakable.FullHeight - padV}
	}
	csize := p.Content.Measure(layout.MeasureCtx{
		Width:       p.childWidth(ctx.Width),
		FirstHeight: ctx.FirstHeight - padV,
		Breakable:   bm,
	})
	if ctx.Breakable != nil {
		ctx.Breakable.BreakCount = bm.BreakCount
		if bm.BreakCount > 0 {
			ctx.Breakable.ExtraLocationMinHeight = layout.Some(bm.ExtraLocationMinHeight.Or(csize.Height.Or(0)) + padV)
		}
	}
	return p.size(ctx.Width, csize)
}

func (p Padded) Draw(ctx layout.DrawCtx) layout.Size {
	padV := p.Padding.Vertical()
	var bd *layout.BreakableDraw
	if ctx.Breakable != nil {
		outer := ctx.Breakable
		bd = &layout.BreakableDraw{
			FullHeight:                outer.FullHeight - padV,
			PreferredHeightBreakCount: outer.PreferredHeightBreakCount,
			DoBreak: func(idx int, hint layout.Dim) layout.Location {
				next := outer.DoBreak(idx, hint.Add(padV))
				return next.Offset(p.Padding.Left, p.Padding.Top)
			},
		}
	}
	csize := p.Content.Draw(layout.DrawCtx{
		Location:    ctx.Location.Offset(p.Padding.Left, p.Padding.Top),
		Width:       p.childWidth(ctx.Width),
		FirstHeight: ctx.FirstHeight - padV,
		Breakable:   bd,
	})
	return p.size(ctx.Width, csize)
}
