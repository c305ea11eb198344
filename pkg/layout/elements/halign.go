package elements

import "github.com/laser-pdf/laser-pdf/pkg/layout"

// Alignment selects the horizontal placement of content inside an expanded
// width.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) factor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignRight:
		return 1
	default:
		return 0
	}
}

// HAlign fills the offered width and places its self-sized content within it.
// Without an expand constraint there is no slack and the wrapper is inert.
type HAlign struct {
	Content   layout.Element
	Alignment Alignment
}

func (h HAlign) childWidth(width layout.WidthConstraint) layout.WidthConstraint {
	return layout.UpTo(width.Max)
}

func (h HAlign) FirstLocationUsage(ctx layout.FirstLocationUsageCtx) layout.FirstLocationUsage {
	ctx.Width = h.childWidth(ctx.Width)
	return h.Content.FirstLocationUsage(ctx)
}

func (h HAlign) size(width layout.WidthConstraint, csize layout.Size) layout.Size {
	if width.Expand {
		return layout.Size{Width: layout.Some(width.Max), Height: csize.Height}
	}
	return csize
}

func (h HAlign) Measure(ctx layout.MeasureCtx) layout.Size {
	csize := h.Content.Measure(layout.MeasureCtx{
		Width:       h.childWidth(ctx.Width),
		FirstHeight: ctx.FirstHeight,
		Breakable:   ctx.Breakable,
	})
	return h.size(ctx.Width, csize)
}

func (h HAlign) Draw(ctx layout.DrawCtx) layout.Size {
	cw := h.childWidth(ctx.Width)

	// The content width must be known before drawing to place it.
	measured := h.Content.Measure(layout.MeasureCtx{Width: cw, FirstHeight: ctx.FirstHeight})
	dx := 0.0
	if ctx.Width.Expand && measured.Width.IsSome() {
		slack := ctx.Width.Max - measured.Width.Or(0)
		if slack > 0 {
			dx = slack * h.Alignment.factor()
		}
	}

	var bd *layout.BreakableDraw
	if ctx.Breakable != nil {
		outer := ctx.Breakable
		bd = &layout.BreakableDraw{
			FullHeight:                outer.FullHeight,
			PreferredHeightBreakCount: outer.PreferredHeightBreakCount,
			DoBreak: func(idx int, hint layout.Dim) layout.Location {
				return outer.DoBreak(idx, hint).Offset(dx, 0)
			},
		}
	}
	csize := h.Content.Draw(layout.DrawCtx{
		Location:        ctx.Location.Offset(dx, 0),
		Width:           cw,
		FirstHeight:     ctx.FirstHeight,
		PreferredHeight: ctx.PreferredHeight,
		Breakable:       bd,
	})
	return h.size(ctx.Width, csize)
}
