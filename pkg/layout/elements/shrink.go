package elements

import "github.com/laser-pdf/laser-pdf/pkg/layout"

// ShrinkToFit scales its content down so it fits the height of the first
// offered location, instead of breaking. Content that fits is drawn at full
// size; with a degenerate first height the content is drawn unscaled and
// overflows, since neither scaling nor breaking would help.
type ShrinkToFit struct {
	Content layout.Element
}

func (s ShrinkToFit) FirstLocationUsage(ctx layout.FirstLocationUsageCtx) layout.FirstLocationUsage {
	size := measureUnbreakable(s.Content, ctx.Width, ctx.FirstHeight)
	if size.Height.IsNone() && size.Width.IsNone() {
		return layout.NoneHeight
	}
	return layout.WillUse
}

func (s ShrinkToFit) scale(h layout.Dim, firstHeight float64) float64 {
	if h.IsNone() || h.Or(0) <= 0 || firstHeight <= 0 {
		return 1
	}
	if h.Or(0) <= firstHeight {
		return 1
	}
	return firstHeight / h.Or(0)
}

func (s ShrinkToFit) Measure(ctx layout.MeasureCtx) layout.Size {
	csize := measureUnbreakable(s.Content, ctx.Width, ctx.FirstHeight)
	factor := s.scale(csize.Height, ctx.FirstHeight)
	size := layout.Size{
		Width:  scaleDim(csize.Width, factor),
		Height: scaleDim(csize.Height, factor),
	}
	if ctx.Width.Expand {
		size.Width = layout.Some(ctx.Width.Max)
	}
	return size
}

func (s ShrinkToFit) Draw(ctx layout.DrawCtx) layout.Size {
	csize := measureUnbreakable(s.Content, ctx.Width, ctx.FirstHeight)
	factor := s.scale(csize.Height, ctx.FirstHeight)

	if factor == 1 {
		s.Content.Draw(layout.DrawCtx{
			Location:    ctx.Location,
			Width:       ctx.Width,
			FirstHeight: ctx.FirstHeight,
		})
	} else {
		surface := ctx.Location.Surface
		surface.SaveState()
		surface.Translate(ctx.Location.X, ctx.Location.Y)
		surface.Scale(factor)
		s.Content.Draw(layout.DrawCtx{
			Location:    layout.Location{Surface: surface},
			Width:       ctx.Width,
			FirstHeight: ctx.FirstHeight / factor,
		})
		surface.RestoreState()
	}

	size := layout.Size{
		Width:  scaleDim(csize.Width, factor),
		Height: scaleDim(csize.Height, factor),
	}
	if ctx.Width.Expand {
		size.Width = layout.Some(ctx.Width.Max)
	}
	return size
}

func scaleDim(d layout.Dim, factor float64) layout.Dim {
	if d.IsNone() {
		return d
	}
	return layout.Some(d.Or(0) * factor)
}
