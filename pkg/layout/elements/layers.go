package elements

import "github.com/laser-pdf/laser-pdf/pkg/layout"

// Layers overlays children at the same location, first child at the bottom.
// All children receive the full width and share the stack's locations; the
// reported size and break count are the maxima over the children.
type Layers struct {
	Content func(*LayersContent)
}

// LayersContent accumulates the children of one layout pass.
type LayersContent struct {
	children []layout.Element
}

// Add appends a layer above the previous ones and returns the accumulator.
func (c *LayersContent) Add(e layout.Element) *LayersContent {
	c.children = append(c.children, e)
	return c
}

func (l Layers) collect() []layout.Element {
	content := &LayersContent{}
	if l.Content != nil {
		l.Content(content)
	}
	return content.children
}

func (l Layers) FirstLocationUsage(ctx layout.FirstLocationUsageCtx) layout.FirstLocationUsage {
	result := layout.NoneHeight
	for _, e := range l.collect() {
		switch e.FirstLocationUsage(ctx) {
		case layout.WillUse:
			return layout.WillUse
		case layout.WillSkip:
			result = layout.WillSkip
		}
	}
	return result
}

func (l Layers) pass(
	children []layout.Element,
	width layout.WidthConstraint,
	firstHeight float64,
	breakable bool,
	full float64,
	draw bool,
	start layout.Location,
	doBreak func(int, layout.Dim) layout.Location,
	preferred layout.Dim,
	preferredBC int,
) rowResult {
	var shared *sharedBreaks
	if draw && breakable {
		shared = newSharedBreaks(start, doBreak)
	}

	maxBreaks := 0
	maxWidth := layout.None()
	type outcome struct {
		size   layout.Size
		breaks int
		extra  layout.Dim
	}
	outcomes := make([]outcome, len(children))

	for i, e := range children {
		run := childRun{
			width:       width,
			firstHeight: firstHeight,
			breakable:   breakable,
			fullHeight:  full,
			draw:        draw,
			location:    start,
			preferred:   preferred,
			preferredBC: preferredBC,
		}
		if shared != nil {
			run.doBreak = shared.request
		}
		size, breaks, extra := runChild(e, run)
		outcomes[i] = outcome{size: size, breaks: breaks, extra: extra}
		maxWidth = layout.MaxDim(maxWidth, size.Width)
		if breaks > maxBreaks {
			maxBreaks = breaks
		}
	}

	finalHeight := layout.None()
	finalExtra := layout.None()
	for _, o := range outcomes {
		if o.breaks == maxBreaks {
			finalHeight = layout.MaxDim(finalHeight, o.size.Height)
			if o.breaks > 0 {
				finalExtra = layout.MaxDim(finalExtra, o.extra)
			}
		}
	}
	if maxBreaks > 0 && finalExtra.IsNone() {
		finalExtra = layout.Some(finalHeight.Or(0))
	}

	if width.Expand {
		maxWidth = layout.Some(width.Max)
	}
	return rowResult{
		size:   layout.Size{Width: maxWidth, Height: finalHeight},
		breaks: maxBreaks,
		extra:  finalExtra,
	}
}

func (l Layers) Measure(ctx layout.MeasureCtx) layout.Size {
	children := l.collect()
	breakable := ctx.Breakable != nil
	full := 0.0
	if breakable {
		full = ctx.Breakable.FullHeight
	}
	res := l.pass(children, ctx.Width, ctx.FirstHeight, breakable, full,
		false, layout.Location{}, nil, layout.None(), 0)
	if breakable {
		ctx.Breakable.BreakCount = res.breaks
		if res.breaks > 0 {
			ctx.Breakable.ExtraLocationMinHeight = res.extra
		}
	}
	return res.size
}

func (l Layers) Draw(ctx layout.DrawCtx) layout.Size {
	children := l.collect()
	breakable := ctx.Breakable != nil
	full := 0.0
	var doBreak func(int, layout.Dim) layout.Location
	if breakable {
		full = ctx.Breakable.FullHeight
		doBreak = ctx.Breakable.DoBreak
	}

	measured := l.pass(children, ctx.Width, ctx.FirstHeight, breakable, full,
		false, layout.Location{}, nil, layout.None(), 0)

	preferred := measured.size.Height
	if ctx.PreferredHeight.IsSome() && breakable &&
		ctx.Breakable.PreferredHeightBreakCount == measured.breaks {
		preferred = layout.MaxDim(preferred, ctx.PreferredHeight)
	}

	res := l.pass(children, ctx.Width, ctx.FirstHeight, breakable, full,
		true, ctx.Location, doBreak, preferred, measured.breaks)
	return res.size
}
