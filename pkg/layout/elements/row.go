package elements

import "github.com/laser-pdf/laser-pdf/pkg/layout"

// Row places children side by side. Width distribution is two-phase: the
// first phase measures fixed and self-sized children, the second hands the
// leftover width to expand children in proportion to their integer weights.
// Children share the row's locations; a break requested by one child is
// reused by the others, and all children are drawn toward a uniform final
// height negotiated from a prior measurement.
type Row struct {
	Gap     float64
	Content func(*RowContent)
}

type rowChildKind int

const (
	rowSelfSized rowChildKind = iota
	rowFixed
	rowExpand
)

type rowChild struct {
	element layout.Element
	kind    rowChildKind
	fixed   float64
	weight  int
}

// RowContent accumulates the children of one layout pass.
type RowContent struct {
	children []rowChild
}

// Add appends a self-sized child.
func (c *RowContent) Add(e layout.Element) *RowContent {
	c.children = append(c.children, rowChild{element: e, kind: rowSelfSized})
	return c
}

// AddFixed appends a child of exactly the given width.
func (c *RowContent) AddFixed(width float64, e layout.Element) *RowContent {
	c.children = append(c.children, rowChild{element: e, kind: rowFixed, fixed: width})
	return c
}

// AddExpanded appends a child that takes a weighted share of the leftover
// width. Weights below one count as one.
func (c *RowContent) AddExpanded(weight int, e layout.Element) *RowContent {
	if weight < 1 {
		weight = 1
	}
	c.children = append(c.children, rowChild{element: e, kind: rowExpand, weight: weight})
	return c
}

func (r Row) collect() []rowChild {
	content := &RowContent{}
	if r.Content != nil {
		r.Content(content)
	}
	return content.children
}

// plan resolves every child's width constraint. Phase one measures the
// non-expanding children; phase two divides what is left among the expand
// weights. A child may report a collapsed width, in which case it occupies
// no horizontal room and materializes no gap.
func (r Row) plan(children []rowChild, total float64, measureHeight float64) []layout.Dim {
	planned := make([]layout.Dim, len(children))
	nonExpand := 0.0
	totalWeight := 0
	slots := 0
	for i, c := range children {
		switch c.kind {
		case rowFixed:
			planned[i] = layout.Some(c.fixed)
			nonExpand += c.fixed
			slots++
		case rowSelfSized:
			size := c.element.Measure(layout.MeasureCtx{
				Width:       layout.UpTo(total),
				FirstHeight: measureHeight,
			})
			planned[i] = size.Width
			if size.Width.IsSome() {
				nonExpand += size.Width.Or(0)
				slots++
			}
		case rowExpand:
			totalWeight += c.weight
			slots++
		}
	}

	gaps := 0.0
	if slots > 1 {
		gaps = r.Gap * float64(slots-1)
	}
	remaining := total - nonExpand - gaps
	if remaining < 0 {
		remaining = 0
	}
	for i, c := range children {
		if c.kind == rowExpand {
			planned[i] = layout.Some(remaining * float64(c.weight) / float64(totalWeight))
		}
	}
	return planned
}

func (r Row) constraintFor(c rowChild, planned layout.Dim) layout.WidthConstraint {
	switch c.kind {
	case rowSelfSized:
		return layout.UpTo(planned.Or(0))
	default:
		return layout.Fixed(planned.Or(0))
	}
}

func (r Row) FirstLocationUsage(ctx layout.FirstLocationUsageCtx) layout.FirstLocationUsage {
	children := r.collect()
	planned := r.plan(children, ctx.Width.Max, ctx.FullHeight)

	result := layout.NoneHeight
	for i, c := range children {
		u := c.element.FirstLocationUsage(layout.FirstLocationUsageCtx{
			Width:       r.constraintFor(c, planned[i]),
			FirstHeight: ctx.FirstHeight,
			FullHeight:  ctx.FullHeight,
		})
		if u == layout.WillUse {
			return layout.WillUse
		}
		if u == layout.WillSkip {
			result = layout.WillSkip
		}
	}
	return result
}

type rowResult struct {
	size   layout.Size
	breaks int
	extra  layout.Dim
}

// pass runs one full layout pass over the children. On draw passes the
// preferred height and break count from a preceding measure pass are handed
// to every child so they can stretch their final location uniformly.
func (r Row) pass(
	children []rowChild,
	planned []layout.Dim,
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

	cursor := layout.None()
	maxBreaks := 0
	finalHeight := layout.None()
	finalExtra := layout.None()
	type outcome struct {
		size   layout.Size
		breaks int
		extra  layout.Dim
	}
	outcomes := make([]outcome, len(children))

	for i, c := range children {
		x := gapOffset(cursor, r.Gap)
		run := childRun{
			width:       r.constraintFor(c, planned[i]),
			firstHeight: firstHeight,
			breakable:   breakable,
			fullHeight:  full,
			draw:        draw,
			location:    start.Offset(x, 0),
			preferred:   preferred,
			preferredBC: preferredBC,
		}
		if shared != nil {
			run.doBreak = func(idx int, hint layout.Dim) layout.Location {
				return shared.request(idx, hint).Offset(x, 0)
			}
		}
		size, breaks, extra := runChild(c.element, run)
		outcomes[i] = outcome{size: size, breaks: breaks, extra: extra}
		cursor = addGapped(cursor, size.Width, r.Gap)
		if breaks > maxBreaks {
			maxBreaks = breaks
		}
	}

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

	w := cursor
	if width.Expand {
		w = layout.Some(width.Max)
	}
	return rowResult{
		size:   layout.Size{Width: w, Height: finalHeight},
		breaks: maxBreaks,
		extra:  finalExtra,
	}
}

func (r Row) Measure(ctx layout.MeasureCtx) layout.Size {
	children := r.collect()
	breakable := ctx.Breakable != nil
	full := 0.0
	if breakable {
		full = ctx.Breakable.FullHeight
	}
	planned := r.plan(children, ctx.Width.Max, ctx.FirstHeight)
	res := r.pass(children, planned, ctx.Width, ctx.FirstHeight, breakable, full,
		false, layout.Location{}, nil, layout.None(), 0)
	if breakable {
		ctx.Breakable.BreakCount = res.breaks
		if res.breaks > 0 {
			ctx.Breakable.ExtraLocationMinHeight = res.extra
		}
	}
	return res.size
}

func (r Row) Draw(ctx layout.DrawCtx) layout.Size {
	children := r.collect()
	breakable := ctx.Breakable != nil
	full := 0.0
	var doBreak func(int, layout.Dim) layout.Location
	if breakable {
		full = ctx.Breakable.FullHeight
		doBreak = ctx.Breakable.DoBreak
	}
	planned := r.plan(children, ctx.Width.Max, ctx.FirstHeight)

	// Measure pass first: the uniform final height must be known before any
	// child draws.
	measured := r.pass(children, planned, ctx.Width, ctx.FirstHeight, breakable, full,
		false, layout.Location{}, nil, layout.None(), 0)

	preferred := measured.size.Height
	if ctx.PreferredHeight.IsSome() && breakable &&
		ctx.Breakable.PreferredHeightBreakCount == measured.breaks {
		preferred = layout.MaxDim(preferred, ctx.PreferredHeight)
	}

	res := r.pass(children, planned, ctx.Width, ctx.FirstHeight, breakable, full,
		true, ctx.Location, doBreak, preferred, measured.breaks)
	return res.size
}
