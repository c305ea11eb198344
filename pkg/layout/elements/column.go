package elements

import "github.com/laser-pdf/laser-pdf/pkg/layout"

// Column stacks children vertically, separated by Gap. A gap materializes
// only between children that realize height; a column whose children all
// collapse reports a collapsed height itself. Children break themselves when
// the remaining room runs out, and the column carries the running break index
// across them.
type Column struct {
	Gap     float64
	Content func(*ColumnContent)
}

// ColumnContent accumulates the children of one layout pass.
type ColumnContent struct {
	children []layout.Element
}

// Add appends a child and returns the accumulator for chaining.
func (c *ColumnContent) Add(e layout.Element) *ColumnContent {
	c.children = append(c.children, e)
	return c
}

func (c Column) collect() []layout.Element {
	content := &ColumnContent{}
	if c.Content != nil {
		c.Content(content)
	}
	return content.children
}

func (c Column) FirstLocationUsage(ctx layout.FirstLocationUsageCtx) layout.FirstLocationUsage {
	for _, e := range c.collect() {
		if u := e.FirstLocationUsage(ctx); u != layout.NoneHeight {
			return u
		}
	}
	return layout.NoneHeight
}

type columnPass struct {
	gap       float64
	width     layout.WidthConstraint
	breakable bool
	full      float64

	draw    bool
	doBreak func(int, layout.Dim) layout.Location

	location layout.Location
	locFirst float64    // first height of the current location
	used     layout.Dim // height realized on the current location
	maxWidth layout.Dim
	breaks   int
}

func (p *columnPass) child(e layout.Element) {
	offset := gapOffset(p.used, p.gap)
	base := p.breaks

	run := childRun{
		width:       p.width,
		firstHeight: p.locFirst - offset,
		breakable:   p.breakable,
		fullHeight:  p.full,
		draw:        p.draw,
		location:    p.location.Offset(0, offset),
	}
	if p.draw && p.breakable {
		run.doBreak = func(idx int, hint layout.Dim) layout.Location {
			if idx == 0 && p.used.IsSome() {
				if hint.IsSome() {
					hint = layout.Some(p.used.Or(0) + p.gap + hint.Or(0))
				} else {
					hint = p.used
				}
			}
			next := p.doBreak(base+idx, hint)
			p.location = next
			return next
		}
	}

	size, breaks, _ := runChild(e, run)
	p.maxWidth = layout.MaxDim(p.maxWidth, size.Width)

	if breaks > 0 {
		p.breaks = base + breaks
		p.locFirst = p.full
		p.used = size.Height
		return
	}
	p.used = addGapped(p.used, size.Height, p.gap)
}

func (p *columnPass) size() layout.Size {
	w := p.maxWidth
	if p.width.Expand {
		w = layout.Some(p.width.Max)
	}
	return layout.Size{Width: w, Height: p.used}
}

func (c Column) Measure(ctx layout.MeasureCtx) layout.Size {
	p := &columnPass{
		gap:       c.Gap,
		width:     ctx.Width,
		breakable: ctx.Breakable != nil,
		locFirst:  ctx.FirstHeight,
	}
	if ctx.Breakable != nil {
		p.full = ctx.Breakable.FullHeight
	}
	for _, e := range c.collect() {
		p.child(e)
	}
	if ctx.Breakable != nil {
		ctx.Breakable.BreakCount = p.breaks
		if p.breaks > 0 {
			ctx.Breakable.ExtraLocationMinHeight = layout.Some(p.used.Or(0))
		}
	}
	return p.size()
}

func (c Column) Draw(ctx layout.DrawCtx) layout.Size {
	p := &columnPass{
		gap:       c.Gap,
		width:     ctx.Width,
		breakable: ctx.Breakable != nil,
		draw:      true,
		location:  ctx.Location,
		locFirst:  ctx.FirstHeight,
	}
	if ctx.Breakable != nil {
		p.full = ctx.Breakable.FullHeight
		p.doBreak = ctx.Breakable.DoBreak
	}
	for _, e := range c.collect() {
		p.child(e)
	}
	return p.size()
}
