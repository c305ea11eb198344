package elements

import "github.com/laser-pdf/laser-pdf/pkg/layout"

// BreakList flows atomic items left to right, wrapping to a new line when an
// item no longer fits the width, and moving whole lines to the next location
// when they no longer fit the height. Items never break internally.
type BreakList struct {
	Gap     float64
	Content func(*BreakListContent)
}

// BreakListContent accumulates the items of one layout pass.
type BreakListContent struct {
	items []layout.Element
}

// Add appends an item and returns the accumulator for chaining.
func (c *BreakListContent) Add(e layout.Element) *BreakListContent {
	c.items = append(c.items, e)
	return c
}

func (b BreakList) collect() []layout.Element {
	content := &BreakListContent{}
	if b.Content != nil {
		b.Content(content)
	}
	return content.items
}

type breakListItem struct {
	element layout.Element
	size    layout.Size
	x       float64
}

type breakListLine struct {
	items  []breakListItem
	width  layout.Dim
	height layout.Dim
}

// lines measures every item and groups them into lines no wider than max.
// The first item of a line always belongs to it, even when wider than max.
func (b BreakList) lines(items []layout.Element, max float64, measureHeight float64) []breakListLine {
	var lines []breakListLine
	var cur breakListLine
	cursor := layout.None()

	flush := func() {
		if len(cur.items) > 0 {
			cur.width = cursor
			lines = append(lines, cur)
		}
		cur = breakListLine{}
		cursor = layout.None()
	}

	for _, e := range items {
		size := e.Measure(layout.MeasureCtx{
			Width:       layout.UpTo(max),
			FirstHeight: measureHeight,
		})
		x := gapOffset(cursor, b.Gap)
		if size.Width.IsSome() && len(cur.items) > 0 && x+size.Width.Or(0) > max {
			flush()
			x = 0
		}
		cur.items = append(cur.items, breakListItem{element: e, size: size, x: x})
		cursor = addGapped(cursor, size.Width, b.Gap)
		cur.height = layout.MaxDim(cur.height, size.Height)
	}
	flush()
	return lines
}

func (b BreakList) FirstLocationUsage(ctx layout.FirstLocationUsageCtx) layout.FirstLocationUsage {
	lines := b.lines(b.collect(), ctx.Width.Max, ctx.FullHeight)
	for _, l := range lines {
		if l.height.IsNone() {
			continue
		}
		if l.height.Or(0) <= ctx.FirstHeight || !layout.BreakWouldHelp(ctx.FullHeight, ctx.FirstHeight) {
			return layout.WillUse
		}
		return layout.WillSkip
	}
	return layout.NoneHeight
}

type breakListPass struct {
	gap       float64
	breakable bool
	full      float64

	draw    bool
	doBreak func(int, layout.Dim) layout.Location

	location layout.Location
	locFirst float64
	used     layout.Dim
	maxWidth layout.Dim
	breaks   int
}

func (p *breakListPass) line(l breakListLine) {
	p.maxWidth = layout.MaxDim(p.maxWidth, l.width)
	if l.height.IsNone() {
		// Heightless lines still draw their items at the cursor.
		if p.draw {
			y := gapOffset(p.used, p.gap)
			p.drawLine(l, y)
		}
		return
	}

	h := l.height.Or(0)
	offset := gapOffset(p.used, p.gap)
	remaining := p.locFirst - offset
	if h > remaining && p.breakable && layout.BreakWouldHelp(p.full, remaining) {
		if p.draw {
			p.location = p.doBreak(p.breaks, p.used)
		}
		p.breaks++
		p.locFirst = p.full
		p.used = layout.None()
		offset = 0
	}
	if p.draw {
		p.drawLine(l, offset)
	}
	p.used = addGapped(p.used, l.height, p.gap)
}

func (p *breakListPass) drawLine(l breakListLine, y float64) {
	for _, it := range l.items {
		it.element.Draw(layout.DrawCtx{
			Location:    p.location.Offset(it.x, y),
			Width:       layout.UpTo(it.size.Width.Or(0)),
			FirstHeight: l.height.Or(0),
		})
	}
}

func (b BreakList) run(
	width layout.WidthConstraint,
	firstHeight float64,
	breakable bool,
	full float64,
	draw bool,
	location layout.Location,
	doBreak func(int, layout.Dim) layout.Location,
) (layout.Size, int) {
	measureHeight := firstHeight
	if breakable {
		measureHeight = full
	}
	lines := b.lines(b.collect(), width.Max, measureHeight)

	p := &breakListPass{
		gap:       b.Gap,
		breakable: breakable,
		full:      full,
		draw:      draw,
		doBreak:   doBreak,
		location:  location,
		locFirst:  firstHeight,
	}
	for _, l := range lines {
		p.line(l)
	}

	w := p.maxWidth
	if width.Expand {
		w = layout.Some(width.Max)
	}
	return layout.Size{Width: w, Height: p.used}, p.breaks
}

func (b BreakList) Measure(ctx layout.MeasureCtx) layout.Size {
	breakable := ctx.Breakable != nil
	full := 0.0
	if breakable {
		full = ctx.Breakable.FullHeight
	}
	size, breaks := b.run(ctx.Width, ctx.FirstHeight, breakable, full, false, layout.Location{}, nil)
	if breakable {
		ctx.Breakable.BreakCount = breaks
		if breaks > 0 {
			ctx.Breakable.ExtraLocationMinHeight = layout.Some(size.Height.Or(0))
		}
	}
	return size
}

func (b BreakList) Draw(ctx layout.DrawCtx) layout.Size {
	breakable := ctx.Breakable != nil
	full := 0.0
	var doBreak func(int, layout.Dim) layout.Location
	if breakable {
		full = ctx.Breakable.FullHeight
		doBreak = ctx.Breakable.DoBreak
	}
	size, _ := b.run(ctx.Width, ctx.FirstHeight, breakable, full, true, ctx.Location, doBreak)
	return size
}
