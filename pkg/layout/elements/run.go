package elements

import "github.com/laser-pdf/laser-pdf/pkg/layout"

// childRun describes one measure-or-draw invocation of a child element.
// Containers build it from their own context plus their cursor state, so the
// accounting that follows the call is identical in both passes.
type childRun struct {
	width       layout.WidthConstraint
	firstHeight float64

	breakable  bool
	fullHeight float64

	draw        bool
	location    layout.Location
	preferred   layout.Dim
	preferredBC int
	doBreak     func(locationIdx int, heightHint layout.Dim) layout.Location
}

// runChild invokes the child and reports its size, realized break count and,
// on a measure pass, its extra-location minimum height.
func runChild(e layout.Element, r childRun) (layout.Size, int, layout.Dim) {
	if !r.draw {
		var bm *layout.BreakableMeasure
		if r.breakable {
			bm = &layout.BreakableMeasure{FullHeight: r.fullHeight}
		}
		size := e.Measure(layout.MeasureCtx{
			Width:       r.width,
			FirstHeight: r.firstHeight,
			Breakable:   bm,
		})
		if bm != nil {
			return size, bm.BreakCount, bm.ExtraLocationMinHeight
		}
		return size, 0, layout.None()
	}

	var bd *layout.BreakableDraw
	breaks := 0
	if r.breakable {
		bd = &layout.BreakableDraw{
			FullHeight:                r.fullHeight,
			PreferredHeightBreakCount: r.preferredBC,
			DoBreak: func(idx int, hint layout.Dim) layout.Location {
				if idx+1 > breaks {
					breaks = idx + 1
				}
				return r.doBreak(idx, hint)
			},
		}
	}
	size := e.Draw(layout.DrawCtx{
		Location:        r.location,
		Width:           r.width,
		FirstHeight:     r.firstHeight,
		PreferredHeight: r.preferred,
		Breakable:       bd,
	})
	return size, breaks, layout.None()
}

// drawBreakable builds the draw sub-context for a breakable childRun, for
// containers that drive the child draw themselves.
func drawBreakable(r childRun) *layout.BreakableDraw {
	if !r.breakable {
		return nil
	}
	return &layout.BreakableDraw{
		FullHeight:                r.fullHeight,
		PreferredHeightBreakCount: r.preferredBC,
		DoBreak:                   r.doBreak,
	}
}

// sharedBreaks deduplicates break requests from siblings drawn over the same
// run of locations (Row, Layers). The first sibling to request a location
// index triggers the real break, with its height hint; later requests for the
// same index reuse the stored location.
type sharedBreaks struct {
	locations []layout.Location
	doBreak   func(locationIdx int, heightHint layout.Dim) layout.Location
}

func newSharedBreaks(start layout.Location, doBreak func(int, layout.Dim) layout.Location) *sharedBreaks {
	return &sharedBreaks{locations: []layout.Location{start}, doBreak: doBreak}
}

func (s *sharedBreaks) request(locationIdx int, hint layout.Dim) layout.Location {
	for len(s.locations) < locationIdx+2 {
		h := layout.None()
		if len(s.locations) == locationIdx+1 {
			h = hint
		}
		s.locations = append(s.locations, s.doBreak(len(s.locations)-1, h))
	}
	return s.locations[locationIdx+1]
}

// addGapped advances a one-dimensional cursor by a child's realized extent.
// The gap materializes only when both the cursor and the extent are present.
func addGapped(cursor layout.Dim, extent layout.Dim, gap float64) layout.Dim {
	if extent.IsNone() {
		return cursor
	}
	if cursor.IsNone() {
		return extent
	}
	return layout.Some(cursor.Or(0) + gap + extent.Or(0))
}

// gapOffset is the position a new extent starts at given the cursor.
func gapOffset(cursor layout.Dim, gap float64) float64 {
	if cursor.IsNone() {
		return 0
	}
	return cursor.Or(0) + gap
}
