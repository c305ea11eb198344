package elements_test

import (
	"math"
	"testing"

	"github.com/laser-pdf/laser-pdf/pkg/layout"
	"github.com/laser-pdf/laser-pdf/pkg/layout/elements"
	"github.com/laser-pdf/laser-pdf/pkg/layout/layouttest"
)

func TestRowFlexDistribution(t *testing.T) {
	fill := layout.Gray(200)
	cell := elements.Rectangle{Width: 1000, Height: 5, Fill: &fill}
	e := elements.Row{Gap: 4, Content: func(c *elements.RowContent) {
		c.AddExpanded(1, cell).AddExpanded(1, cell).AddExpanded(1, cell)
	}}

	_, rec := layouttest.Draw(e, layout.Fixed(100), 50, 50)
	var rects [][]float64
	for _, op := range rec.Page(0).Ops {
		if op.Kind == "rect" {
			rects = append(rects, op.Args)
		}
	}
	if len(rects) != 3 {
		t.Fatalf("rects = %d, want 3", len(rects))
	}

	want := (100.0 - 2*4) / 3
	xs := []float64{0, want + 4, 2 * (want + 4)}
	total := 0.0
	for i, r := range rects {
		if math.Abs(r[0]-xs[i]) > 1e-9 {
			t.Errorf("rect %d x = %v, want %v", i, r[0], xs[i])
		}
		if math.Abs(r[2]-want) > 1e-9 {
			t.Errorf("rect %d width = %v, want %v", i, r[2], want)
		}
		total += r[2]
	}
	if math.Abs(total+2*4-100) > 1e-9 {
		t.Errorf("widths plus gaps = %v, want exactly 100", total+2*4)
	}

	layouttest.RequireConsistent(t, e, layout.Fixed(100), 50, 50)
}

func TestRowWeightedFlex(t *testing.T) {
	fill := layout.Gray(200)
	cell := elements.Rectangle{Width: 1000, Height: 5, Fill: &fill}
	e := elements.Row{Gap: 0, Content: func(c *elements.RowContent) {
		c.AddExpanded(1, cell).AddExpanded(3, cell)
	}}

	m := layouttest.Measure(e, layout.Fixed(80), 50, 50)
	if got := m.Size.Width.Or(-1); got != 80 {
		t.Errorf("width = %v, want 80", got)
	}

	_, rec := layouttest.Draw(e, layout.Fixed(80), 50, 50)
	var widths []float64
	for _, op := range rec.Page(0).Ops {
		if op.Kind == "rect" {
			widths = append(widths, op.Args[2])
		}
	}
	if len(widths) != 2 || widths[0] != 20 || widths[1] != 60 {
		t.Errorf("widths = %v, want [20 60]", widths)
	}
}

func TestRowMixedFixedAndExpand(t *testing.T) {
	fill := layout.Gray(200)
	cell := elements.Rectangle{Width: 1000, Height: 5, Fill: &fill}
	e := elements.Row{Gap: 2, Content: func(c *elements.RowContent) {
		c.AddFixed(30, cell).
			Add(elements.Text{Content: "aaaa", Face: face}).
			AddExpanded(1, cell)
	}}

	// 100 total, 30 fixed, 4 text, two gaps of 2: 62 left for the expander.
	_, rec := layouttest.Draw(e, layout.Fixed(100), 50, 50)
	var rects [][]float64
	for _, op := range rec.Page(0).Ops {
		if op.Kind == "rect" {
			rects = append(rects, op.Args)
		}
	}
	if len(rects) != 2 {
		t.Fatalf("rects = %d, want 2", len(rects))
	}
	if rects[1][2] != 62 {
		t.Errorf("expander width = %v, want 62", rects[1][2])
	}
	if rects[1][0] != 38 {
		t.Errorf("expander x = %v, want 38", rects[1][0])
	}
}

func TestRowSharesBreakLocations(t *testing.T) {
	e := elements.Row{Gap: 2, Content: func(c *elements.RowContent) {
		c.AddExpanded(1, elements.Text{Content: "aaaa bbbb cccc", Face: face}).
			AddExpanded(1, elements.Text{Content: "dddd", Face: face})
	}}

	// The first cell wraps to three lines and spills onto a second location;
	// the second cell stays on the first. Both share the same break.
	m := layouttest.Measure(e, layout.Fixed(10), 10, 20)
	if m.Breaks != 1 {
		t.Errorf("breaks = %d, want 1", m.Breaks)
	}
	if got := m.Size.Height.Or(-1); got != 5 {
		t.Errorf("height = %v, want 5 (spilled line only)", got)
	}

	_, rec := layouttest.Draw(e, layout.Fixed(10), 10, 20)
	if rec.PageCount() != 2 {
		t.Fatalf("pages = %d, want 2", rec.PageCount())
	}

	layouttest.RequireConsistent(t, e, layout.Fixed(10), 10, 20)
}

func TestRowUniformFinalHeight(t *testing.T) {
	fill := layout.Gray(230)
	e := elements.Row{Gap: 2, Content: func(c *elements.RowContent) {
		c.AddExpanded(1, elements.StyledBox{
			Content: elements.Text{Content: "aa", Face: face},
			Padding: layout.EdgeAll(1),
			Fill:    &fill,
		}).AddExpanded(1, elements.Text{Content: "bbbb bbbb", Face: face})
	}}

	// The text cell is two lines (10) tall, the box would be 7: the box
	// stretches its chrome to the row height.
	m := layouttest.Measure(e, layout.Fixed(20), 50, 50)
	if got := m.Size.Height.Or(-1); got != 10 {
		t.Errorf("height = %v, want 10", got)
	}

	_, rec := layouttest.Draw(e, layout.Fixed(20), 50, 50)
	var rectH float64
	for _, op := range rec.Page(0).Ops {
		if op.Kind == "rect" {
			rectH = op.Args[3]
		}
	}
	if rectH != 10 {
		t.Errorf("box chrome height = %v, want stretched to 10", rectH)
	}

	layouttest.RequireConsistent(t, e, layout.Fixed(20), 50, 50)
}

func TestRowCollapses(t *testing.T) {
	e := elements.Row{Gap: 5, Content: func(c *elements.RowContent) {
		c.Add(elements.Empty{}).Add(elements.Empty{})
	}}
	m := layouttest.Measure(e, layout.UpTo(50), 50, 50)
	if m.Size.Height.IsSome() || m.Size.Width.IsSome() {
		t.Errorf("size = %+v, want fully collapsed", m.Size)
	}
	layouttest.RequireConsistent(t, e, layout.UpTo(50), 50, 50)
}
