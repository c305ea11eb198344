package elements_test

import (
	"testing"

	"github.com/laser-pdf/laser-pdf/pkg/layout"
	"github.com/laser-pdf/laser-pdf/pkg/layout/elements"
	"github.com/laser-pdf/laser-pdf/pkg/layout/layouttest"
)

func box() elements.StyledBox {
	fill := layout.Gray(230)
	return elements.StyledBox{
		Content: elements.Text{Content: "xxxx xxxx xxxx", Face: face},
		Padding: layout.EdgeAll(1),
		Fill:    &fill,
	}
}

func TestStyledBoxWrapsContent(t *testing.T) {
	e := box()

	// Content wraps to three lines of width 4 inside max 7 minus padding.
	m := layouttest.Measure(e, layout.UpTo(7), 30, 30)
	if got := m.Size.Width.Or(-1); got != 6 {
		t.Errorf("width = %v, want content plus padding", got)
	}
	if got := m.Size.Height.Or(-1); got != 17 {
		t.Errorf("height = %v, want 15+2", got)
	}
	if m.Breaks != 0 {
		t.Errorf("breaks = %d, want 0", m.Breaks)
	}

	_, rec := layouttest.Draw(e, layout.UpTo(7), 30, 30)
	ops := rec.Page(0).Ops
	if len(ops) < 2 || ops[1].Kind != "rect" {
		t.Fatalf("ops = %+v, want the chrome under the content", ops)
	}
	if got := ops[1].Args[3]; got != 17 {
		t.Errorf("chrome height = %v, want 17", got)
	}

	layouttest.RequireConsistent(t, e, layout.UpTo(7), 30, 30)
}

func TestStyledBoxChromePerLocation(t *testing.T) {
	e := box()

	// One line fits each location: first 7 leaves 5 for content, full 11
	// leaves 9, not enough for two lines.
	m := layouttest.Measure(e, layout.UpTo(7), 7, 11)
	if m.Breaks != 2 {
		t.Errorf("breaks = %d, want 2", m.Breaks)
	}
	if got := m.Size.Height.Or(-1); got != 7 {
		t.Errorf("height = %v, want one line plus padding on the final location", got)
	}
	if got := m.Extra.Or(-1); got != 7 {
		t.Errorf("extra = %v, want 7", got)
	}

	_, rec := layouttest.Draw(e, layout.UpTo(7), 7, 11)
	if rec.PageCount() != 3 {
		t.Fatalf("pages = %d, want 3", rec.PageCount())
	}
	var heights []float64
	for i := 0; i < 3; i++ {
		for _, op := range rec.Page(i).Ops {
			if op.Kind == "rect" {
				heights = append(heights, op.Args[3])
			}
		}
	}
	// The box runs to the bottom of every location it breaks away from.
	want := []float64{7, 11, 7}
	for i := range want {
		if i >= len(heights) || heights[i] != want[i] {
			t.Fatalf("chrome heights = %v, want %v", heights, want)
		}
	}

	layouttest.RequireConsistent(t, e, layout.UpTo(7), 7, 11)
}

func TestStyledBoxPreBreaks(t *testing.T) {
	e := box()

	// Padding eats the sliver: the content would skip, so the box does too.
	u := e.FirstLocationUsage(layout.FirstLocationUsageCtx{
		Width: layout.UpTo(7), FirstHeight: 4, FullHeight: 30,
	})
	if u != layout.WillSkip {
		t.Errorf("usage = %v, want WillSkip", u)
	}
	m := layouttest.Measure(e, layout.UpTo(7), 4, 30)
	if m.Breaks != 1 {
		t.Errorf("breaks = %d, want 1", m.Breaks)
	}
	if got := m.Size.Height.Or(-1); got != 17 {
		t.Errorf("height = %v, want the whole box on the fresh location", got)
	}
	layouttest.RequireConsistent(t, e, layout.UpTo(7), 4, 30)
}

func TestStyledBoxNoUnhelpfulBreak(t *testing.T) {
	e := box()

	m := layouttest.Measure(e, layout.UpTo(7), 4, 4)
	if m.Breaks != 0 {
		t.Errorf("breaks = %d, want 0: the box overflows instead", m.Breaks)
	}
	if got := m.Size.Height.Or(-1); got != 17 {
		t.Errorf("height = %v, want 17", got)
	}
	layouttest.RequireConsistent(t, e, layout.UpTo(7), 4, 4)
}

func TestStyledBoxCollapsesWithContent(t *testing.T) {
	fill := layout.Gray(230)
	e := elements.StyledBox{Content: elements.Empty{}, Padding: layout.EdgeAll(1), Fill: &fill}

	m := layouttest.Measure(e, layout.UpTo(7), 30, 30)
	if m.Size.Height.IsSome() {
		t.Errorf("height = %+v, want collapsed", m.Size.Height)
	}
	_, rec := layouttest.Draw(e, layout.UpTo(7), 30, 30)
	if got := len(rec.Page(0).Ops); got != 0 {
		t.Errorf("ops = %d, want no chrome around collapsed content", got)
	}
	layouttest.RequireConsistent(t, e, layout.UpTo(7), 30, 30)
}

func TestPadded(t *testing.T) {
	e := elements.Padded{
		Content: elements.Text{Content: "aaaa bbbb", Face: face},
		Padding: layout.Edges{Top: 2, Right: 1, Bottom: 2, Left: 1},
	}

	m := layouttest.Measure(e, layout.UpTo(6), 100, 100)
	if got := m.Size.Width.Or(-1); got != 6 {
		t.Errorf("width = %v, want 4+2", got)
	}
	if got := m.Size.Height.Or(-1); got != 14 {
		t.Errorf("height = %v, want 10+4", got)
	}

	_, rec := layouttest.Draw(e, layout.UpTo(6), 100, 100)
	for _, op := range rec.Page(0).Ops {
		if op.Kind == "text" && op.Args[0] != 1 {
			t.Errorf("text x = %v, want inset by the left padding", op.Args[0])
		}
	}

	layouttest.RequireConsistent(t, e, layout.UpTo(6), 100, 100)
	layouttest.RequireConsistent(t, e, layout.UpTo(6), 9, 20)
}

func TestPaddedCollapses(t *testing.T) {
	e := elements.Padded{Content: elements.Empty{}, Padding: layout.EdgeAll(3)}
	m := layouttest.Measure(e, layout.UpTo(10), 50, 50)
	if m.Size.Height.IsSome() || m.Size.Width.IsSome() {
		t.Errorf("size = %+v, want fully collapsed", m.Size)
	}
	layouttest.RequireConsistent(t, e, layout.UpTo(10), 50, 50)
}
