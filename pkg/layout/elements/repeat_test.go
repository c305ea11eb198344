package elements_test

import (
	"strings"
	"testing"

	"github.com/laser-pdf/laser-pdf/pkg/layout"
	"github.com/laser-pdf/laser-pdf/pkg/layout/elements"
	"github.com/laser-pdf/laser-pdf/pkg/layout/layouttest"
)

func TestRepeatAfterBreakRedrawsTitle(t *testing.T) {
	e := elements.RepeatAfterBreak{
		Title:   elements.Text{Content: "head", Face: face},
		Content: elements.Text{Content: strings.Repeat("aaaa ", 10), Face: face},
		Gap:     2,
	}

	// Every location keeps 23 of its 30 for content: four lines per
	// location, ten lines in all.
	m := layouttest.Measure(e, layout.UpTo(4), 30, 30)
	if m.Breaks != 2 {
		t.Errorf("breaks = %d, want 2", m.Breaks)
	}
	if got := m.Size.Height.Or(-1); got != 17 {
		t.Errorf("height = %v, want title+gap+two lines on the final location", got)
	}

	_, rec := layouttest.Draw(e, layout.UpTo(4), 30, 30)
	if rec.PageCount() != 3 {
		t.Fatalf("pages = %d, want 3", rec.PageCount())
	}
	for i := 0; i < 3; i++ {
		if !hasText(rec.Page(i), "head") {
			t.Errorf("page %d misses the repeated title", i)
		}
	}

	layouttest.RequireConsistent(t, e, layout.UpTo(4), 30, 30)
}

func TestRepeatAfterBreakPreBreaks(t *testing.T) {
	e := elements.RepeatAfterBreak{
		Title:   elements.Text{Content: "head", Face: face},
		Content: elements.Text{Content: "aaaa bbbb", Face: face},
		Gap:     2,
	}

	u := e.FirstLocationUsage(layout.FirstLocationUsageCtx{
		Width: layout.UpTo(4), FirstHeight: 8, FullHeight: 30,
	})
	if u != layout.WillSkip {
		t.Errorf("usage = %v, want WillSkip", u)
	}
	m := layouttest.Measure(e, layout.UpTo(4), 8, 30)
	if m.Breaks != 1 {
		t.Errorf("breaks = %d, want 1", m.Breaks)
	}
	layouttest.RequireConsistent(t, e, layout.UpTo(4), 8, 30)
}

func TestChangingTitle(t *testing.T) {
	e := elements.ChangingTitle{
		FirstTitle:     elements.Text{Content: "list", Face: face},
		FollowingTitle: elements.Text{Content: "list contd", Face: face},
		Content:        elements.Text{Content: strings.Repeat("aaaa ", 25), Face: face},
		Gap:            2,
	}

	// Three pieces per line makes nine lines; four fit per location.
	m := layouttest.Measure(e, layout.UpTo(15), 30, 30)
	if m.Breaks != 2 {
		t.Errorf("breaks = %d, want 2", m.Breaks)
	}

	_, rec := layouttest.Draw(e, layout.UpTo(15), 30, 30)
	if rec.PageCount() != 3 {
		t.Fatalf("pages = %d, want 3", rec.PageCount())
	}
	if !hasText(rec.Page(0), "list") || hasText(rec.Page(0), "contd") {
		t.Errorf("page 0 texts = %v, want the first title", pageTexts(rec.Page(0)))
	}
	for i := 1; i < 3; i++ {
		if !hasText(rec.Page(i), "contd") {
			t.Errorf("page %d misses the continuation title", i)
		}
	}

	layouttest.RequireConsistent(t, e, layout.UpTo(15), 30, 30)
}
