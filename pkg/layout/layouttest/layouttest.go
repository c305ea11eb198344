// Package layouttest checks elements against the guarantees of the layout
// protocol: measure and draw agree on size and break count, measurement is
// deterministic, the first-location verdict is honored, and the extra
// location height never exceeds the realized one.
package layouttest

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/laser-pdf/laser-pdf/pkg/layout"
	"github.com/laser-pdf/laser-pdf/pkg/sink/record"
)

// Result is the outcome of one breakable measure or draw.
type Result struct {
	Size   layout.Size
	Breaks int
	Extra  layout.Dim
}

// Measure runs a breakable measurement.
func Measure(e layout.Element, w layout.WidthConstraint, first, full float64) Result {
	bm := &layout.BreakableMeasure{FullHeight: full}
	size := e.Measure(layout.MeasureCtx{Width: w, FirstHeight: first, Breakable: bm})
	return Result{Size: size, Breaks: bm.BreakCount, Extra: bm.ExtraLocationMinHeight}
}

// Draw runs a breakable draw against a fresh recorder. The first location is
// offset so that only first of the page's full height remains below it.
func Draw(e layout.Element, w layout.WidthConstraint, first, full float64) (Result, *record.Recorder) {
	rec := record.New(w.Max, full)
	loc := rec.Location(0, layout.None()).Offset(0, full-first)

	breaks := 0
	size := e.Draw(layout.DrawCtx{
		Location:    loc,
		Width:       w,
		FirstHeight: first,
		Breakable: &layout.BreakableDraw{
			FullHeight: full,
			DoBreak: func(idx int, hint layout.Dim) layout.Location {
				if idx+1 > breaks {
					breaks = idx + 1
				}
				return rec.Location(idx+1, hint)
			},
		},
	})
	return Result{Size: size, Breaks: breaks}, rec
}

// RequireConsistent fails the test when the element violates the protocol for
// the given width and height pair.
func RequireConsistent(t *testing.T, e layout.Element, w layout.WidthConstraint, first, full float64) {
	t.Helper()

	m := Measure(e, w, first, full)
	again := Measure(e, w, first, full)
	require.Equal(t, m, again, "measure must be deterministic")

	u := e.FirstLocationUsage(layout.FirstLocationUsageCtx{
		Width: w, FirstHeight: first, FullHeight: full,
	})
	switch u {
	case layout.NoneHeight:
		require.True(t, m.Size.Height.IsNone(), "NoneHeight verdict with a realized height")
		require.Zero(t, m.Breaks, "NoneHeight verdict with breaks")
	case layout.WillSkip:
		require.GreaterOrEqual(t, m.Breaks, 1, "WillSkip verdict without a break")
	}

	if m.Breaks == 0 {
		require.True(t, m.Extra.IsNone(), "extra location height without breaks")
	} else {
		require.True(t, m.Extra.IsSome(), "breaks without an extra location height")
		require.LessOrEqual(t, m.Extra.Or(0), m.Size.Height.Or(0)+1e-9,
			"extra location height above the realized height")
	}

	d, _ := Draw(e, w, first, full)
	require.Equal(t, m.Size, d.Size, "measure and draw size differ")
	require.Equal(t, m.Breaks, d.Breaks, "measure and draw break count differ")
}

// FakeFace is a deterministic text face: every rune is CharWidth wide and
// lines are Line tall.
type FakeFace struct {
	CharWidth float64
	Line      float64
}

func (f FakeFace) Family() string      { return "Fake" }
func (f FakeFace) Size() float64       { return f.Line }
func (f FakeFace) Ascent() float64     { return f.Line * 0.8 }
func (f FakeFace) LineHeight() float64 { return f.Line }
func (f FakeFace) WidthOf(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * f.CharWidth
}
