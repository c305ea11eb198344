package layout

// PaintMode selects how a path-producing operation is painted.
type PaintMode int

const (
	Fill PaintMode = iota
	Stroke
	FillStroke
)

// Surface is the drawable target resolved from a Location. The layout core
// never emits output bytes itself; it only invokes these primitives while
// drawing. Coordinates are absolute on the surface, in points, with y growing
// downward. Text is drawn at a baseline using a font family previously
// registered with the sink.
type Surface interface {
	SaveState()
	RestoreState()

	Translate(dx, dy float64)
	Scale(s float64)

	SetFill(c Color)
	SetStroke(c Color, width float64)

	Rect(x, y, w, h float64, mode PaintMode)
	Line(x1, y1, x2, y2 float64)

	Text(x, y float64, font string, size float64, s string)
}

// Location is a handle to a drawing surface plus a position on it. Parents
// construct child locations by offsetting the position; a fresh location is
// obtained only through the break callback.
type Location struct {
	Surface Surface
	X, Y    float64
}

// Offset returns the location shifted by (dx, dy) on the same surface.
func (l Location) Offset(dx, dy float64) Location {
	l.X += dx
	l.Y += dy
	return l
}

// Pages is the output sink collaborator. Location returns the origin of the
// content area of page idx, allocating pages as needed; the height hint, when
// present, reports how much of the page being left was used. ContentWidth and
// ContentHeight describe the area every page offers.
type Pages interface {
	Location(idx int, heightHint Dim) Location
	ContentWidth() float64
	ContentHeight() float64
}

// Render lays out root across the sink's pages and returns the size reported
// by the root's draw. The root receives the full content width as an expand
// constraint and may break onto as many pages as it needs.
func Render(root Element, pages Pages) Size {
	h := pages.ContentHeight()
	return root.Draw(DrawCtx{
		Location:    pages.Location(0, None()),
		Width:       Fixed(pages.ContentWidth()),
		FirstHeight: h,
		Breakable: &BreakableDraw{
			FullHeight: h,
			DoBreak: func(locationIdx int, heightHint Dim) Location {
				return pages.Location(locationIdx+1, heightHint)
			},
		},
	})
}
