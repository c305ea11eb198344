package record

import (
	"encoding/json"

	"github.com/laser-pdf/laser-pdf/pkg/layout"
)

// Op is one recorded drawing operation.
type Op struct {
	Kind string    `json:"kind"`
	Args []float64 `json:"args,omitempty"`
	Font string    `json:"font,omitempty"`
	Str  string    `json:"str,omitempty"`
}

// Page holds the operations drawn onto one location in order, and the height
// hint reported when the layout moved past it, if any.
type Page struct {
	Ops  []Op     `json:"ops"`
	Hint *float64 `json:"hint,omitempty"`
}

// Recorder implements layout.Pages over an in-memory page list.
type Recorder struct {
	width  float64
	height float64
	pages  []*Page
}

// New returns a recorder whose pages offer the given content area.
func New(contentWidth, contentHeight float64) *Recorder {
	return &Recorder{width: contentWidth, height: contentHeight}
}

func (r *Recorder) ContentWidth() float64  { return r.width }
func (r *Recorder) ContentHeight() float64 { return r.height }

// Location returns the origin of page idx, allocating pages as needed. A
// present hint is recorded against the page being left.
func (r *Recorder) Location(idx int, hint layout.Dim) layout.Location {
	for len(r.pages) <= idx {
		r.pages = append(r.pages, &Page{})
	}
	if idx > 0 && hint.IsSome() {
		v := hint.Or(0)
		r.pages[idx-1].Hint = &v
	}
	return layout.Location{Surface: &surface{page: r.pages[idx]}}
}

// PageCount reports how many pages were allocated.
func (r *Recorder) PageCount() int { return len(r.pages) }

// Page returns the recorded page at idx.
func (r *Recorder) Page(idx int) *Page { return r.pages[idx] }

// JSON renders the recorded pages as an indented JSON artifact.
func (r *Recorder) JSON() ([]byte, error) {
	return json.MarshalIndent(struct {
		ContentWidth  float64 `json:"content_width"`
		ContentHeight float64 `json:"content_height"`
		Pages         []*Page `json:"pages"`
	}{r.width, r.height, r.pages}, "", "  ")
}

type surface struct {
	page *Page
}

func (s *surface) record(kind string, args ...float64) {
	s.page.Ops = append(s.page.Ops, Op{Kind: kind, Args: args})
}

func (s *surface) SaveState()    { s.record("save") }
func (s *surface) RestoreState() { s.record("restore") }

func (s *surface) Translate(dx, dy float64) { s.record("translate", dx, dy) }
func (s *surface) Scale(f float64)          { s.record("scale", f) }

func (s *surface) SetFill(c layout.Color) {
	s.record("fill-color", float64(c.R), float64(c.G), float64(c.B))
}

func (s *surface) SetStroke(c layout.Color, width float64) {
	s.record("stroke-color", float64(c.R), float64(c.G), float64(c.B), width)
}

func (s *surface) Rect(x, y, w, h float64, mode layout.PaintMode) {
	s.record("rect", x, y, w, h, float64(mode))
}

func (s *surface) Line(x1, y1, x2, y2 float64) {
	s.record("line", x1, y1, x2, y2)
}

func (s *surface) Text(x, y float64, font string, size float64, str string) {
	s.page.Ops = append(s.page.Ops, Op{Kind: "text", Args: []float64{x, y, size}, Font: font, Str: str})
}
