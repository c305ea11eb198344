// Package pdf is the PDF output sink, built on github.com/jung-kurt/gofpdf.
//
// A Document owns the underlying PDF writer and hands out page locations on
// demand: the layout pass asks for page idx and the document adds pages until
// it exists. Every page offers the same content area, the page size minus the
// margins. Drawing goes through per-page surfaces so a layout pass may revisit
// earlier pages after later ones were allocated.
package pdf

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/laser-pdf/laser-pdf/pkg/errors"
	"github.com/laser-pdf/laser-pdf/pkg/fonts"
	"github.com/laser-pdf/laser-pdf/pkg/layout"
)

// A4 portrait in points.
const (
	DefaultPageWidth  = 595.28
	DefaultPageHeight = 841.89
	DefaultMargin     = 36
)

// Option configures a Document.
type Option func(*Document)

// WithPageSize sets the page size in points.
func WithPageSize(width, height float64) Option {
	return func(d *Document) {
		d.pageWidth = width
		d.pageHeight = height
	}
}

// WithMargins sets the page margins in points.
func WithMargins(m layout.Edges) Option {
	return func(d *Document) { d.margins = m }
}

// Document implements layout.Pages over a gofpdf writer.
type Document struct {
	pdf        *gofpdf.Fpdf
	pageWidth  float64
	pageHeight float64
	margins    layout.Edges
}

// New creates an empty document with every font in the registry embedded.
func New(registry *fonts.Registry, opts ...Option) (*Document, error) {
	d := &Document{
		pageWidth:  DefaultPageWidth,
		pageHeight: DefaultPageHeight,
		margins:    layout.EdgeAll(DefaultMargin),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.pdf = gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: d.pageWidth, Ht: d.pageHeight},
	})
	// The layout pass positions everything itself.
	d.pdf.SetMargins(0, 0, 0)
	d.pdf.SetAutoPageBreak(false, 0)

	for _, f := range registry.All() {
		d.pdf.AddUTF8FontFromBytes(f.Family(), "", f.TTF())
	}
	if err := d.pdf.Error(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFont, err, "embed fonts")
	}
	return d, nil
}

func (d *Document) ContentWidth() float64  { return d.pageWidth - d.margins.Horizontal() }
func (d *Document) ContentHeight() float64 { return d.pageHeight - d.margins.Vertical() }

// Location returns the content origin of page idx, adding pages as needed.
// The height hint is meaningful to sinks with elastic pages; PDF pages are
// fixed, so it is ignored here.
func (d *Document) Location(idx int, _ layout.Dim) layout.Location {
	for d.pdf.PageCount() <= idx {
		d.pdf.AddPage()
	}
	return layout.Location{
		Surface: &pageSurface{doc: d, page: idx + 1},
		X:       d.margins.Left,
		Y:       d.margins.Top,
	}
}

// PageCount reports how many pages have been allocated so far.
func (d *Document) PageCount() int { return d.pdf.PageCount() }

// Render lays out root across the document's pages.
func (d *Document) Render(root layout.Element) layout.Size {
	return layout.Render(root, d)
}

// Output finalizes the document and returns the PDF bytes.
func (d *Document) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "generate pdf")
	}
	return buf.Bytes(), nil
}

// pageSurface targets one page. gofpdf keeps a current-page cursor, so every
// operation selects its page first; locations for different pages stay valid
// side by side.
type pageSurface struct {
	doc  *Document
	page int
}

func (s *pageSurface) target() *gofpdf.Fpdf {
	s.doc.pdf.SetPage(s.page)
	return s.doc.pdf
}

func (s *pageSurface) SaveState()    { s.target().TransformBegin() }
func (s *pageSurface) RestoreState() { s.target().TransformEnd() }

func (s *pageSurface) Translate(dx, dy float64) {
	s.target().TransformTranslate(dx, dy)
}

func (s *pageSurface) Scale(f float64) {
	// gofpdf takes scale factors in percent, anchored at a point.
	s.target().TransformScale(f*100, f*100, 0, 0)
}

func (s *pageSurface) SetFill(c layout.Color) {
	pdf := s.target()
	pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
}

func (s *pageSurface) SetStroke(c layout.Color, width float64) {
	pdf := s.target()
	pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	pdf.SetLineWidth(width)
}

func (s *pageSurface) Rect(x, y, w, h float64, mode layout.PaintMode) {
	style := "F"
	switch mode {
	case layout.Stroke:
		style = "D"
	case layout.FillStroke:
		style = "FD"
	}
	s.target().Rect(x, y, w, h, style)
}

func (s *pageSurface) Line(x1, y1, x2, y2 float64) {
	s.target().Line(x1, y1, x2, y2)
}

func (s *pageSurface) Text(x, y float64, font string, size float64, str string) {
	pdf := s.target()
	pdf.SetFont(font, "", size)
	pdf.Text(x, y, str)
}
