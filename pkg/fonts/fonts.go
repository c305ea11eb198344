// Package fonts provides font loading and metrics for layout and output.
//
// A Font wraps a parsed TrueType/OpenType file. Faces carry the metrics the
// text collaborator needs (ascent, line height, string widths) at a given
// size; faces are cached per size. The Go Regular and Go Bold fonts ship
// embedded via golang.org/x/image, so documents render without any font
// files on disk.
package fonts

import (
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/laser-pdf/laser-pdf/pkg/errors"
)

// Font is a parsed font file identified by a family name.
type Font struct {
	family string
	ttf    []byte
	parsed *opentype.Font

	mu    sync.Mutex
	faces map[float64]*Face
}

// Parse parses TTF/OTF data into a Font with the given family name.
func Parse(family string, ttf []byte) (*Font, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFont, err, "parse font %q", family)
	}
	return &Font{
		family: family,
		ttf:    ttf,
		parsed: parsed,
		faces:  make(map[float64]*Face),
	}, nil
}

// Load reads and parses a font file from disk.
func Load(family, path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "font file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidFont, err, "read font file %s", path)
	}
	return Parse(family, data)
}

// Family names of the embedded fonts.
const (
	FamilyRegular = "Go"
	FamilyBold    = "Go-Bold"
)

var (
	regularOnce sync.Once
	regularFont *Font
	boldOnce    sync.Once
	boldFont    *Font
)

// Regular returns the embedded Go Regular font.
func Regular() *Font {
	regularOnce.Do(func() {
		f, err := Parse(FamilyRegular, goregular.TTF)
		if err != nil {
			// The embedded font data is part of the build; failing to
			// parse it is not a runtime condition.
			panic(err)
		}
		regularFont = f
	})
	return regularFont
}

// Bold returns the embedded Go Bold font.
func Bold() *Font {
	boldOnce.Do(func() {
		f, err := Parse(FamilyBold, gobold.TTF)
		if err != nil {
			panic(err)
		}
		boldFont = f
	})
	return boldFont
}

// Family returns the font's family name.
func (f *Font) Family() string { return f.family }

// TTF returns the raw font file data, for registration with output sinks.
func (f *Font) TTF() []byte { return f.ttf }

// Face returns metrics for the font at the given size in points.
// Faces are cached; the returned Face is safe for concurrent use.
func (f *Font) Face(size float64) *Face {
	f.mu.Lock()
	defer f.mu.Unlock()

	if face, ok := f.faces[size]; ok {
		return face
	}
	inner, err := opentype.NewFace(f.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72, // 1 point == 1 unit
		Hinting: font.HintingNone,
	})
	if err != nil {
		// NewFace fails only on invalid options; size and DPI are always
		// valid here.
		panic(err)
	}
	m := inner.Metrics()
	face := &Face{
		font:       f,
		size:       size,
		inner:      inner,
		ascent:     fixedToFloat(m.Ascent),
		lineHeight: fixedToFloat(m.Height),
	}
	f.faces[size] = face
	return face
}

// Face is a font at a fixed size. It implements the metrics interface the
// text collaborator consumes.
type Face struct {
	font  *Font
	size  float64
	inner font.Face

	ascent     float64
	lineHeight float64

	mu sync.Mutex // guards inner; x/image faces are not safe for concurrent use
}

// Family returns the underlying font's family name.
func (f *Face) Family() string { return f.font.family }

// Size returns the face size in points.
func (f *Face) Size() float64 { return f.size }

// Ascent returns the distance from the top of a line to its baseline.
func (f *Face) Ascent() float64 { return f.ascent }

// LineHeight returns the recommended distance between baselines.
func (f *Face) LineHeight() float64 { return f.lineHeight }

// WidthOf returns the advance width of s in points.
func (f *Face) WidthOf(s string) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fixedToFloat(font.MeasureString(f.inner, s))
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
