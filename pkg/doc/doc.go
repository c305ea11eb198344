// Package doc maps a TOML document description onto an element tree.
//
// A description names the page geometry, the fonts to embed, and a list of
// blocks. Blocks nest: a box or a column set carries its own block list.
// Building a description resolves fonts through a registry and returns the
// root element ready for rendering.
package doc

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/laser-pdf/laser-pdf/pkg/errors"
	"github.com/laser-pdf/laser-pdf/pkg/fonts"
	"github.com/laser-pdf/laser-pdf/pkg/layout"
)

// Page is the page geometry in points. Zero values fall back to A4 with a
// 36pt margin.
type Page struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Margin float64 `toml:"margin"`
}

// FontRef names a font file to load and the family name blocks refer to it
// by. Relative paths resolve against the description file's directory.
type FontRef struct {
	Family string `toml:"family"`
	Path   string `toml:"path"`
}

// Block is one entry of a block list. Type selects the element it builds;
// the other fields apply per type and are ignored elsewhere.
type Block struct {
	Type string `toml:"type"`

	// heading, paragraph
	Text  string  `toml:"text"`
	Font  string  `toml:"font"`
	Size  float64 `toml:"size"`
	Color string  `toml:"color"`
	Align string  `toml:"align"`

	// box
	Padding      float64 `toml:"padding"`
	Fill         string  `toml:"fill"`
	Outline      string  `toml:"outline"`
	OutlineWidth float64 `toml:"outline_width"`

	// columns
	Weight int `toml:"weight"`

	// rule
	Width float64 `toml:"width"`

	// spacer
	Height float64 `toml:"height"`

	// table-section
	Title     string `toml:"title"`
	Continued string `toml:"continued"`

	// box, columns, table-section
	Gap    float64 `toml:"gap"`
	Blocks []Block `toml:"blocks"`
}

// Document is a parsed description.
type Document struct {
	Page   Page      `toml:"page"`
	Fonts  []FontRef `toml:"fonts"`
	Blocks []Block   `toml:"blocks"`

	dir string
}

// Parse decodes a TOML description.
func Parse(data []byte) (*Document, error) {
	var d Document
	if err := toml.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse document")
	}
	return &d, nil
}

// Load reads and parses a description file. Font paths in the description
// resolve relative to the file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "document %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read document %s", path)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "document %s", path)
	}
	d.dir = filepath.Dir(path)
	return d, nil
}

// PageWidth returns the page width, defaulted.
func (d *Document) PageWidth() float64 {
	if d.Page.Width > 0 {
		return d.Page.Width
	}
	return 595.28
}

// PageHeight returns the page height, defaulted.
func (d *Document) PageHeight() float64 {
	if d.Page.Height > 0 {
		return d.Page.Height
	}
	return 841.89
}

// Margins returns the page margins, defaulted.
func (d *Document) Margins() layout.Edges {
	if d.Page.Margin > 0 {
		return layout.EdgeAll(d.Page.Margin)
	}
	return layout.EdgeAll(36)
}

// LoadFonts loads every font the description references into the registry.
// Font paths are untrusted input and must stay inside the description's
// directory.
func (d *Document) LoadFonts(registry *fonts.Registry) error {
	for _, ref := range d.Fonts {
		if err := errors.ValidateFontFamily(ref.Family); err != nil {
			return err
		}
		if err := errors.ValidateFontPath(ref.Path); err != nil {
			return err
		}
		path := ref.Path
		if d.dir != "" {
			path = filepath.Join(d.dir, path)
		}
		f, err := fonts.Load(ref.Family, path)
		if err != nil {
			return err
		}
		registry.Register(f)
	}
	return nil
}
