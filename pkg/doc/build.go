package doc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/laser-pdf/laser-pdf/pkg/errors"
	"github.com/laser-pdf/laser-pdf/pkg/fonts"
	"github.com/laser-pdf/laser-pdf/pkg/layout"
	"github.com/laser-pdf/laser-pdf/pkg/layout/elements"
)

// Default text sizes in points.
const (
	defaultHeadingSize   = 16
	defaultParagraphSize = 11
)

// Build resolves the description's blocks against the registry and returns
// the root element.
func (d *Document) Build(registry *fonts.Registry) (layout.Element, error) {
	b := &builder{registry: registry}
	return b.blockList(d.Blocks, 0, "blocks")
}

type builder struct {
	registry *fonts.Registry
}

func (b *builder) blockList(blocks []Block, gap float64, path string) (layout.Element, error) {
	built := make([]layout.Element, 0, len(blocks))
	for i, blk := range blocks {
		e, err := b.block(blk, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		built = append(built, e)
	}
	return &elements.Column{Gap: gap, Content: func(c *elements.ColumnContent) {
		for _, e := range built {
			c.Add(e)
		}
	}}, nil
}

func (b *builder) block(blk Block, path string) (layout.Element, error) {
	switch blk.Type {
	case "heading":
		return b.textBlock(blk, fonts.FamilyBold, defaultHeadingSize, path)
	case "paragraph":
		return b.textBlock(blk, fonts.FamilyRegular, defaultParagraphSize, path)
	case "box":
		return b.box(blk, path)
	case "columns":
		return b.columns(blk, path)
	case "rule":
		return b.rule(blk, path)
	case "spacer":
		if blk.Height <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: spacer needs a positive height", path)
		}
		return elements.VGap{Height: blk.Height}, nil
	case "table-section":
		return b.tableSection(blk, path)
	case "":
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: block has no type", path)
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown block type %q", path, blk.Type)
	}
}

func (b *builder) textBlock(blk Block, defaultFamily string, defaultSize float64, path string) (layout.Element, error) {
	family := blk.Font
	if family == "" {
		family = defaultFamily
	}
	font, err := b.registry.Resolve(family)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	size := blk.Size
	if size <= 0 {
		size = defaultSize
	}
	color, err := parseColor(blk.Color, layout.Color{})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s: color", path)
	}

	var e layout.Element = elements.Text{
		Content: blk.Text,
		Face:    font.Face(size),
		Color:   color,
	}
	switch blk.Align {
	case "", "left":
	case "center":
		e = elements.HAlign{Content: e, Alignment: elements.AlignCenter}
	case "right":
		e = elements.HAlign{Content: e, Alignment: elements.AlignRight}
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown alignment %q", path, blk.Align)
	}
	return e, nil
}

func (b *builder) box(blk Block, path string) (layout.Element, error) {
	content, err := b.blockList(blk.Blocks, blk.Gap, path+".blocks")
	if err != nil {
		return nil, err
	}
	box := elements.StyledBox{
		Content: content,
		Padding: layout.EdgeAll(blk.Padding),
	}
	if blk.Fill != "" {
		fill, err := parseColor(blk.Fill, layout.Color{})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s: fill", path)
		}
		box.Fill = &fill
	}
	if blk.Outline != "" || blk.OutlineWidth > 0 {
		color, err := parseColor(blk.Outline, layout.Color{})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s: outline", path)
		}
		width := blk.OutlineWidth
		if width <= 0 {
			width = 1
		}
		box.Outline = &layout.LineStyle{Color: color, Width: width}
	}
	if blk.Title != "" {
		title, err := b.textBlock(Block{Text: blk.Title, Font: blk.Font, Size: blk.Size, Color: blk.Color},
			fonts.FamilyBold, defaultParagraphSize+1, path+".title")
		if err != nil {
			return nil, err
		}
		return elements.Titled{Title: title, Content: box, Gap: blk.Gap}, nil
	}
	return box, nil
}

func (b *builder) columns(blk Block, path string) (layout.Element, error) {
	type cell struct {
		element layout.Element
		width   float64
		weight  int
	}
	cells := make([]cell, 0, len(blk.Blocks))
	for i, child := range blk.Blocks {
		e, err := b.block(child, fmt.Sprintf("%s.blocks[%d]", path, i))
		if err != nil {
			return nil, err
		}
		cells = append(cells, cell{element: e, width: child.Width, weight: child.Weight})
	}
	return &elements.Row{Gap: blk.Gap, Content: func(c *elements.RowContent) {
		for _, cl := range cells {
			if cl.width > 0 {
				c.AddFixed(cl.width, cl.element)
			} else {
				c.AddExpanded(cl.weight, cl.element)
			}
		}
	}}, nil
}

func (b *builder) rule(blk Block, path string) (layout.Element, error) {
	color, err := parseColor(blk.Color, layout.Color{})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s: color", path)
	}
	width := blk.Width
	if width <= 0 {
		width = 1
	}
	return elements.HLine{Style: layout.LineStyle{Color: color, Width: width}}, nil
}

func (b *builder) tableSection(blk Block, path string) (layout.Element, error) {
	if blk.Title == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: table-section needs a title", path)
	}
	title, err := b.textBlock(Block{Text: blk.Title, Font: blk.Font, Size: blk.Size, Color: blk.Color},
		fonts.FamilyBold, defaultParagraphSize+1, path+".title")
	if err != nil {
		return nil, err
	}
	content, err := b.blockList(blk.Blocks, blk.Gap, path+".blocks")
	if err != nil {
		return nil, err
	}
	if blk.Continued != "" {
		following, err := b.textBlock(Block{Text: blk.Continued, Font: blk.Font, Size: blk.Size, Color: blk.Color},
			fonts.FamilyBold, defaultParagraphSize+1, path+".continued")
		if err != nil {
			return nil, err
		}
		return elements.ChangingTitle{
			FirstTitle:     title,
			FollowingTitle: following,
			Content:        content,
			Gap:            blk.Gap,
		}, nil
	}
	return elements.RepeatAfterBreak{Title: title, Content: content, Gap: blk.Gap}, nil
}

// parseColor reads a "#rgb" or "#rrggbb" hex color. An empty string yields
// the fallback.
func parseColor(s string, fallback layout.Color) (layout.Color, error) {
	if s == "" {
		return fallback, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return layout.Color{}, fmt.Errorf("color %q must start with '#'", s)
	}
	switch len(hex) {
	case 3:
		var c [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(hex[i:i+1], 16, 8)
			if err != nil {
				return layout.Color{}, fmt.Errorf("invalid color %q", s)
			}
			c[i] = uint8(v * 17)
		}
		return layout.Color{R: c[0], G: c[1], B: c[2]}, nil
	case 6:
		var c [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
			if err != nil {
				return layout.Color{}, fmt.Errorf("invalid color %q", s)
			}
			c[i] = uint8(v)
		}
		return layout.Color{R: c[0], G: c[1], B: c[2]}, nil
	default:
		return layout.Color{}, fmt.Errorf("color %q must be #rgb or #rrggbb", s)
	}
}
