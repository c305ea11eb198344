package pdf_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/laser-pdf/laser-pdf/pkg/fonts"
	"github.com/laser-pdf/laser-pdf/pkg/layout"
	"github.com/laser-pdf/laser-pdf/pkg/layout/elements"
	"github.com/laser-pdf/laser-pdf/pkg/sink/pdf"
)

func TestDocumentDefaults(t *testing.T) {
	d, err := pdf.New(fonts.NewRegistry())
	require.NoError(t, err)

	require.InDelta(t, 595.28-72, d.ContentWidth(), 1e-9)
	require.InDelta(t, 841.89-72, d.ContentHeight(), 1e-9)
	require.Equal(t, 0, d.PageCount())
}

func TestDocumentAllocatesPagesOnDemand(t *testing.T) {
	d, err := pdf.New(fonts.NewRegistry(),
		pdf.WithPageSize(200, 100),
		pdf.WithMargins(layout.EdgeAll(10)))
	require.NoError(t, err)

	loc := d.Location(0, layout.None())
	require.Equal(t, 1, d.PageCount())
	require.Equal(t, 10.0, loc.X)
	require.Equal(t, 10.0, loc.Y)

	d.Location(2, layout.Some(40))
	require.Equal(t, 3, d.PageCount())

	// Asking for an existing page adds nothing.
	d.Location(1, layout.None())
	require.Equal(t, 3, d.PageCount())
}

func TestDocumentRendersAcrossPages(t *testing.T) {
	d, err := pdf.New(fonts.NewRegistry(),
		pdf.WithPageSize(200, 120),
		pdf.WithMargins(layout.EdgeAll(10)))
	require.NoError(t, err)

	gray := layout.Gray(200)
	size := d.Render(&elements.Column{
		Gap: 5,
		Content: func(c *elements.ColumnContent) {
			for i := 0; i < 3; i++ {
				c.Add(elements.Rectangle{Width: 50, Height: 60, Fill: &gray})
			}
		},
	})

	// 60pt blocks in a 100pt content area land on one page each.
	require.Equal(t, 3, d.PageCount())
	require.True(t, size.Height.IsSome())

	out, err := d.Output()
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestDocumentRendersText(t *testing.T) {
	d, err := pdf.New(fonts.NewRegistry())
	require.NoError(t, err)

	face := fonts.Regular().Face(12)
	d.Render(elements.Text{Content: "hello world", Face: face})

	out, err := d.Output()
	require.NoError(t, err)
	require.NotEmpty(t, out)
}
