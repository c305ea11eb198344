package record_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/laser-pdf/laser-pdf/pkg/layout"
	"github.com/laser-pdf/laser-pdf/pkg/sink/record"
)

func TestRecorderAllocatesPages(t *testing.T) {
	rec := record.New(100, 200)
	require.Equal(t, 100.0, rec.ContentWidth())
	require.Equal(t, 200.0, rec.ContentHeight())
	require.Equal(t, 0, rec.PageCount())

	rec.Location(0, layout.None())
	require.Equal(t, 1, rec.PageCount())

	rec.Location(2, layout.None())
	require.Equal(t, 3, rec.PageCount())

	// Asking again for an existing page allocates nothing new.
	rec.Location(1, layout.None())
	require.Equal(t, 3, rec.PageCount())
}

func TestRecorderCapturesBreakHint(t *testing.T) {
	rec := record.New(100, 200)
	rec.Location(0, layout.None())
	rec.Location(1, layout.Some(42))

	require.Nil(t, rec.Page(1).Hint)
	require.NotNil(t, rec.Page(0).Hint)
	require.Equal(t, 42.0, *rec.Page(0).Hint)
}

func TestRecorderCapturesOps(t *testing.T) {
	rec := record.New(100, 200)
	loc := rec.Location(0, layout.None())

	loc.Surface.SaveState()
	loc.Surface.Translate(5, 10)
	loc.Surface.SetFill(layout.Gray(128))
	loc.Surface.Rect(0, 0, 50, 20, layout.Fill)
	loc.Surface.Text(2, 12, "Go", 11, "hello")
	loc.Surface.RestoreState()

	ops := rec.Page(0).Ops
	require.Len(t, ops, 6)
	require.Equal(t, "save", ops[0].Kind)
	require.Equal(t, []float64{5, 10}, ops[1].Args)
	require.Equal(t, "fill-color", ops[2].Kind)
	require.Equal(t, "rect", ops[3].Kind)
	require.Equal(t, "text", ops[4].Kind)
	require.Equal(t, "hello", ops[4].Str)
	require.Equal(t, "Go", ops[4].Font)
	require.Equal(t, "restore", ops[5].Kind)
}

func TestRecorderJSON(t *testing.T) {
	rec := record.New(360, 260)
	loc := rec.Location(0, layout.None())
	loc.Surface.Line(0, 0, 360, 0)

	data, err := rec.JSON()
	require.NoError(t, err)

	var decoded struct {
		ContentWidth  float64 `json:"content_width"`
		ContentHeight float64 `json:"content_height"`
		Pages         []struct {
			Ops []struct {
				Kind string    `json:"kind"`
				Args []float64 `json:"args"`
			} `json:"ops"`
		} `json:"pages"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, 360.0, decoded.ContentWidth)
	require.Equal(t, 260.0, decoded.ContentHeight)
	require.Len(t, decoded.Pages, 1)
	require.Len(t, decoded.Pages[0].Ops, 1)
	require.Equal(t, "line", decoded.Pages[0].Ops[0].Kind)
}
